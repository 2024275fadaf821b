// Package document handles reading, hashing, and parsing XML configuration files.
package document

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/beevik/etree"
)

// Reason classifies why a configuration file could not be loaded.
type Reason int

const (
	ReasonNotFound Reason = iota
	ReasonPermission
	ReasonParse
	ReasonUnknown
)

// LoadError describes a failed load attempt. Reason tells callers which
// failure class occurred; Err carries the underlying cause.
type LoadError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("document.Load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Document holds a parsed XML configuration file. The tree is loaded once
// and never mutated.
type Document struct {
	FilePath string
	Hash     string
	tree     *etree.Document
}

// Root returns the document's root element, or nil if the tree has none.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// Load reads an XML file, computes its SHA-256 hash, and parses it into an
// element tree. All failures are returned as *LoadError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := ReasonUnknown
		switch {
		case errors.Is(err, fs.ErrNotExist):
			reason = ReasonNotFound
		case errors.Is(err, fs.ErrPermission):
			reason = ReasonPermission
		}
		return nil, &LoadError{Path: path, Reason: reason, Err: err}
	}

	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, &LoadError{Path: path, Reason: ReasonParse, Err: err}
	}
	if tree.Root() == nil {
		return nil, &LoadError{Path: path, Reason: ReasonParse, Err: errors.New("no root element")}
	}

	h := sha256.Sum256(data)
	return &Document{
		FilePath: path,
		Hash:     fmt.Sprintf("sha256:%x", h),
		tree:     tree,
	}, nil
}
