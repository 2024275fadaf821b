// Package profile handles loading built-in and user-supplied scoring profiles.
package profile

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/confcritic/internal/analysis"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Profile bundles a named scoring configuration.
type Profile struct {
	Name        string          `yaml:"name"`
	Version     int             `yaml:"version"`
	Description string          `yaml:"description"`
	Scoring     analysis.Config `yaml:"scoring"`
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	return parse(name, data)
}

// LoadFile loads a profile from a YAML file on disk.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}
	return parse(path, data)
}

func parse(src string, data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: parse %q: %w", src, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile: invalid %q: %w", src, err)
	}
	return &p, nil
}

func (p *Profile) validate() error {
	pen := p.Scoring.Penalties
	for _, v := range []int{
		pen.FileNotFound, pen.ParseError, pen.PermissionDenied, pen.UnknownLoadError,
		pen.WrongExtension, pen.InvalidVersionFormat, pen.SDKSpecialChars,
		pen.MissingName, pen.DuplicateComponent, pen.UnparseableVersion, pen.VersionTooLow,
	} {
		if v < 0 {
			return fmt.Errorf("penalties must be non-negative")
		}
	}
	t := p.Scoring.GradeThresholds
	if !(t.Excellent > t.Good && t.Good > t.Fair && t.Fair > 0) {
		return fmt.Errorf("grade thresholds must be strictly descending and positive")
	}
	if p.Scoring.MinSDKMajor < 0 || p.Scoring.MinSDKMinor < 0 {
		return fmt.Errorf("minimum SDK version must be non-negative")
	}
	return nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}
