package analysis

import "fmt"

// Report is the top-level output object of one analysis pass.
type Report struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	File    FileInfo `json:"file"`
	Score   int      `json:"score"`
	Grade   Grade    `json:"grade"`
	Issues  []Issue  `json:"issues"`
	Advice  []string `json:"advice"`
}

// FileInfo identifies the analyzed file. Hash is empty when the file could
// not be loaded.
type FileInfo struct {
	Path    string `json:"path"`
	AbsPath string `json:"abs_path"`
	Hash    string `json:"hash,omitempty"`
}

// adviceFor returns the fixed remediation advice block.
func adviceFor(cfg Config) []string {
	return []string{
		"Keep the root version attribute to plain digits with at most one decimal point (4, 3.8).",
		"Name SDKs with letters, digits, spaces, and parentheses only.",
		"Give every component entry a name attribute and merge entries that share one.",
		fmt.Sprintf("Upgrade the Python SDK to %s or newer; prefer long-term support releases.", cfg.MinSDKVersion()),
	}
}
