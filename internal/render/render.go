// Package render produces Markdown output from an analysis report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/confcritic/internal/analysis"
)

// Markdown renders a report as a Markdown document: file identity, score,
// grade, the full findings list (or a success line), and the fixed
// remediation advice block.
func Markdown(r *analysis.Report) string {
	var b strings.Builder

	b.WriteString("# Configuration Maintainability Report\n\n")
	fmt.Fprintf(&b, "**File:** %s\n", r.File.AbsPath)
	if r.File.Hash != "" {
		fmt.Fprintf(&b, "**Hash:** %s\n", r.File.Hash)
	}
	fmt.Fprintf(&b, "**Score:** %d / 100\n", r.Score)
	fmt.Fprintf(&b, "**Grade:** %s\n\n", r.Grade)

	b.WriteString("## Findings\n\n")
	if len(r.Issues) == 0 {
		b.WriteString("No maintainability issues detected.\n")
	} else {
		for i, iss := range r.Issues {
			fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, iss.Tag, iss.Message)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	for i, adv := range r.Advice {
		fmt.Fprintf(&b, "%d. %s\n", i+1, adv)
	}
	b.WriteString("\n")

	b.WriteString("## Grade\n\n")
	fmt.Fprintf(&b, "Maintainability grade: %s (score %d)\n", r.Grade, r.Score)

	return b.String()
}
