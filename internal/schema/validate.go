// Package schema checks a produced report for structural consistency.
package schema

import (
	"fmt"

	"github.com/dshills/confcritic/internal/analysis"
)

// ValidationError describes a single consistency violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a report against the configuration that produced it:
// score range, grade consistency, and enum validity on every issue.
func Validate(r *analysis.Report, cfg analysis.Config) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if r.File.Path == "" {
		errs = append(errs, ValidationError{"file.path", "required"})
	}

	if r.Score < 0 || r.Score > 100 {
		errs = append(errs, ValidationError{"score", fmt.Sprintf("out of range: %d", r.Score)})
	}
	if !r.Grade.Valid() {
		errs = append(errs, ValidationError{"grade", fmt.Sprintf("invalid grade: %q", r.Grade)})
	} else if want := analysis.GradeFor(r.Score, cfg.GradeThresholds); r.Grade != want {
		errs = append(errs, ValidationError{"grade", fmt.Sprintf("grade %s does not match score %d (want %s)", r.Grade, r.Score, want)})
	}

	for i, iss := range r.Issues {
		prefix := fmt.Sprintf("issues[%d]", i)
		if !iss.Tag.Valid() {
			errs = append(errs, ValidationError{prefix + ".tag", fmt.Sprintf("invalid: %q", iss.Tag)})
		}
		if !iss.Kind.Valid() {
			errs = append(errs, ValidationError{prefix + ".kind", fmt.Sprintf("invalid: %q", iss.Kind)})
		} else if iss.Tag != iss.Kind.Tag() {
			errs = append(errs, ValidationError{prefix + ".tag", fmt.Sprintf("tag %s does not match kind %s", iss.Tag, iss.Kind)})
		}
		if iss.Message == "" {
			errs = append(errs, ValidationError{prefix + ".message", "required"})
		}
	}

	if len(r.Advice) == 0 {
		errs = append(errs, ValidationError{"advice", "required"})
	}

	return errs
}
