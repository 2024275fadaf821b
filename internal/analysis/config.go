package analysis

import "fmt"

// Penalties maps each violation kind to its score deduction.
type Penalties struct {
	FileNotFound         int `yaml:"file_not_found" json:"file_not_found"`
	ParseError           int `yaml:"parse_error" json:"parse_error"`
	PermissionDenied     int `yaml:"permission_denied" json:"permission_denied"`
	UnknownLoadError     int `yaml:"unknown_load_error" json:"unknown_load_error"`
	WrongExtension       int `yaml:"wrong_extension" json:"wrong_extension"`
	InvalidVersionFormat int `yaml:"invalid_version_format" json:"invalid_version_format"`
	SDKSpecialChars      int `yaml:"sdk_special_chars" json:"sdk_special_chars"`
	MissingName          int `yaml:"missing_name" json:"missing_name"`
	DuplicateComponent   int `yaml:"duplicate_component" json:"duplicate_component"`
	UnparseableVersion   int `yaml:"unparseable_version" json:"unparseable_version"`
	VersionTooLow        int `yaml:"version_too_low" json:"version_too_low"`
}

// penaltyFor returns the configured deduction for a violation kind.
func (p Penalties) penaltyFor(k Kind) int {
	switch k {
	case KindFileNotFound:
		return p.FileNotFound
	case KindParseError:
		return p.ParseError
	case KindPermissionDenied:
		return p.PermissionDenied
	case KindUnknownLoadError:
		return p.UnknownLoadError
	case KindWrongExtension:
		return p.WrongExtension
	case KindInvalidVersionFormat:
		return p.InvalidVersionFormat
	case KindSDKSpecialChars:
		return p.SDKSpecialChars
	case KindMissingName:
		return p.MissingName
	case KindDuplicateComponent:
		return p.DuplicateComponent
	case KindUnparseableVersion:
		return p.UnparseableVersion
	case KindVersionTooLow:
		return p.VersionTooLow
	default:
		return 0
	}
}

// GradeThresholds holds the descending score cutoffs for each grade label.
// A score at or above a cutoff earns that grade; anything below Fair is POOR.
type GradeThresholds struct {
	Excellent int `yaml:"excellent" json:"excellent"`
	Good      int `yaml:"good" json:"good"`
	Fair      int `yaml:"fair" json:"fair"`
}

// Config is the scoring configuration injected into an Analyzer. It is
// immutable for the analyzer's lifetime.
type Config struct {
	Penalties       Penalties       `yaml:"penalties" json:"penalties"`
	MinSDKMajor     int             `yaml:"min_sdk_major" json:"min_sdk_major"`
	MinSDKMinor     int             `yaml:"min_sdk_minor" json:"min_sdk_minor"`
	GradeThresholds GradeThresholds `yaml:"grade_thresholds" json:"grade_thresholds"`
}

// MinSDKVersion formats the minimum supported SDK version for messages.
func (c Config) MinSDKVersion() string {
	return fmt.Sprintf("%d.%d", c.MinSDKMajor, c.MinSDKMinor)
}

// DefaultConfig returns the standard penalty table, minimum supported
// Python SDK version, and grade thresholds.
func DefaultConfig() Config {
	return Config{
		Penalties: Penalties{
			FileNotFound:         50,
			ParseError:           80,
			PermissionDenied:     30,
			UnknownLoadError:     30,
			WrongExtension:       10,
			InvalidVersionFormat: 10,
			SDKSpecialChars:      15,
			MissingName:          10,
			DuplicateComponent:   20,
			UnparseableVersion:   10,
			VersionTooLow:        10,
		},
		MinSDKMajor: 3,
		MinSDKMinor: 8,
		GradeThresholds: GradeThresholds{
			Excellent: 90,
			Good:      70,
			Fair:      50,
		},
	}
}
