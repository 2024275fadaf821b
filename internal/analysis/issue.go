// Package analysis implements the maintainability rules, scoring, and
// report model for XML configuration files.
package analysis

// Tag labels the severity category of a finding.
type Tag string

const (
	TagCritical      Tag = "CRITICAL"
	TagWarning       Tag = "WARNING"
	TagUnknown       Tag = "UNKNOWN"
	TagConvention    Tag = "CONVENTION"
	TagDuplicate     Tag = "DUPLICATE"
	TagCompatibility Tag = "COMPATIBILITY"
)

func (t Tag) Valid() bool {
	switch t {
	case TagCritical, TagWarning, TagUnknown, TagConvention, TagDuplicate, TagCompatibility:
		return true
	}
	return false
}

// Kind identifies the rule violation that produced a finding.
type Kind string

const (
	KindFileNotFound         Kind = "FILE_NOT_FOUND"
	KindParseError           Kind = "PARSE_ERROR"
	KindPermissionDenied     Kind = "PERMISSION_DENIED"
	KindUnknownLoadError     Kind = "UNKNOWN_LOAD_ERROR"
	KindWrongExtension       Kind = "WRONG_EXTENSION"
	KindInvalidVersionFormat Kind = "INVALID_VERSION_FORMAT"
	KindSDKSpecialChars      Kind = "SDK_SPECIAL_CHARS"
	KindMissingName          Kind = "MISSING_NAME"
	KindDuplicateComponent   Kind = "DUPLICATE_COMPONENT"
	KindUnparseableVersion   Kind = "UNPARSEABLE_VERSION"
	KindVersionTooLow        Kind = "VERSION_TOO_LOW"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFileNotFound, KindParseError, KindPermissionDenied, KindUnknownLoadError,
		KindWrongExtension, KindInvalidVersionFormat, KindSDKSpecialChars,
		KindMissingName, KindDuplicateComponent, KindUnparseableVersion, KindVersionTooLow:
		return true
	}
	return false
}

// Tag returns the severity category a violation kind reports under.
func (k Kind) Tag() Tag {
	switch k {
	case KindFileNotFound, KindParseError, KindPermissionDenied:
		return TagCritical
	case KindUnknownLoadError:
		return TagUnknown
	case KindWrongExtension:
		return TagWarning
	case KindInvalidVersionFormat, KindSDKSpecialChars, KindMissingName:
		return TagConvention
	case KindDuplicateComponent:
		return TagDuplicate
	case KindUnparseableVersion, KindVersionTooLow:
		return TagCompatibility
	default:
		return TagUnknown
	}
}

// Issue is a single recorded finding produced by one rule evaluation.
type Issue struct {
	Tag     Tag    `json:"tag"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}
