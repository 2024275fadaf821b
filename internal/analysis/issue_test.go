package analysis

import "testing"

func TestTagValid(t *testing.T) {
	valid := []Tag{TagCritical, TagWarning, TagUnknown, TagConvention, TagDuplicate, TagCompatibility}
	for _, tag := range valid {
		if !tag.Valid() {
			t.Errorf("expected %q to be valid", tag)
		}
	}
	if Tag("FATAL").Valid() {
		t.Error("expected FATAL tag to be invalid")
	}
}

func TestKindValid(t *testing.T) {
	valid := []Kind{
		KindFileNotFound, KindParseError, KindPermissionDenied, KindUnknownLoadError,
		KindWrongExtension, KindInvalidVersionFormat, KindSDKSpecialChars,
		KindMissingName, KindDuplicateComponent, KindUnparseableVersion, KindVersionTooLow,
	}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("expected %q to be valid", k)
		}
	}
	if Kind("OTHER").Valid() {
		t.Error("expected OTHER kind to be invalid")
	}
}

func TestKindTag(t *testing.T) {
	tests := []struct {
		kind Kind
		want Tag
	}{
		{KindFileNotFound, TagCritical},
		{KindParseError, TagCritical},
		{KindPermissionDenied, TagCritical},
		{KindUnknownLoadError, TagUnknown},
		{KindWrongExtension, TagWarning},
		{KindInvalidVersionFormat, TagConvention},
		{KindSDKSpecialChars, TagConvention},
		{KindMissingName, TagConvention},
		{KindDuplicateComponent, TagDuplicate},
		{KindUnparseableVersion, TagCompatibility},
		{KindVersionTooLow, TagCompatibility},
	}
	for _, tt := range tests {
		if got := tt.kind.Tag(); got != tt.want {
			t.Errorf("%s.Tag() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}
