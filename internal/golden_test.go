package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/dshills/confcritic/internal/analysis"
	"github.com/dshills/confcritic/internal/schema"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

func TestGoldenDuplicatesReport(t *testing.T) {
	root := projectRoot()

	goldenPath := filepath.Join(root, "testdata", "golden", "duplicates-report.json")
	goldenData, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}
	var want analysis.Report
	if err := json.Unmarshal(goldenData, &want); err != nil {
		t.Fatalf("failed to parse golden JSON: %v", err)
	}

	configPath := filepath.Join(root, "testdata", "configs", "duplicates.xml")
	a := analysis.New(configPath, analysis.DefaultConfig())
	got := a.GenerateReport()
	got.Tool = "confcritic"
	got.Version = "test"

	if errs := schema.Validate(got, analysis.DefaultConfig()); len(errs) > 0 {
		for _, e := range errs {
			t.Errorf("validation error: %s", e)
		}
	}

	if got.Score != want.Score {
		t.Errorf("score = %d, want %d", got.Score, want.Score)
	}
	if got.Grade != want.Grade {
		t.Errorf("grade = %s, want %s", got.Grade, want.Grade)
	}
	if !reflect.DeepEqual(got.Issues, want.Issues) {
		t.Errorf("issues mismatch:\ngot  %+v\nwant %+v", got.Issues, want.Issues)
	}
	if !reflect.DeepEqual(got.Advice, want.Advice) {
		t.Errorf("advice mismatch:\ngot  %+v\nwant %+v", got.Advice, want.Advice)
	}
}
