package internal

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/confcritic/internal/analysis"
	"github.com/dshills/confcritic/internal/profile"
	"github.com/dshills/confcritic/internal/render"
	"github.com/dshills/confcritic/internal/schema"
)

func analyzeFixture(t *testing.T, name string, cfg analysis.Config) *analysis.Report {
	t.Helper()
	path := filepath.Join(projectRoot(), "testdata", "configs", name)
	rep := analysis.New(path, cfg).GenerateReport()
	rep.Tool = "confcritic"
	rep.Version = "test"
	if errs := schema.Validate(rep, cfg); len(errs) > 0 {
		for _, e := range errs {
			t.Errorf("%s: validation error: %s", name, e)
		}
	}
	return rep
}

func TestCleanConfigScoresFull(t *testing.T) {
	rep := analyzeFixture(t, "misc.xml", analysis.DefaultConfig())
	if rep.Score != 100 {
		t.Errorf("score = %d, want 100", rep.Score)
	}
	if rep.Grade != analysis.GradeExcellent {
		t.Errorf("grade = %s, want %s", rep.Grade, analysis.GradeExcellent)
	}
	if len(rep.Issues) != 0 {
		t.Errorf("expected no issues, got %+v", rep.Issues)
	}

	out := render.Markdown(rep)
	if !strings.Contains(out, "No maintainability issues detected.") {
		t.Error("markdown missing the success line")
	}
}

func TestLegacySDKReport(t *testing.T) {
	rep := analyzeFixture(t, "legacy-sdk.xml", analysis.DefaultConfig())

	// One naming finding and one compatibility finding: 100 - 15 - 10.
	if rep.Score != 75 {
		t.Errorf("score = %d, want 75", rep.Score)
	}
	if rep.Grade != analysis.GradeGood {
		t.Errorf("grade = %s, want %s", rep.Grade, analysis.GradeGood)
	}

	out := render.Markdown(rep)
	for _, want := range []string{
		"**Score:** 75 / 100",
		"[CONVENTION] SDK name",
		"[COMPATIBILITY] Python 3.6 is below the minimum supported version 3.8",
		"## Recommendations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMalformedConfigReport(t *testing.T) {
	cfg := analysis.DefaultConfig()
	rep := analyzeFixture(t, "malformed.xml", cfg)

	if len(rep.Issues) != 1 || rep.Issues[0].Kind != analysis.KindParseError {
		t.Fatalf("expected one PARSE_ERROR issue, got %+v", rep.Issues)
	}
	if want := 100 - cfg.Penalties.ParseError; rep.Score != want {
		t.Errorf("score = %d, want %d", rep.Score, want)
	}
}

func TestStrictProfileChangesOutcome(t *testing.T) {
	strict, err := profile.LoadBuiltin("strict")
	if err != nil {
		t.Fatal(err)
	}

	def := analyzeFixture(t, "legacy-sdk.xml", analysis.DefaultConfig())
	hard := analyzeFixture(t, "legacy-sdk.xml", strict.Scoring)

	if hard.Score >= def.Score {
		t.Errorf("strict score %d should be below default score %d", hard.Score, def.Score)
	}
}
