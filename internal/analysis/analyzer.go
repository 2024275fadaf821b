package analysis

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/dshills/confcritic/internal/document"
)

// Analyzer scores one XML configuration file. It loads the document at
// construction and holds it for its lifetime; instances are independent,
// so callers may run one analyzer per file in parallel.
type Analyzer struct {
	filePath   string
	cfg        Config
	doc        *document.Document
	issues     []Issue
	deductions []int
}

// New constructs an analyzer for path and performs the load step. Load
// failures never surface as errors; they are recorded as findings with
// their configured deductions.
func New(path string, cfg Config) *Analyzer {
	a := &Analyzer{filePath: path, cfg: cfg}
	a.load()
	return a
}

// load runs the loader checks: the extension warning fires independently
// of whether parsing succeeds.
func (a *Analyzer) load() {
	var res Result
	if !strings.EqualFold(filepath.Ext(a.filePath), ".xml") {
		res.add(a.cfg.Penalties, KindWrongExtension,
			"file does not use the .xml extension: %s", a.filePath)
	}

	doc, err := document.Load(a.filePath)
	if err != nil {
		var le *document.LoadError
		if !errors.As(err, &le) {
			res.add(a.cfg.Penalties, KindUnknownLoadError, "failed to load file: %v", err)
			a.record(res)
			return
		}
		switch le.Reason {
		case document.ReasonNotFound:
			res.add(a.cfg.Penalties, KindFileNotFound, "file does not exist: %s", a.filePath)
		case document.ReasonPermission:
			res.add(a.cfg.Penalties, KindPermissionDenied, "permission denied: %s", a.filePath)
		case document.ReasonParse:
			res.add(a.cfg.Penalties, KindParseError, "XML syntax error: %v", le.Err)
		default:
			res.add(a.cfg.Penalties, KindUnknownLoadError, "failed to load file: %v", le.Err)
		}
		a.record(res)
		return
	}

	a.doc = doc
	a.record(res)
}

func (a *Analyzer) record(res Result) {
	a.issues = append(a.issues, res.Issues...)
	a.deductions = append(a.deductions, res.Deduction)
}

func (a *Analyzer) root() *etree.Element {
	if a.doc == nil {
		return nil
	}
	return a.doc.Root()
}

// Score returns the current clamped score.
func (a *Analyzer) Score() int {
	return ComputeScore(a.deductions)
}

// Issues returns the findings recorded so far, in evaluation order.
func (a *Analyzer) Issues() []Issue {
	return a.issues
}

// rules in fixed evaluation order: format, naming, duplicates, compatibility.
var rules = []Rule{
	CheckVersionFormat,
	CheckSDKNaming,
	DetectDuplicates,
	CheckCompatibility,
}

// GenerateReport runs every rule once, in fixed order, and assembles the
// report. Each call re-runs the rules and re-appends their findings;
// callers that need a fresh pass construct a new Analyzer.
func (a *Analyzer) GenerateReport() *Report {
	root := a.root()
	for _, rule := range rules {
		a.record(rule(root, a.cfg))
	}

	abs, err := filepath.Abs(a.filePath)
	if err != nil {
		abs = a.filePath
	}
	var hash string
	if a.doc != nil {
		hash = a.doc.Hash
	}

	score := a.Score()
	return &Report{
		File:   FileInfo{Path: a.filePath, AbsPath: abs, Hash: hash},
		Score:  score,
		Grade:  GradeFor(score, a.cfg.GradeThresholds),
		Issues: append([]Issue(nil), a.issues...),
		Advice: adviceFor(a.cfg),
	}
}
