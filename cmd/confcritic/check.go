package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/confcritic/internal/analysis"
	"github.com/dshills/confcritic/internal/profile"
	"github.com/dshills/confcritic/internal/render"
	"github.com/dshills/confcritic/internal/schema"
)

type checkFlags struct {
	format      string
	out         string
	outDir      string
	profileName string
	profileFile string
	failUnder   int
	jobs        int
	verbose     bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <config-file>...",
		Short: "Analyze XML configuration files and produce maintainability reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "md", "Output format: md or json")
	flags.StringVar(&f.out, "out", "", "Output file path, single input only (default: stdout)")
	flags.StringVar(&f.outDir, "out-dir", "", "Directory for per-input reports named <stem>_report.<ext>")
	flags.StringVar(&f.profileName, "profile", "default", "Built-in scoring profile name")
	flags.StringVar(&f.profileFile, "profile-file", "", "Scoring profile YAML path (overrides --profile)")
	flags.IntVar(&f.failUnder, "fail-under", 0, "Exit non-zero if any score falls below this value")
	flags.IntVar(&f.jobs, "jobs", runtime.NumCPU(), "Max files analyzed in parallel")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(paths []string, f *checkFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	if f.out != "" && len(paths) > 1 {
		return exitError(3, "--out supports a single input; use --out-dir for multiple files")
	}
	if f.format != "md" && f.format != "json" {
		return exitError(3, "unknown format: %s", f.format)
	}

	prof, err := resolveProfile(f)
	if err != nil {
		return exitError(3, "failed to load profile: %v", err)
	}
	verbose("Using profile: %s", prof.Name)

	// One analyzer per file; instances share nothing, so files can be
	// scored in parallel.
	reports := make([]*analysis.Report, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(f.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			verbose("Analyzing %s", path)
			a := analysis.New(path, prof.Scoring)
			rep := a.GenerateReport()
			rep.Tool = "confcritic"
			rep.Version = version
			if errs := schema.Validate(rep, prof.Scoring); len(errs) > 0 {
				return exitError(5, "report for %s failed validation: %s", path, errs[0])
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if f.outDir != "" {
		if err := os.MkdirAll(f.outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, rep := range reports {
		output, err := renderReport(rep, f.format)
		if err != nil {
			return err
		}

		dest := f.out
		if f.outDir != "" {
			dest = filepath.Join(f.outDir, reportFileName(rep.File.Path, f.format))
		}
		if dest == "" {
			fmt.Print(output)
			continue
		}
		verbose("Writing report to %s", dest)
		if err := os.WriteFile(dest, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		printSummary(rep)
	}

	if f.failUnder > 0 {
		for _, rep := range reports {
			if rep.Score < f.failUnder {
				return exitError(2, "score %d for %s is below threshold %d", rep.Score, rep.File.Path, f.failUnder)
			}
		}
	}

	return nil
}

func resolveProfile(f *checkFlags) (*profile.Profile, error) {
	if f.profileFile != "" {
		return profile.LoadFile(f.profileFile)
	}
	return profile.LoadBuiltin(f.profileName)
}

func renderReport(rep *analysis.Report, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return render.Markdown(rep), nil
	}
}

// reportFileName derives the output name from the input file stem.
func reportFileName(inputPath, format string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	ext := ".md"
	if format == "json" {
		ext = ".json"
	}
	return stem + "_report" + ext
}

func printSummary(rep *analysis.Report) {
	fmt.Printf("%s  score %d/100  %s\n", rep.File.Path, rep.Score, gradeColor(rep.Grade).Sprint(rep.Grade))
}

func gradeColor(g analysis.Grade) *color.Color {
	switch g {
	case analysis.GradeExcellent:
		return color.New(color.FgGreen, color.Bold)
	case analysis.GradeGood:
		return color.New(color.FgCyan)
	case analysis.GradeFair:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
