// Package report renders per-document validation results as a deterministic,
// sorted, colored text report and decides the run's pass/fail outcome.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/starford/ansuz/internal/models"
)

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.Bold)
)

// Reporter writes a checker's report to a single output stream.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Results prints every result that carries errors or warnings, sorted by
// path, and returns the total error and warning counts across all results.
func (r *Reporter) Results(results []*models.Result) (errs, warns int) {
	sorted := make([]*models.Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, res := range sorted {
		errs += len(res.Errors)
		warns += len(res.Warnings)
		if len(res.Errors) == 0 && len(res.Warnings) == 0 {
			continue
		}
		headColor.Fprintln(r.out, res.Path)
		for _, e := range res.Errors {
			errColor.Fprintf(r.out, "  ERROR: %s\n", e)
		}
		for _, w := range res.Warnings {
			warnColor.Fprintf(r.out, "  WARN: %s\n", w)
		}
	}
	return errs, warns
}

// Summary prints the aggregate line for a checker run.
func (r *Reporter) Summary(files, errs, warns int) {
	fmt.Fprintf(r.out, "Total: %d files, %d errors, %d warnings\n", files, errs, warns)
}

// Pass prints the green success banner.
func (r *Reporter) Pass(msg string) {
	passColor.Fprintf(r.out, "✓ %s\n", msg)
}

// Fail prints the red failure banner.
func (r *Reporter) Fail(msg string) {
	failColor.Fprintf(r.out, "✗ %s\n", msg)
}

// Section prints a bold section header.
func (r *Reporter) Section(title string) {
	headColor.Fprintln(r.out, title)
}

// List prints items one per line under a two-space indent, sorted.
func (r *Reporter) List(items []string) {
	sorted := make([]string, len(items))
	copy(sorted, items)
	sort.Strings(sorted)
	for _, it := range sorted {
		fmt.Fprintf(r.out, "  - %s\n", it)
	}
}

// Infof prints a plain formatted line.
func (r *Reporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
