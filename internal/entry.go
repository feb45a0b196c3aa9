// Package internal wires storage, catalog, checks, and reporting into the
// checker entry points invoked by the CLI.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/starford/ansuz/internal/apperr"
	"github.com/starford/ansuz/internal/catalog"
	"github.com/starford/ansuz/internal/checks"
	"github.com/starford/ansuz/internal/mcpserver"
	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/report"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/watch"
)

func newApplication(opts ...Option) *application {
	app := &application{stdout: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		app.config = NewDefaultConfig()
	}
	if app.logger == nil {
		app.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: app.config.App.LogLevel,
		}))
	}
	return app
}

func (a *application) open() (*catalog.Catalog, error) {
	store, err := storage.NewFS(a.config.Skills.Root)
	if err != nil {
		return nil, fmt.Errorf("open skills tree: %w", err)
	}
	return catalog.New(store, a.config.Skills.Doc, a.logger), nil
}

// patterns returns the dual-approach indicator lists, using config-supplied
// expressions when present and the built-in defaults otherwise.
func (a *application) patterns() (*checks.ApproachPatterns, error) {
	pats := checks.DefaultApproachPatterns()
	cfg := a.config.Approaches

	for _, override := range []struct {
		exprs []string
		dst   *checks.PatternList
	}{
		{cfg.UIPatterns, &pats.UI},
		{cfg.CodePatterns, &pats.Code},
		{cfg.ChoicePatterns, &pats.Choice},
	} {
		if len(override.exprs) == 0 {
			continue
		}
		list, err := checks.CompilePatterns(override.exprs)
		if err != nil {
			return nil, err
		}
		*override.dst = list
	}
	return pats, nil
}

// RunMetadata runs the skill metadata checker: every document matching the
// skills glob is validated against the frontmatter rules. Exit is failing iff
// any document accumulated errors; warnings alone never fail the run.
func RunMetadata(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	cat, err := app.open()
	if err != nil {
		return err
	}

	skills, err := cat.LoadPattern(ctx, "*/"+app.config.Skills.Doc)
	if err != nil {
		return err
	}

	results := make([]*models.Result, 0, len(skills))
	for _, s := range skills {
		results = append(results, checks.Metadata(s))
	}

	r := report.New(app.stdout)
	errs, warns := r.Results(results)
	r.Summary(len(skills), errs, warns)
	if errs > 0 {
		r.Fail("Skill metadata validation failed")
		return apperr.ErrValidationFailed
	}
	r.Pass("All skill documents passed validation")
	return nil
}

// RunRefs runs the cross-reference checker. Skills lacking a Related Skills
// section are reported but only broken references fail the run.
func RunRefs(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	cat, err := app.open()
	if err != nil {
		return err
	}

	names, err := cat.Names()
	if err != nil {
		return err
	}
	skills, err := cat.Load(ctx)
	if err != nil {
		return err
	}

	rep := checks.Refs(skills, names, app.config.Refs.Prefix)

	r := report.New(app.stdout)
	r.Infof("Found %d skills", rep.Total)

	if len(rep.MissingSection) > 0 {
		r.Section(fmt.Sprintf("Skills without a %s section (%d):", checks.RelatedHeading, len(rep.MissingSection)))
		r.List(rep.MissingSection)
	}
	if len(rep.Broken) > 0 {
		r.Section(fmt.Sprintf("Skills with broken references (%d):", len(rep.Broken)))
		broken := make([]string, 0, len(rep.Broken))
		for name := range rep.Broken {
			broken = append(broken, name)
		}
		sort.Strings(broken)
		for _, name := range broken {
			r.Infof("  %s -> %s", name, strings.Join(rep.Broken[name], ", "))
		}
	}

	if rep.Failed() {
		r.Fail("Broken skill references found")
		return apperr.ErrValidationFailed
	}
	r.Pass("All skill references resolve")
	return nil
}

// RunApproaches runs the dual-approach checker over the configured allow-list
// of in-scope skills.
func RunApproaches(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	cat, err := app.open()
	if err != nil {
		return err
	}
	pats, err := app.patterns()
	if err != nil {
		return err
	}

	skills, err := cat.Load(ctx)
	if err != nil {
		return err
	}

	scope := make([]string, len(app.config.Approaches.Scope))
	copy(scope, app.config.Approaches.Scope)
	sort.Strings(scope)

	results := checks.Approaches(skills, scope, pats)

	r := report.New(app.stdout)
	failed, choice := 0, 0
	for _, res := range results {
		if res.HasChoice {
			choice++
		}
		switch {
		case res.Missing:
			r.Infof("%s: missing document", res.Name)
			failed++
		case !res.Passed():
			var parts []string
			if !res.HasUI {
				parts = append(parts, "UI")
			}
			if !res.HasCode {
				parts = append(parts, "Code")
			}
			r.Infof("%s: missing %s section", res.Name, strings.Join(parts, " and "))
			failed++
		case app.verbose:
			r.Infof("%s: ui=%q code=%q choice=%q", res.Name, res.UIFragment, res.CodeFragment, res.ChoiceFrag)
		}
	}

	r.Infof("Checked %d skills: %d with both approaches, %d with choice guidance",
		len(results), len(results)-failed, choice)
	if failed > 0 {
		r.Fail("Dual-approach coverage check failed")
		return apperr.ErrValidationFailed
	}
	r.Pass("All in-scope skills document both approaches")
	return nil
}

// RunAll runs the three checkers in sequence against the same tree. It fails
// when any checker fails, after letting all of them report.
func RunAll(ctx context.Context, opts ...Option) error {
	failed := false
	for _, run := range []func(context.Context, ...Option) error{
		RunMetadata,
		RunRefs,
		RunApproaches,
	} {
		if err := run(ctx, opts...); err != nil {
			if errors.Is(err, apperr.ErrValidationFailed) {
				failed = true
				continue
			}
			return err
		}
	}
	if failed {
		return apperr.ErrValidationFailed
	}
	return nil
}

// RunMCP serves the skill catalog and validators over MCP stdio transport.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)
	cat, err := app.open()
	if err != nil {
		return err
	}
	pats, err := app.patterns()
	if err != nil {
		return err
	}

	scope := make([]string, len(app.config.Approaches.Scope))
	copy(scope, app.config.Approaches.Scope)
	sort.Strings(scope)

	app.logger.Info("mcp: serving on stdio")
	return mcpserver.New(cat, app.config.Refs.Prefix, scope, pats).ServeStdio()
}

// RunWatch runs all checkers once, then re-runs them whenever a document under
// the skills root changes, until ctx is cancelled.
func RunWatch(ctx context.Context, opts ...Option) error {
	app := newApplication(opts...)

	rerun := func(ctx context.Context) {
		switch err := RunAll(ctx, opts...); {
		case err == nil:
			app.logger.Info("watch: all checks passed")
		case errors.Is(err, apperr.ErrValidationFailed):
			app.logger.Warn("watch: checks failed")
		default:
			app.logger.Error("watch: check run error", slog.String("error", err.Error()))
		}
	}

	rerun(ctx)
	return watch.Watch(ctx, app.config.Skills.Root, app.logger, rerun)
}
