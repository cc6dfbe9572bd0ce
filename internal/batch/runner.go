package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"stdlib-migrator/internal/cstdlib"
	"stdlib-migrator/internal/diagnostic"
	"stdlib-migrator/internal/recipe"
	"stdlib-migrator/internal/section"
)

// diffContext is the number of context lines in dry-run diffs.
const diffContext = 3

var errLoad = errors.New("failed to load recipe")

// Options controls a batch run.
type Options struct {
	// Jobs bounds the number of recipes processed concurrently; <= 0 means 1.
	Jobs int
	// DryRun computes the migration and its diff without writing.
	DryRun bool
	// CheckOnly only evaluates the filter gate.
	CheckOnly bool
}

// Result is the outcome for a single recipe directory.
type Result struct {
	Recipe  string
	Outcome Outcome
	// Diff is the unified diff of a dry-run migration.
	Diff string
	Err  error
}

// Report collects the results of a run, in input order.
type Report struct {
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0

	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}

	return n
}

// Runner migrates batches of recipes.
type Runner struct {
	logger *zap.Logger
	opts   Options
}

// NewRunner creates a Runner. A nil logger disables logging.
func NewRunner(logger *zap.Logger, opts Options) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.Jobs <= 0 {
		opts.Jobs = 1
	}

	return &Runner{logger: logger, opts: opts}
}

// Run processes every recipe directory. Per-recipe failures are reported in
// the Report; the returned error is only set when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, dirs []string) (*Report, error) {
	dirs = uniqueDirs(dirs)
	results := make([]Result, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = r.processRecipe(dir)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch run interrupted: %w", err)
	}

	report := &Report{Results: results}
	for _, res := range results {
		addDiagnostic(&report.Diagnostics, res)
	}

	r.logger.Info("batch finished",
		zap.Int("recipes", len(results)),
		zap.Int("migrated", report.Count(OutcomeMigrated)),
		zap.Int("pending", report.Count(OutcomePending)),
		zap.Int("failed", report.Count(OutcomeFailed)))

	return report, nil
}

// processRecipe handles one recipe directory; it never panics on bad input
// and reports every problem through the Result.
func (r *Runner) processRecipe(dir string) Result {
	log := r.logger.With(zap.String("recipe", dir))
	res := Result{Recipe: dir}

	path := filepath.Join(dir, recipe.MetaFileName)

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("no recipe file")

		res.Outcome = OutcomeMissing

		return res
	}

	attrs, err := recipe.LoadFile(path)
	if err != nil {
		return r.fail(log, res, fmt.Errorf("%w: %w", errLoad, err))
	}

	if cstdlib.ShouldSkip(attrs.Raw) {
		log.Debug("skipped by filter")

		res.Outcome = OutcomeSkipped

		return res
	}

	switch {
	case r.opts.CheckOnly:
		res.Outcome = OutcomePending

	case r.opts.DryRun:
		content, err := cstdlib.Rewrite(attrs.Raw, &attrs.Meta)
		if err != nil {
			return r.fail(log, res, err)
		}

		res.Outcome = OutcomeUnchanged
		if content != attrs.Raw {
			res.Outcome = OutcomeMigrated

			res.Diff, err = unifiedDiff(path, attrs.Raw, content)
			if err != nil {
				return r.fail(log, res, err)
			}
		}

	default:
		changed, err := cstdlib.Migrate(dir, attrs)
		if err != nil {
			return r.fail(log, res, err)
		}

		res.Outcome = OutcomeUnchanged
		if changed {
			res.Outcome = OutcomeMigrated
		}
	}

	log.Debug("recipe processed", zap.Stringer("outcome", res.Outcome))

	return res
}

func (r *Runner) fail(log *zap.Logger, res Result, err error) Result {
	log.Warn("recipe failed", zap.Error(err))

	res.Outcome = OutcomeFailed
	res.Err = err

	return res
}

// addDiagnostic records the diagnostic matching a result, if any.
func addDiagnostic(d *diagnostic.Diagnostics, res Result) {
	switch res.Outcome {
	case OutcomeFailed:
		d.AddError(errorCode(res.Err), res.Err.Error(), res.Recipe)
	case OutcomePending:
		d.AddWarning(diagnostic.CodeNeedsMigration, "recipe needs the C stdlib dependency", res.Recipe)
	case OutcomeMissing:
		d.AddInfo(diagnostic.CodeMissingRecipe, "no "+recipe.MetaFileName+" found", res.Recipe)
	}
}

// errorCode maps a migration error to its diagnostic code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, cstdlib.ErrOutputNotFound):
		return diagnostic.CodeOutputNotFound
	case errors.Is(err, cstdlib.ErrNoInsertionPoint):
		return diagnostic.CodeNoInsertionPoint
	case errors.Is(err, section.ErrSectionMismatch):
		return diagnostic.CodeSectionMismatch
	case errors.Is(err, errLoad):
		return diagnostic.CodeLoadFailed
	default:
		return diagnostic.CodeIOFailed
	}
}

// unifiedDiff renders the change from before to after as a unified diff.
func unifiedDiff(path, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  diffContext,
	})
}

// uniqueDirs drops repeated directories, keeping the first occurrence.
func uniqueDirs(dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs))
	unique := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		key := filepath.Clean(dir)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, dir)
	}

	return unique
}
