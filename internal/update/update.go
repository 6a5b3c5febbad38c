package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"kartgen/internal/gen"
	"kartgen/internal/plan"
	"kartgen/internal/schema"
	"kartgen/internal/splice"
)

// diffContext is the number of unchanged lines around each diff hunk.
const diffContext = 3

// Options controls a run.
type Options struct {
	// Check compares instead of writing.
	Check bool
	// Projection is passed to every rendered operation.
	Projection gen.Options
	// Logger receives progress messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result is the outcome for one target file.
type Result struct {
	// Path of the target file.
	Path string
	// Rel is Path relative to the plan root.
	Rel string
	// Operations spliced into the file.
	Operations []gen.Operation
	// Changed is true when the file was rewritten (or, in check mode, would be).
	Changed bool
	// Diff is the unified diff of a stale file in check mode.
	Diff string
	// Err is the failure for this file, if any.
	Err error
}

// Run applies p to the files on disk using s as the characteristic list.
// The returned error joins the errors of every failed file.
func Run(ctx context.Context, s *schema.Schema, p *plan.Plan, opts Options) ([]Result, error) {
	if err := p.Diagnostics.Err(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]Result, 0, len(p.Files))

	var errs []error

	for _, job := range p.Files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		res := runFile(s, job, opts)
		if res.Err != nil {
			logger.Debug("file failed", "file", res.Rel, "error", res.Err)
			errs = append(errs, res.Err)
		} else {
			logger.Debug("file processed", "file", res.Rel, "operations", len(res.Operations), "changed", res.Changed)
		}

		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func runFile(s *schema.Schema, job plan.FileJob, opts Options) Result {
	res := Result{Path: job.Path, Rel: job.Rel, Operations: job.Operations}

	edits := make([]splice.Edit, 0, len(job.Operations))

	for _, op := range job.Operations {
		text, err := gen.Project(s, op, opts.Projection)
		if err != nil {
			res.Err = fmt.Errorf("%s: render %s: %w", job.Rel, op, err)
			return res
		}

		edits = append(edits, splice.Edit{Op: op, Text: text})
	}

	f, err := splice.Prepare(job.Path, edits)
	if err != nil {
		res.Err = err
		return res
	}

	res.Changed = f.Changed()

	if opts.Check {
		if res.Changed {
			res.Diff, res.Err = unifiedDiff(job.Rel, f.Original, f.Updated)
		}

		return res
	}

	res.Changed, res.Err = f.Write()

	return res
}

func unifiedDiff(rel, before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + rel,
		ToFile:   "b/" + rel,
		Context:  diffContext,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", rel, err)
	}

	return out, nil
}

// Stale returns the results that changed, or would change in check mode.
func Stale(results []Result) []Result {
	var out []Result

	for _, r := range results {
		if r.Changed {
			out = append(out, r)
		}
	}

	return out
}
