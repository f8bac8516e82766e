package lint

import (
	"context"
	"io/ioutil"
	"runtime"

	"github.com/nicolagi/fmtlint/internal/diff"
	"github.com/nicolagi/fmtlint/internal/linediff"
	"github.com/nicolagi/fmtlint/internal/linerange"
	"github.com/nicolagi/fmtlint/internal/opcode"
	"github.com/nicolagi/fmtlint/internal/run"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Target is a file to lint.
type Target struct {
	Path string
	// Changed lists the 1-based lines the user changed, in any order. If nil,
	// the whole file is formatted. If not nil and it names no positive line,
	// the whole file is formatted when the formatter's FormatAllIfNoneChanged
	// is set, and linting fails otherwise.
	Changed []int
}

// Linter lints files with one formatter.
type Linter struct {
	Formatter Formatter
	// Differ defaults to the system diff.
	Differ linediff.LineDiffer
	// Runner runs the formatter, and defaults to run.Exec{}.
	Runner run.Runner
	// Jobs bounds the files linted concurrently by LintAll. Zero means the
	// number of CPUs.
	Jobs int
}

func (l *Linter) differ() linediff.LineDiffer {
	if l.Differ == nil {
		return &linediff.System{}
	}
	return l.Differ
}

func (l *Linter) runner() run.Runner {
	if l.Runner == nil {
		return run.Exec{}
	}
	return l.Runner
}

// Lint formats the target and returns one message per difference between
// the file and the formatted file.
func (l *Linter) Lint(ctx context.Context, t Target) ([]Message, error) {
	messages, err := l.lint(ctx, t)
	if err != nil {
		return nil, errors.Wrapf(err, "could not compute formatting suggestions for %s", t.Path)
	}
	return messages, nil
}

func (l *Linter) lint(ctx context.Context, t Target) ([]Message, error) {
	var ranges []linerange.Range
	if t.Changed != nil {
		changed := linerange.Normalize(t.Changed)
		if len(changed) > 0 || !l.Formatter.FormatAllIfNoneChanged {
			var err error
			if ranges, err = linerange.Compress(changed); err != nil {
				return nil, err
			}
		}
	}
	b, err := ioutil.ReadFile(t.Path)
	if err != nil {
		return nil, err
	}
	old := diff.SplitLines(string(b))

	f := l.Formatter
	args := f.Args(t.Path, ranges)
	result, err := l.runner().Run(ctx, f.Binary, args...)
	if err != nil {
		return nil, err
	}
	if err := run.Accept(run.CommandLine(f.Binary, args...), result, f.ExitStatuses...); err != nil {
		return nil, err
	}
	new := diff.SplitLines(string(result.Stdout))

	ops, err := opcode.Compute(ctx, l.differ(), old, new)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"op":      "lint",
		"path":    t.Path,
		"ranges":  len(ranges),
		"opcodes": len(ops),
	}).Debug("Computed formatting suggestions")
	return Messages(f, t.Path, ops, old, new), nil
}

// LintAll lints the targets concurrently. The messages for targets[i] are
// at index i of the result. The first failure cancels the remaining work and
// is the only error returned.
func (l *Linter) LintAll(parent context.Context, targets []Target) ([][]Message, error) {
	jobs := l.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(jobs))
	g, ctx := errgroup.WithContext(parent)
	results := make([][]Message, len(targets))
	for i, t := range targets {
		if ctx.Err() != nil {
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		i, t := i, t
		g.Go(func() error {
			defer sem.Release(1)
			messages, err := l.Lint(ctx, t)
			if err != nil {
				return err
			}
			results[i] = messages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		// Some targets were skipped.
		return nil, err
	}
	return results, nil
}
