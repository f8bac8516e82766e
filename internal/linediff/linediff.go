// Package linediff produces zero-context unified diffs between two line
// sequences, either by running the system diff or in process. The output is
// the raw text; turning it into edit operations is the job of package
// opcode.
package linediff

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/nicolagi/fmtlint/internal/diff"
	"github.com/nicolagi/fmtlint/internal/run"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultBinary is the diff program System runs unless told otherwise.
const DefaultBinary = "diff"

// LineDiffer returns the hunks of a unified diff with no context lines
// between old and new, in the format of diff -U0. An empty string means the
// sequences are equal.
type LineDiffer interface {
	Diff(ctx context.Context, old, new diff.Lines) (string, error)
}

// ToolInvocationError is returned when the diff program exits with a status
// other than 0 (no differences) or 1 (differences found), or could not be run
// at all. In the latter case, Status is -1 and Err holds the cause.
type ToolInvocationError struct {
	Command string
	Status  int
	Stdout  string
	Stderr  string
	Err     error
}

func (e *ToolInvocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s could not be run: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s returned unexpected exit code %d: %s", e.Command, e.Status, e.Stderr)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}

// System runs an external diff on temporary copies of the two sequences.
type System struct {
	// Binary defaults to DefaultBinary.
	Binary string
	// Runner defaults to run.Exec{}.
	Runner run.Runner
}

var _ LineDiffer = (*System)(nil)

func (s *System) Diff(ctx context.Context, old, new diff.Lines) (string, error) {
	const method = "System.Diff"
	binary := s.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	runner := s.Runner
	if runner == nil {
		runner = run.Exec{}
	}
	oldPath, err := writeTemp("fmtlint-old-", old)
	if err != nil {
		return "", errors.Wrapf(err, "%s: could not write old lines", method)
	}
	defer removeTemp(oldPath)
	newPath, err := writeTemp("fmtlint-new-", new)
	if err != nil {
		return "", errors.Wrapf(err, "%s: could not write new lines", method)
	}
	defer removeTemp(newPath)

	args := []string{"-U0", oldPath, newPath}
	result, err := runner.Run(ctx, binary, args...)
	if err != nil {
		return "", &ToolInvocationError{
			Command: run.CommandLine(binary, args...),
			Status:  -1,
			Err:     err,
		}
	}
	if result.Status != 0 && result.Status != 1 {
		return "", &ToolInvocationError{
			Command: run.CommandLine(binary, args...),
			Status:  result.Status,
			Stdout:  string(result.Stdout),
			Stderr:  string(result.Stderr),
		}
	}
	return string(result.Stdout), nil
}

func writeTemp(pattern string, lines diff.Lines) (path string, err error) {
	f, err := ioutil.TempFile("", pattern)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
		if err != nil {
			removeTemp(f.Name())
			path = ""
		}
	}()
	_, err = f.WriteString(lines.Join())
	return f.Name(), err
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		log.WithField("path", path).Warningf("Could not remove temporary file: %v", err)
	}
}

// Builtin diffs in process. Its hunks are a valid edit script but, for
// sequences with reordered or repeated lines, not necessarily the one GNU
// diff would report.
type Builtin struct{}

var _ LineDiffer = Builtin{}

func (Builtin) Diff(ctx context.Context, old, new diff.Lines) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if diff.IsLikelyBinary(old, new) {
		return "", fmt.Errorf("github.com/nicolagi/fmtlint/internal/linediff.Builtin.Diff: binary input")
	}
	return diff.Unified(old, new, 0)
}

// New returns the differ called name, "system" or "builtin".
func New(name string, binary string) (LineDiffer, error) {
	switch name {
	case "", "system":
		return &System{Binary: binary}, nil
	case "builtin":
		return Builtin{}, nil
	default:
		return nil, fmt.Errorf("github.com/nicolagi/fmtlint/internal/linediff.New: unknown differ %q", name)
	}
}
