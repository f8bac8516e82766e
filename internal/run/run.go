// Package run executes external tools (formatters, the system diff) and
// captures what they print. It is the only place where fmtlint spawns
// processes, so tests can substitute a Runner that spawns nothing.
package run

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Result is the outcome of a command that was started and waited for.
type Result struct {
	// Status is the exit status, -1 if the process was killed by a signal.
	Status int
	Stdout []byte
	Stderr []byte
}

// Runner runs name with args and waits for it. A non-zero exit status is not
// an error: interpreting it is up to the caller. Errors are reserved for
// commands that could not be started or waited for.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Exec runs commands as child processes.
type Exec struct {
	// Dir is the working directory of the child. Empty means the current
	// directory.
	Dir string
}

var _ Runner = Exec{}

func (e Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := Result{
		Status: -1,
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if cmd.ProcessState != nil {
		result.Status = cmd.ProcessState.ExitCode()
	}
	log.WithFields(log.Fields{
		"op":     "run",
		"cmd":    CommandLine(name, args...),
		"status": result.Status,
	}).Debug("Command finished")
	if _, ok := err.(*exec.ExitError); ok {
		// The status says it all.
		err = nil
	}
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		return result, fmt.Errorf("github.com/nicolagi/fmtlint/internal/run.Exec.Run %q: %w", name, err)
	}
	return result, nil
}

// CommandLine renders a command for humans, quoting arguments with spaces.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, s := range append([]string{name}, args...) {
		if s == "" || strings.ContainsAny(s, " \t\n'\"") {
			s = fmt.Sprintf("%q", s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// StatusError is returned by callers of a Runner when a command exits with a
// status they don't accept.
type StatusError struct {
	Command string
	Status  int
	Stdout  []byte
	Stderr  []byte
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected exit status %d", e.Command, e.Status)
	if stderr := strings.TrimSpace(string(e.Stderr)); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Accept returns a *StatusError unless result.Status is one of statuses.
func Accept(command string, result Result, statuses ...int) error {
	for _, s := range statuses {
		if result.Status == s {
			return nil
		}
	}
	return &StatusError{
		Command: command,
		Status:  result.Status,
		Stdout:  result.Stdout,
		Stderr:  result.Stderr,
	}
}
