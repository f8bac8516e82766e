package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	textdiff "github.com/andreyvit/diff"
	"github.com/nicolagi/fmtlint/internal/diff"
	"github.com/nicolagi/fmtlint/internal/linediff"
	"github.com/nicolagi/fmtlint/internal/linerange"
	"github.com/nicolagi/fmtlint/internal/lint"
	"github.com/nicolagi/fmtlint/internal/opcode"
	"github.com/pkg/errors"
)

// parseLines parses a comma-separated list of line numbers and inclusive
// ranges, e.g., "3,4,9-10".
func parseLines(s string) ([]int, error) {
	var lines []int
	for _, field := range strings.Split(s, ",") {
		lo, hi := field, field
		if i := strings.IndexByte(field, '-'); i > 0 {
			lo, hi = field[:i], field[i+1:]
		}
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, errors.Errorf("bad line number %q", lo)
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, errors.Errorf("bad line number %q", hi)
		}
		if start < 1 || end < start {
			return nil, errors.Errorf("bad line range %q", field)
		}
		for line := start; line <= end; line++ {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// parseTarget splits "path:lines" into a lint target. Without a suffix that
// parses as lines, the whole argument is the path.
func parseTarget(arg string) lint.Target {
	if i := strings.LastIndexByte(arg, ':'); i > 0 && i < len(arg)-1 {
		if lines, err := parseLines(arg[i+1:]); err == nil {
			return lint.Target{Path: arg[:i], Changed: lines}
		}
	}
	return lint.Target{Path: arg}
}

func lintFiles(ctx context.Context, w io.Writer, f lint.Formatter, differ linediff.LineDiffer, jobs int, args []string) error {
	targets := make([]lint.Target, 0, len(args))
	for _, arg := range args {
		targets = append(targets, parseTarget(arg))
	}
	l := &lint.Linter{Formatter: f, Differ: differ, Jobs: jobs}
	results, err := l.LintAll(ctx, targets)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, messages := range results {
		for _, m := range messages {
			if err := enc.Encode(m); err != nil {
				return err
			}
		}
	}
	return nil
}

func printRanges(w io.Writer, flag string, syntaxName string, args []string) error {
	syntax, err := linerange.ParseSyntax(syntaxName)
	if err != nil {
		return err
	}
	var lines []int
	for _, arg := range args {
		more, err := parseLines(arg)
		if err != nil {
			return err
		}
		lines = append(lines, more...)
	}
	ranges, err := linerange.Compress(linerange.Normalize(lines))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(linerange.Flags(flag, syntax, ranges), " "))
	return err
}

func printOpcodes(ctx context.Context, w io.Writer, differ linediff.LineDiffer, oldPath, newPath string, verbose, check bool) error {
	oldBytes, err := ioutil.ReadFile(oldPath)
	if err != nil {
		return err
	}
	newBytes, err := ioutil.ReadFile(newPath)
	if err != nil {
		return err
	}
	old, new := diff.SplitLines(string(oldBytes)), diff.SplitLines(string(newBytes))
	ops, err := opcode.Compute(ctx, differ, old, new)
	if err != nil {
		return err
	}
	if verbose {
		if _, err := fmt.Fprintln(w, textdiff.LineDiff(string(oldBytes), string(newBytes))); err != nil {
			return err
		}
	}
	for _, op := range ops {
		ws := ""
		if opcode.IsWhitespaceOnly(op, old, new) {
			ws = " whitespace"
		}
		if _, err := fmt.Fprintf(w, "%s line %d%s\n", op, op.I1+1, ws); err != nil {
			return err
		}
	}
	if check {
		got, err := opcode.Apply(ops, old, new)
		if err != nil {
			return err
		}
		if !got.Equal(new) {
			return errors.Errorf("applying %d opcodes to %s does not give %s", len(ops), oldPath, newPath)
		}
	}
	return nil
}
