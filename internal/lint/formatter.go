package lint

import (
	"fmt"

	"github.com/nicolagi/fmtlint/internal/linerange"
)

// BypassPolicy decides which messages are reported even outside the lines
// the user changed.
type BypassPolicy int

const (
	// BypassAlways reports every message.
	BypassAlways BypassPolicy = iota
	// BypassUnlessWhitespace reports messages outside the changed lines
	// unless they only change leading or trailing whitespace. Some
	// formatters re-indent code around the requested lines.
	BypassUnlessWhitespace
)

// Formatter describes how to run a formatting tool that prints the
// formatted file on standard output.
type Formatter struct {
	// Name is used in message descriptions.
	Name string
	// Code identifies the messages, e.g., CLANGFORMAT.
	Code   string
	Binary string
	// Style is passed as --style=<Style>.
	Style string
	// LinesFlag restricts formatting to a range, one flag per range.
	LinesFlag   string
	RangeSyntax linerange.Syntax
	// ExitStatuses are the statuses meaning standard output holds the
	// formatted file.
	ExitStatuses []int
	Bypass       BypassPolicy
	// FormatAllIfNoneChanged formats the whole file when the changed lines
	// of a target name no positive line. Otherwise such a target fails.
	FormatAllIfNoneChanged bool
}

// ClangFormat returns the formatter for C, C++, Objective-C, Java,
// JavaScript and Protobuf code. The style "file" looks for a .clang-format
// file in a parent directory of the file being checked.
func ClangFormat() Formatter {
	return Formatter{
		Name:         "clang-format",
		Code:         "CLANGFORMAT",
		Binary:       "clang-format",
		Style:        "file",
		LinesFlag:    "--lines",
		RangeSyntax:  linerange.SyntaxColon,
		ExitStatuses: []int{0},
		Bypass:       BypassAlways,

		FormatAllIfNoneChanged: true,
	}
}

// YAPF returns the formatter for Python code.
func YAPF() Formatter {
	return Formatter{
		Name:         "YAPF",
		Code:         "YAPF",
		Binary:       "yapf",
		Style:        "pep8",
		LinesFlag:    "--lines",
		RangeSyntax:  linerange.SyntaxDash,
		ExitStatuses: []int{0, 2},
		Bypass:       BypassUnlessWhitespace,
	}
}

// FormatterByName returns ClangFormat or YAPF by their binary names.
func FormatterByName(name string) (Formatter, error) {
	switch name {
	case "clang-format":
		return ClangFormat(), nil
	case "yapf":
		return YAPF(), nil
	default:
		return Formatter{}, fmt.Errorf("github.com/nicolagi/fmtlint/internal/lint.FormatterByName: unknown formatter %q", name)
	}
}

// Args returns the arguments formatting path, only within ranges unless
// there are none.
func (f Formatter) Args(path string, ranges []linerange.Range) []string {
	var args []string
	if f.Style != "" {
		args = append(args, "--style="+f.Style)
	}
	args = append(args, path)
	return append(args, linerange.Flags(f.LinesFlag, f.RangeSyntax, ranges)...)
}
