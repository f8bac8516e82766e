package lint

import (
	"fmt"

	"github.com/nicolagi/fmtlint/internal/diff"
	"github.com/nicolagi/fmtlint/internal/opcode"
)

const (
	// SeverityAutofix is the severity of every message: each one carries the
	// replacement that fixes it.
	SeverityAutofix = "autofix"

	messageName = "Formatting suggestion"
)

// Message is one formatting suggestion: replace Original, starting at Line,
// with Replacement.
type Message struct {
	Path        string `json:"path"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	// Line is 1-based. For insertions, it's the line before which the
	// replacement goes.
	Line        int    `json:"line"`
	Char        int    `json:"char"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	// BypassChangedLineFiltering asks to show the message even if it falls
	// outside the lines the user changed.
	BypassChangedLineFiltering bool `json:"bypassChangedLineFiltering"`
}

// Messages builds one message per opcode. The opcodes must have been
// computed from old and new.
func Messages(f Formatter, path string, ops []opcode.Opcode, old, new diff.Lines) []Message {
	messages := make([]Message, 0, len(ops))
	for _, op := range ops {
		bypass := true
		if f.Bypass == BypassUnlessWhitespace {
			bypass = !opcode.IsWhitespaceOnly(op, old, new)
		}
		messages = append(messages, Message{
			Path:                       path,
			Code:                       f.Code,
			Name:                       messageName,
			Description:                fmt.Sprintf("%s suggests an alternative formatting.", f.Name),
			Severity:                   SeverityAutofix,
			Line:                       op.I1 + 1,
			Char:                       1,
			Original:                   op.Old(old).Join(),
			Replacement:                op.New(new).Join(),
			BypassChangedLineFiltering: bypass,
		})
	}
	return messages
}
