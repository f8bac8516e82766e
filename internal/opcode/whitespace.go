package opcode

import (
	"strings"

	"github.com/nicolagi/fmtlint/internal/diff"
)

// IsWhitespaceOnly reports whether the opcode only changes leading or
// trailing whitespace. Lines are paired by position; the shorter side is
// padded with empty lines, so inserting or deleting blank lines counts as a
// whitespace-only change too.
func IsWhitespaceOnly(op Opcode, old, new diff.Lines) bool {
	li, lj := op.I2-op.I1, op.J2-op.J1
	n := li
	if lj > n {
		n = lj
	}
	for k := 0; k < n; k++ {
		var a, b string
		if k < li {
			a = old[op.I1+k]
		}
		if k < lj {
			b = new[op.J1+k]
		}
		if strings.TrimSpace(a) != strings.TrimSpace(b) {
			return false
		}
	}
	return true
}
