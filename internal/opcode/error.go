package opcode

import "fmt"

// MalformedHunkError is returned for a hunk header that has the right shape
// but cannot describe a change, e.g., "@@ -3,0 +4,0 @@". The whole diff is
// rejected: a partial list of opcodes would suggest fewer changes than there
// are.
type MalformedHunkError struct {
	Line   string
	Reason string
}

func (e *MalformedHunkError) Error() string {
	return fmt.Sprintf("malformed hunk header %q: %s", e.Line, e.Reason)
}

func errorf(typeMethod, format string, a ...interface{}) error {
	return fmt.Errorf("github.com/nicolagi/fmtlint/internal/opcode."+typeMethod+": "+format, a...)
}
