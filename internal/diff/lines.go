package diff

import "strings"

// Lines is one side of a comparison. Each element is one line of text,
// including its terminator. Only the last line may lack one.
type Lines []string

// SplitLines splits text after each newline. The empty string has no lines.
func SplitLines(s string) Lines {
	var lines Lines
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// Join is the inverse of SplitLines.
func (l Lines) Join() string {
	return strings.Join(l, "")
}

// Slice returns the lines in [lo, hi).
func (l Lines) Slice(lo, hi int) Lines {
	return l[lo:hi]
}

// Equal reports whether both sequences hold the same lines.
func (l Lines) Equal(other Lines) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
