package opcode

import (
	"strconv"
	"strings"
)

// Hunk is the location of a hunk as printed in its header, e.g.,
// "@@ -15,3 +17,5 @@". Starts are 1-based; a count of 0 means the start
// refers to the line preceding the (empty) hunk side.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
}

// ParseHunk parses a line of the form "@@ -D1[,D2] +D3[,D4] @@", followed by
// anything. Omitted counts are 1. For lines of any other form, ok is false
// and err is nil: diff output has file names and hunk bodies too.
func ParseHunk(line string) (h Hunk, ok bool, err error) {
	s := scanner{s: line}
	if !s.literal("@@ -") {
		return Hunk{}, false, nil
	}
	oldStart, oldCount, ok := s.span()
	if !ok || !s.literal(" +") {
		return Hunk{}, false, nil
	}
	newStart, newCount, ok := s.span()
	if !ok || !s.literal(" @@") {
		return Hunk{}, false, nil
	}
	var nums [4]int
	for i, digits := range []string{oldStart, oldCount, newStart, newCount} {
		if nums[i], err = strconv.Atoi(digits); err != nil {
			return Hunk{}, false, &MalformedHunkError{Line: trimEOL(line), Reason: err.Error()}
		}
	}
	h = Hunk{OldStart: nums[0], OldCount: nums[1], NewStart: nums[2], NewCount: nums[3]}
	if h.OldCount == 0 && h.NewCount == 0 {
		return Hunk{}, false, &MalformedHunkError{Line: trimEOL(line), Reason: "both sides are empty"}
	}
	return h, true, nil
}

type scanner struct {
	s   string
	pos int
}

func (s *scanner) literal(lit string) bool {
	if strings.HasPrefix(s.s[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

func (s *scanner) number() (string, bool) {
	start := s.pos
	for s.pos < len(s.s) && '0' <= s.s[s.pos] && s.s[s.pos] <= '9' {
		s.pos++
	}
	return s.s[start:s.pos], s.pos > start
}

// span scans "start" or "start,count".
func (s *scanner) span() (start, count string, ok bool) {
	if start, ok = s.number(); !ok {
		return "", "", false
	}
	if !s.literal(",") {
		return start, "1", true
	}
	count, ok = s.number()
	return start, count, ok
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
