package diff

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const bytesForBinaryFileCheck = 1 << 16

// Unified wraps UnifiedTo to return a string instead of writing it to a writer.
func Unified(a, b Lines, contextLines int) (string, error) {
	var buf bytes.Buffer
	err := UnifiedTo(&buf, a, b, contextLines)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UnifiedTo writes a unified diff of the two sequences to the passed writer,
// without the "---" and "+++" file header lines. Its output should be the same
// as that of the system diff, or quite similar when the edit script found
// differs from the one GNU diff finds.
func UnifiedTo(w io.Writer, a, b Lines, contextLines int) error {
	if contextLines < 0 {
		return fmt.Errorf("github.com/nicolagi/fmtlint/internal/diff.UnifiedTo: negative context lines: %d", contextLines)
	}
	if a.Equal(b) {
		return nil
	}
	lines, err := lineDiff(a, b)
	if err != nil {
		return err
	}
	return unified(w, lines, contextLines)
}

// lineDiff returns every line of both sequences prefixed by ' ' (common), '-'
// (only in a) or '+' (only in b), in the order a patch would list them:
// within a changed block, removed lines come before added lines.
func lineDiff(a, b Lines) ([]string, error) {
	var t lineTable
	ar, err := t.encode(a)
	if err != nil {
		return nil, err
	}
	br, err := t.encode(b)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	var lines, added []string
	for _, d := range dmp.DiffMainRunes(ar, br, false) {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			lines = append(lines, added...)
			added = nil
			lines = t.appendPrefixed(lines, " ", d.Text)
		case diffmatchpatch.DiffDelete:
			lines = t.appendPrefixed(lines, "-", d.Text)
		case diffmatchpatch.DiffInsert:
			added = t.appendPrefixed(added, "+", d.Text)
		}
	}
	return append(lines, added...), nil
}

const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

// lineTable maps each distinct line to a rune, so that line sequences can be
// diffed as rune sequences. Runes in the surrogate range are never assigned:
// they do not survive the conversion to string that the diff results go
// through.
type lineTable struct {
	lines []string
	runes map[string]rune
}

func (t *lineTable) encode(lines Lines) ([]rune, error) {
	if t.runes == nil {
		t.runes = make(map[string]rune)
	}
	encoded := make([]rune, 0, len(lines))
	for _, line := range lines {
		r, ok := t.runes[line]
		if !ok {
			r = rune(len(t.lines))
			if r >= surrogateMin {
				r += surrogateMax - surrogateMin + 1
			}
			if r > unicode.MaxRune {
				return nil, fmt.Errorf("github.com/nicolagi/fmtlint/internal/diff.lineDiff: more than %d distinct lines", len(t.lines))
			}
			t.runes[line] = r
			t.lines = append(t.lines, line)
		}
		encoded = append(encoded, r)
	}
	return encoded, nil
}

func (t *lineTable) decode(r rune) string {
	if r > surrogateMax {
		r -= surrogateMax - surrogateMin + 1
	}
	return t.lines[r]
}

func (t *lineTable) appendPrefixed(dst []string, prefix string, text string) []string {
	for _, r := range text {
		dst = append(dst, prefix+t.decode(r))
	}
	return dst
}

func unified(w io.Writer, lines []string, contextLines int) error {
	// While processing lines, we're either in a hunk or in common segment. The
	// hunk is nil if we are in a common segment.
	var hunk *hunk

	// When we're not in the middle of a hunk, we keep the most recent common
	// lines in a ring buffer. When starting a new hunk, the common lines will
	// be backfilled into the hunk and the ring buffer will be emptied out.
	common := newRingBuffer(contextLines)

	if isLikelyBinaryFile(lines) {
		_, err := fmt.Fprintln(w, "Binary files differ")
		return err
	}

	var leftOffset, rightOffset int
	for _, line := range lines {
		if line[0] == ' ' {
			// A common line. If in the middle of a hunk, we might get to the
			// point where a hunk cannot be extended so we can print it and add
			// the following common lines to the ring buffer rather than the
			// hunk.
			if hunk != nil {
				hunk.appendCommon(line)
				if hunk.isComplete() {
					for _, line := range hunk.trim() {
						common.enqueue(line)
					}
					if err := hunk.printTo(w); err != nil {
						return err
					}
					hunk = nil
				}
			} else {
				common.enqueue(line)
			}
		} else {
			// A diff line. Add to the current hunk, starting a new one first if
			// necessary.
			if hunk == nil {
				hunk = newHunk(leftOffset, rightOffset, common.dequeueAll(), contextLines)
			}
			if line[0] == '-' {
				hunk.appendLeft(line)
			} else {
				hunk.appendRight(line)
			}
		}
		switch line[0] {
		case '-':
			leftOffset++
		case ' ':
			leftOffset++
			rightOffset++
		case '+':
			rightOffset++
		}
	}
	if hunk != nil {
		hunk.trim()
		return hunk.printTo(w)
	}
	return nil
}

// IsLikelyBinary reports whether a diff of the two sequences would be
// reported as "Binary files differ".
func IsLikelyBinary(a, b Lines) bool {
	return isLikelyBinaryFile(a) || isLikelyBinaryFile(b)
}

// Look at a few thousand bytes and see if any of them is null.
func isLikelyBinaryFile(lines []string) bool {
	count := 0
	for _, line := range lines {
		if strings.Contains(line, "\x00") {
			return true
		}
		count += len(line)
		if count >= bytesForBinaryFileCheck {
			break
		}
	}
	return false
}
