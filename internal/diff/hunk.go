package diff

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const noNewline = "\\ No newline at end of file\n"

// See https://www.gnu.org/software/diffutils/manual/html_node/Hunks.html.
type hunk struct {
	// These four describe the location of the hunk (left/right offset/count).
	// Offsets are 0-based. This is rendered for example as "@@ -15,3 +17,5 @@".
	lo int
	lc int
	ro int
	rc int

	// Each line starts with one of ' ', '-', '+' and keeps its terminator.
	lines []string

	// Counts the number of lines since the last difference. Used to decide when
	// to close a hunk. For a unified diff with 3 lines of context, for example,
	// the hunk is definitely closed after 7 common lines (4 need to be removed
	// from the hunk). In other words, the maximum distance between lines marked
	// as changed, in the same hunk, is 6. With no context lines, the first
	// common line closes the hunk.
	sinceLastDiff int

	clen int

	printErr error
}

func newHunk(lo, ro int, backfill []string, contextLines int) *hunk {
	l := len(backfill)
	return &hunk{
		lo:    lo - l,
		ro:    ro - l,
		lc:    l,
		rc:    l,
		lines: backfill,
		clen:  contextLines,
	}
}

func (h *hunk) appendLeft(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastDiff = 0
	h.lc++
}

func (h *hunk) appendRight(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastDiff = 0
	h.rc++
}

func (h *hunk) appendCommon(line string) {
	h.lines = append(h.lines, line)
	h.sinceLastDiff++
	h.lc++
	h.rc++
}

func (h *hunk) isComplete() bool {
	return h.sinceLastDiff >= 2*h.clen+1
}

func (h *hunk) trim() []string {
	if h.sinceLastDiff <= h.clen {
		return nil
	}
	delc := h.sinceLastDiff - h.clen
	del := h.lines[len(h.lines)-delc:]
	h.lines = h.lines[:len(h.lines)-delc]
	h.lc -= delc
	h.rc -= delc
	return del
}

// span renders one side of the hunk location. An empty side is attributed to
// the line preceding it, which may be line 0.
func span(offset, count int) string {
	switch count {
	case 0:
		return strconv.Itoa(offset) + ",0"
	case 1:
		return strconv.Itoa(offset + 1)
	default:
		return strconv.Itoa(offset+1) + "," + strconv.Itoa(count)
	}
}

func (h hunk) printLocationTo(w io.Writer) {
	h.print(w, "@@ -%s +%s @@\n", span(h.lo, h.lc), span(h.ro, h.rc))
}

func (h hunk) printTo(w io.Writer) error {
	h.printLocationTo(w)
	for _, line := range h.lines {
		if strings.HasSuffix(line, "\n") {
			h.print(w, "%s", line)
		} else {
			h.print(w, "%s\n%s", line, noNewline)
		}
	}
	return h.printErr
}

func (h *hunk) print(w io.Writer, format string, a ...interface{}) {
	if h.printErr != nil {
		return
	}
	_, h.printErr = fmt.Fprintf(w, format, a...)
}
