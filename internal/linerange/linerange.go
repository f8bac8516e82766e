package linerange

import (
	"fmt"
	"sort"
)

// Range is an inclusive interval of 1-based line numbers.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Len returns the number of lines in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Compress returns the minimal ascending list of ranges covering exactly the
// given lines. Consecutive numbers end up in the same range, so no two
// returned ranges are adjacent. The input must be strictly ascending and
// positive; use Normalize on anything else first.
func Compress(lines []int) ([]Range, error) {
	const method = "Compress"
	if len(lines) == 0 {
		return nil, &EmptyInputError{}
	}
	ranges := make([]Range, 0, 1)
	cur := Range{Start: lines[0], End: lines[0]}
	if cur.Start < 1 {
		return nil, errorf(method, "line %d is not positive", cur.Start)
	}
	for _, line := range lines[1:] {
		switch {
		case line <= cur.End:
			return nil, errorf(method, "line %d follows %d, want ascending order without repetitions", line, cur.End)
		case line == cur.End+1:
			cur.End = line
		default:
			ranges = append(ranges, cur)
			cur = Range{Start: line, End: line}
		}
	}
	return append(ranges, cur), nil
}

// Normalize returns the distinct positive lines in ascending order. The
// argument is not modified.
func Normalize(lines []int) []int {
	seen := make(map[int]bool, len(lines))
	var out []int
	for _, line := range lines {
		if line < 1 || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	sort.Ints(out)
	return out
}

// Lines expands ranges back into the line numbers they cover.
func Lines(ranges []Range) []int {
	var out []int
	for _, r := range ranges {
		for line := r.Start; line <= r.End; line++ {
			out = append(out, line)
		}
	}
	return out
}
