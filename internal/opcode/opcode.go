package opcode

import (
	"context"
	"fmt"

	"github.com/nicolagi/fmtlint/internal/diff"
	"github.com/nicolagi/fmtlint/internal/linediff"
)

// Tag says what an Opcode does.
type Tag byte

const (
	// Insert means new[J1:J2] should be inserted at old[I1]; I1 == I2.
	Insert Tag = 'i'
	// Delete means old[I1:I2] should be deleted; J1 == J2.
	Delete Tag = 'd'
	// Replace means old[I1:I2] should be replaced by new[J1:J2].
	Replace Tag = 'r'
)

func (t Tag) String() string {
	switch t {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Tag(%q)", byte(t))
	}
}

// Opcode is one edit turning old lines into new lines.
type Opcode struct {
	Tag Tag
	I1  int
	I2  int
	J1  int
	J2  int
}

func (op Opcode) String() string {
	return fmt.Sprintf("%v(%d,%d,%d,%d)", op.Tag, op.I1, op.I2, op.J1, op.J2)
}

// Old returns the lines the opcode removes or replaces.
func (op Opcode) Old(old diff.Lines) diff.Lines {
	return old.Slice(op.I1, op.I2)
}

// New returns the lines the opcode inserts or replaces with.
func (op Opcode) New(new diff.Lines) diff.Lines {
	return new.Slice(op.J1, op.J2)
}

// Classify converts a hunk location to the opcode for it.
func Classify(h Hunk) Opcode {
	i, j := h.OldStart-1, h.NewStart-1
	switch {
	case h.OldCount == 0:
		return Opcode{Tag: Insert, I1: i + 1, I2: i + 1, J1: j, J2: j + h.NewCount}
	case h.NewCount == 0:
		return Opcode{Tag: Delete, I1: i, I2: i + h.OldCount, J1: j + 1, J2: j + 1}
	default:
		return Opcode{Tag: Replace, I1: i, I2: i + h.OldCount, J1: j, J2: j + h.NewCount}
	}
}

// Parse returns one opcode per hunk header in the text of a zero-context
// unified diff, skipping every other line. The first malformed header fails
// the whole parse.
func Parse(text string) ([]Opcode, error) {
	var ops []Opcode
	for _, line := range diff.SplitLines(text) {
		h, ok, err := ParseHunk(line)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, Classify(h))
		}
	}
	return ops, nil
}

// Compute diffs old and new with differ and returns the opcodes turning old
// into new. Errors from the differ are returned as they are.
func Compute(ctx context.Context, differ linediff.LineDiffer, old, new diff.Lines) ([]Opcode, error) {
	text, err := differ.Diff(ctx, old, new)
	if err != nil {
		return nil, err
	}
	ops, err := Parse(text)
	if err != nil {
		return nil, err
	}
	if err := Validate(ops, len(old), len(new)); err != nil {
		return nil, err
	}
	return ops, nil
}

// Validate checks that the opcodes have the shape their tags require, are
// sorted and non-overlapping in both sequences, and fit sequences of the
// given lengths. Start positions in the old sequence strictly increase, so at
// most one insertion happens at any position.
func Validate(ops []Opcode, oldLen, newLen int) error {
	const method = "Validate"
	var i, j int
	for k, op := range ops {
		switch op.Tag {
		case Insert:
			if op.I1 != op.I2 || op.J1 >= op.J2 {
				return errorf(method, "%v: insert must have an empty old span and a non-empty new one", op)
			}
		case Delete:
			if op.J1 != op.J2 || op.I1 >= op.I2 {
				return errorf(method, "%v: delete must have a non-empty old span and an empty new one", op)
			}
		case Replace:
			if op.I1 >= op.I2 || op.J1 >= op.J2 {
				return errorf(method, "%v: replace must have non-empty spans", op)
			}
		default:
			return errorf(method, "%v: unknown tag", op)
		}
		if op.I1 < i || op.J1 < j {
			return errorf(method, "%v: overlaps or precedes the previous opcode", op)
		}
		if k > 0 && op.I1 == ops[k-1].I1 {
			return errorf(method, "%v: starts where the previous opcode starts", op)
		}
		if op.I2 > oldLen || op.J2 > newLen {
			return errorf(method, "%v: out of range for %d old and %d new lines", op, oldLen, newLen)
		}
		i, j = op.I2, op.J2
	}
	return nil
}

// Apply replays the opcodes on old: equal regions are copied from old, and
// the span of each opcode is replaced by its span of new. For the opcodes
// computed from old and new, the result equals new.
func Apply(ops []Opcode, old, new diff.Lines) (diff.Lines, error) {
	if err := Validate(ops, len(old), len(new)); err != nil {
		return nil, err
	}
	var out diff.Lines
	i := 0
	for _, op := range ops {
		out = append(out, old[i:op.I1]...)
		out = append(out, op.New(new)...)
		i = op.I2
	}
	return append(out, old[i:]...), nil
}
