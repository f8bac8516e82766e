// Package opcode turns the hunks of a zero-context unified diff into edit
// operations on two line sequences, with the conventions of a classic
// sequence matcher: 0-based, half-open spans [I1, I2) into the old lines and
// [J1, J2) into the new lines, sorted and non-overlapping. Regions between
// opcodes are equal on both sides and are not represented.
//
// Hunk headers follow GNU diff, which attributes an empty side of a hunk to
// the line preceding it; Classify moves that side to the position where the
// lines are actually inserted or removed.
package opcode
