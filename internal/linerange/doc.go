// Package linerange compresses the set of lines a user touched into the
// fewest contiguous ranges, so that a formatter can be asked to reformat
// only those ranges (clang-format's --lines=3:5, yapf's --lines=3-5).
//
// Line numbers are 1-based and ranges are inclusive at both ends.
package linerange
