// Package diff holds the line sequences fmtlint compares and an in-process
// implementation of unified diffs over them. The output format is that of
// GNU diff -U<n>, including the zero context lines case and the "\ No
// newline at end of file" markers, so that it can stand in for the system
// diff where none is installed.
//
// The code in this package builds on top of the line mode of the
// diffmatchpatch package (https://github.com/sergi/go-diff). A limitation of
// this diff compared to GNU diff is that it's not smart about reordered
// lines; the hunks it reports are still a valid edit script.
package diff
