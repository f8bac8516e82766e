// Package lint runs a formatter on a file, restricted to the lines the user
// changed when those are known, and reports each difference between the file
// and the formatter's output as an autofix message carrying the original and
// the replacement text.
package lint
