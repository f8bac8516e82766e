package linerange

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is matched (with errors.Is) by every *EmptyInputError.
var ErrEmptyInput = errors.New("no changed lines")

// EmptyInputError is returned when compressing an empty set of lines. There
// is no minimal range list for it and callers are expected to skip the
// --lines arguments altogether instead.
type EmptyInputError struct{}

func (*EmptyInputError) Error() string {
	return "github.com/nicolagi/fmtlint/internal/linerange.Compress: " + ErrEmptyInput.Error()
}

func (*EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

func errorf(typeMethod, format string, a ...interface{}) error {
	return fmt.Errorf("github.com/nicolagi/fmtlint/internal/linerange."+typeMethod+": "+format, a...)
}
