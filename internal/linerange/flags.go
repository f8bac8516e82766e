package linerange

import "fmt"

// Syntax is how a formatter wants a range spelled on its command line.
type Syntax int

const (
	// SyntaxColon renders 3:5, as clang-format wants.
	SyntaxColon Syntax = iota
	// SyntaxDash renders 3-5, as yapf wants.
	SyntaxDash
)

// ParseSyntax maps "colon" and "dash" to the corresponding Syntax.
func ParseSyntax(s string) (Syntax, error) {
	switch s {
	case "colon", ":":
		return SyntaxColon, nil
	case "dash", "-":
		return SyntaxDash, nil
	default:
		return 0, errorf("ParseSyntax", "unknown range syntax %q", s)
	}
}

func (s Syntax) String() string {
	switch s {
	case SyntaxColon:
		return "colon"
	case SyntaxDash:
		return "dash"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

func (s Syntax) separator() string {
	if s == SyntaxDash {
		return "-"
	}
	return ":"
}

// Flags renders one flag per range, e.g., --lines=3:5 --lines=9:10 for the
// flag "--lines" and SyntaxColon.
func Flags(flag string, syntax Syntax, ranges []Range) []string {
	args := make([]string, 0, len(ranges))
	for _, r := range ranges {
		args = append(args, fmt.Sprintf("%s=%d%s%d", flag, r.Start, syntax.separator(), r.End))
	}
	return args
}
