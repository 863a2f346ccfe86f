package askline

import (
	"fmt"
	"strings"
)

// renderOptions lists options 1-based under the instruction, one per line,
// followed by a parenthesized hint describing how many may be chosen. The
// hint is omitted entirely when exactly one selection is required.
func renderOptions(instruction string, options []string, minAllowed, maxAllowed int) string {
	var b strings.Builder
	b.WriteString(instruction)
	for i, option := range options {
		fmt.Fprintf(&b, "\n%d) %s", i+1, option)
	}
	if hint := countHint(minAllowed, maxAllowed); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
	}
	return b.String()
}

func countHint(minAllowed, maxAllowed int) string {
	switch {
	case minAllowed == 1 && maxAllowed == 1:
		return ""
	case minAllowed == maxAllowed:
		return fmt.Sprintf("(choose %d options. 1%s2%s3...)", minAllowed, Separator, Separator)
	default:
		return fmt.Sprintf("(choose between %d and %d options. 1%s2%s3...)", minAllowed, maxAllowed, Separator, Separator)
	}
}
