package askline

import (
	"sort"
	"strconv"
	"strings"
)

// Separator splits multi-selection input into tokens.
const Separator = ","

// Rejection messages shown by the built-in parsers.
const (
	msgYesNo          = "type y or n"
	msgSelectionShape = "type whole numbers separated by " + Separator
	msgValueBounds    = "selections out of bounds"
	msgCountBounds    = "amount of selections out of bounds"
	msgWholeNumber    = "type a whole number"
	msgRequired       = "input cannot be empty"
)

// ParseText accepts any line verbatim, whitespace included.
func ParseText(raw string) Outcome[string] {
	return Success(raw)
}

// ParseYesNo trims and lowercases the line, then matches it against the
// exact alias sets {"yes", "y"} and {"no", "n"}. Anything else is rejected.
func ParseYesNo(raw string) Outcome[bool] {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return Success(true)
	case "n", "no":
		return Success(false)
	}
	return Failure[bool](msgYesNo)
}

// ParseSelection reads a separator-delimited list of 1-based positions and
// returns the ascending set of zero-based indexes. Tokens are trimmed, empty
// tokens are dropped and duplicates collapse, so a blank line parses as the
// empty set. The parser checks syntax only; range checks belong to
// BoundedSelection.
func ParseSelection(raw string) Outcome[[]int] {
	seen := make(map[int]bool)
	picks := []int{}
	for _, token := range strings.Split(raw, Separator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return Failure[[]int](msgSelectionShape)
		}
		idx := n - 1
		if !seen[idx] {
			seen[idx] = true
			picks = append(picks, idx)
		}
	}
	sort.Ints(picks)
	return Success(picks)
}

// BoundedSelection wraps ParseSelection with range validation: every index
// must lie in [0, optionCount) and the number of selections in
// [minAllowed, maxAllowed]. Index range is checked before cardinality.
func BoundedSelection(optionCount, minAllowed, maxAllowed int) Parser[[]int] {
	return func(raw string) Outcome[[]int] {
		out := ParseSelection(raw)
		if !out.OK() {
			return out
		}
		picks := out.Value()
		for _, idx := range picks {
			if idx < 0 || idx >= optionCount {
				return Failure[[]int](msgValueBounds)
			}
		}
		if len(picks) < minAllowed || len(picks) > maxAllowed {
			return Failure[[]int](msgCountBounds)
		}
		return Success(picks)
	}
}
