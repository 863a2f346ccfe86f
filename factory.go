package askline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Construction errors. These signal misuse by the calling code, never bad
// operator input, and are returned at construction time.
var (
	ErrNoOptions         = errors.New("at least one option is required")
	ErrNegativeMin       = errors.New("minimum selection count cannot be negative")
	ErrInvertedBounds    = errors.New("maximum selection count cannot be below the minimum")
	ErrMaxExceedsOptions = errors.New("maximum selection count cannot exceed the option count")
)

// Text prompts for a free-form line and returns it verbatim.
func Text(instruction string) Action[string] {
	return Action[string]{Instruction: instruction, Parse: ParseText}
}

// TextDefault prompts for a free-form line, substituting fallback when the
// reply is blank. The fallback is shown in brackets after the instruction.
func TextDefault(instruction, fallback string) Action[string] {
	return Action[string]{
		Instruction: fmt.Sprintf("%s [%s]", instruction, fallback),
		Parse: func(raw string) Outcome[string] {
			if strings.TrimSpace(raw) == "" {
				return Success(fallback)
			}
			return Success(raw)
		},
	}
}

// Required prompts for a free-form line and rejects blank replies, returning
// the trimmed value.
func Required(instruction string) Action[string] {
	return Action[string]{
		Instruction: instruction,
		Parse: func(raw string) Outcome[string] {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				return Failure[string](msgRequired)
			}
			return Success(trimmed)
		},
	}
}

// YesNo asks a yes/no question, appending a "(y / n)" hint to it.
func YesNo(question string) Action[bool] {
	return Action[bool]{Instruction: question + "\t(y / n)", Parse: ParseYesNo}
}

// Int prompts for a whole number.
func Int(instruction string) Action[int] {
	return Action[int]{
		Instruction: instruction,
		Parse: func(raw string) Outcome[int] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return Failure[int](msgWholeNumber)
			}
			return Success(n)
		},
	}
}

// SingleChoice asks the operator to pick exactly one of options and returns
// the zero-based index of the pick. The rendered instruction lists options
// 1-based with no selection-count hint. Returns ErrNoOptions when options is
// empty.
func SingleChoice(instruction string, options []string) (Action[int], error) {
	if len(options) == 0 {
		return Action[int]{}, ErrNoOptions
	}
	bounded := BoundedSelection(len(options), 1, 1)
	return Action[int]{
		Instruction: renderOptions(instruction, options, 1, 1),
		Parse: func(raw string) Outcome[int] {
			out := bounded(raw)
			if !out.OK() {
				return Failure[int](out.Message())
			}
			return Success(out.Value()[0])
		},
	}, nil
}

// MultiChoice asks the operator to pick between minAllowed and maxAllowed of
// options, returning the ascending zero-based indexes of the picks.
// Preconditions are checked in order: options must be non-empty, minAllowed
// non-negative, maxAllowed at least minAllowed and at most len(options).
func MultiChoice(instruction string, options []string, minAllowed, maxAllowed int) (Action[[]int], error) {
	switch {
	case len(options) == 0:
		return Action[[]int]{}, ErrNoOptions
	case minAllowed < 0:
		return Action[[]int]{}, ErrNegativeMin
	case maxAllowed < minAllowed:
		return Action[[]int]{}, ErrInvertedBounds
	case maxAllowed > len(options):
		return Action[[]int]{}, ErrMaxExceedsOptions
	}
	return Action[[]int]{
		Instruction: renderOptions(instruction, options, minAllowed, maxAllowed),
		Parse:       BoundedSelection(len(options), minAllowed, maxAllowed),
	}, nil
}
