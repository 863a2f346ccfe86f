package askline

import "errors"

// ErrNoAlternatives is returned by Run when no options were registered.
var ErrNoAlternatives = errors.New("no alternatives registered")

// Selection identifies the alternative the operator picked. It is passed to
// the winning handler explicitly, so a handler can only ever observe the
// selection it is running for, and nested Choose calls cannot clobber each
// other's bindings.
type Selection struct {
	// Index is the zero-based position of the pick in registration order.
	Index int
	// Label is the text the pick was displayed under.
	Label string
}

// Alternatives accumulates labeled handlers for a single-choice prompt.
// Registration order fixes the 1-based position each label is displayed
// under. An instance is built up, run once, and discarded.
type Alternatives[T any] struct {
	comm     *Communicator
	question string
	labels   []string
	handlers []func(Selection) (T, error)
}

// Choose starts a fluent single-choice prompt over labeled alternatives:
//
//	dish, err := askline.Choose[string](comm, "What would you like?").
//		Option("pizza", order(pizzeria)).
//		Option("curry", order(curryHouse)).
//		Run()
func Choose[T any](c *Communicator, question string) *Alternatives[T] {
	return &Alternatives[T]{comm: c, question: question}
}

// Option registers label with the handler invoked if the operator picks it.
// Handlers run lazily: only the picked one is ever invoked.
func (a *Alternatives[T]) Option(label string, handler func(Selection) (T, error)) *Alternatives[T] {
	a.labels = append(a.labels, label)
	a.handlers = append(a.handlers, handler)
	return a
}

// Run prompts until the operator picks exactly one alternative, then invokes
// that alternative's handler with its Selection and returns the handler's
// result. Running with no registered alternatives returns ErrNoAlternatives;
// an exhausted input source propagates from the prompt loop.
func (a *Alternatives[T]) Run() (T, error) {
	var zero T
	if len(a.labels) == 0 {
		return zero, ErrNoAlternatives
	}
	action, err := SingleChoice(a.question, a.labels)
	if err != nil {
		return zero, err
	}
	idx, err := Prompt(a.comm, action)
	if err != nil {
		return zero, err
	}
	return a.handlers[idx](Selection{Index: idx, Label: a.labels[idx]})
}
