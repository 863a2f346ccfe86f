package askline

// Parser converts one raw input line into a typed Outcome. Implementations
// must be pure functions of their input: the communicator hands them the
// exact line it read, whitespace included, and may call them any number of
// times across retries.
type Parser[T any] func(raw string) Outcome[T]

// Action pairs the instruction shown to the operator with the parser that
// understands the reply. Actions hold no mutable state and may be reused
// across any number of prompt loops.
type Action[T any] struct {
	Instruction string
	Parse       Parser[T]
}
