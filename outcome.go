package askline

// Outcome is the immutable result of one parse attempt: either a typed value
// or a human-readable rejection message, never both.
type Outcome[T any] struct {
	value   T
	message string
	ok      bool
}

// Success returns an accepting Outcome carrying value.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, ok: true}
}

// Failure returns a rejecting Outcome carrying the message shown to the
// operator before the next attempt.
func Failure[T any](message string) Outcome[T] {
	return Outcome[T]{message: message}
}

// OK reports whether the attempt was accepted.
func (o Outcome[T]) OK() bool {
	return o.ok
}

// Value returns the parsed value. It is the zero value for rejections.
func (o Outcome[T]) Value() T {
	return o.value
}

// Message returns the rejection message. It is empty for accepted attempts.
func (o Outcome[T]) Message() string {
	return o.message
}
