// Package expect provides interactive console testing utilities using
// go-expect.
//
// It wraps the Netflix go-expect library so prompt loops can be exercised
// over a real pty: the Communicator reads and writes the console's tty while
// the test scripts the operator's side through the console master.
package expect

import (
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"
)

// DefaultTimeout bounds every expect operation so a wedged prompt fails the
// test instead of hanging it.
const DefaultTimeout = 10 * time.Second

// NewTestConsole creates a pty-backed console that is closed with the test.
func NewTestConsole(t *testing.T) *expect.Console {
	t.Helper()
	console, err := expect.NewConsole(expect.WithDefaultTimeout(DefaultTimeout))
	if err != nil {
		t.Fatalf("failed to create console: %v", err)
	}
	t.Cleanup(func() { console.Close() })
	return console
}

// Result carries a prompt loop's outcome across the goroutine boundary.
type Result[T any] struct {
	Value T
	Err   error
}

// Await reads a Result or fails the test after DefaultTimeout.
func Await[T any](t *testing.T, ch <-chan Result[T]) Result[T] {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(DefaultTimeout):
		t.Fatal("timed out waiting for prompt loop to return")
		return Result[T]{}
	}
}
