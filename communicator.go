// Package askline is a line-oriented console prompting toolkit: it shows an
// instruction, reads one line, converts it to a typed value, and re-prompts
// with the rejection reason until the line parses. It knows nothing about
// terminals beyond "read a line" and "write a line" and works against any
// io.Reader/io.Writer pair.
package askline

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultPrompt is the marker written before each read unless overridden
// with WithPrompt.
const DefaultPrompt = "> "

// Communicator runs prompt/parse/retry loops over a line-oriented console.
// It is configured once at construction and holds no per-prompt state, so a
// single instance serves any number of sequential prompts.
type Communicator struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
	log    *slog.Logger
}

// Option configures a Communicator at construction time.
type Option func(*Communicator)

// WithPrompt sets the marker written, without a trailing newline, before
// each read.
func WithPrompt(prompt string) Option {
	return func(c *Communicator) { c.prompt = prompt }
}

// WithLogger sets the logger used for debug-level retry logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Communicator) { c.log = log }
}

// New creates a Communicator reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Communicator {
	c := &Communicator{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: DefaultPrompt,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prompt runs the action's loop on c until a line parses: it writes the
// instruction and the prompt marker, reads one line, and applies the
// action's parser. Rejected lines print their message and the loop restarts;
// there is no retry limit. The returned error is fatal and reports an
// exhausted or broken input source, never malformed operator input.
//
// Prompt is a top-level function because Go methods cannot introduce type
// parameters.
func Prompt[T any](c *Communicator, action Action[T]) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if _, err := fmt.Fprintf(c.out, "%s\n%s", action.Instruction, c.prompt); err != nil {
			return zero, fmt.Errorf("failed to write instruction: %w", err)
		}
		line, err := c.readLine()
		if err != nil {
			return zero, fmt.Errorf("failed to read input: %w", err)
		}
		out := action.Parse(line)
		if out.OK() {
			c.log.Debug("prompt input accepted", "attempt", attempt)
			return out.Value(), nil
		}
		c.log.Debug("prompt input rejected", "attempt", attempt, "reason", out.Message())
		if _, err := fmt.Fprintln(c.out, out.Message()); err != nil {
			return zero, fmt.Errorf("failed to write rejection: %w", err)
		}
	}
}

// readLine reads one line without its terminator. A final unterminated line
// before EOF still counts as a line; the EOF surfaces on the next read.
func (c *Communicator) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
