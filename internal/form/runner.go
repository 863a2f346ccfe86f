package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runger/askline"
)

// Answer is one recorded reply, rendered as text.
type Answer struct {
	QuestionID string
	Value      string
}

// Runner executes forms over one communicator.
type Runner struct {
	comm *askline.Communicator
}

// NewRunner creates a Runner prompting through comm.
func NewRunner(comm *askline.Communicator) *Runner {
	return &Runner{comm: comm}
}

// Run asks every question in order and returns the collected answers.
// Multi-choice answers join the picked option labels with ", ". The returned
// error reports a misdeclared question or an exhausted input source; replies
// the operator eventually got right are never errors.
func (r *Runner) Run(f *Form) ([]Answer, error) {
	answers := make([]Answer, 0, len(f.Questions))
	for _, q := range f.Questions {
		value, err := r.ask(q)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.ID, err)
		}
		answers = append(answers, Answer{QuestionID: q.ID, Value: value})
	}
	return answers, nil
}

func (r *Runner) ask(q Question) (string, error) {
	switch q.Kind {
	case KindText:
		return r.askText(q)

	case KindYesNo:
		yes, err := askline.Prompt(r.comm, askline.YesNo(q.Prompt))
		if err != nil {
			return "", err
		}
		if yes {
			return "yes", nil
		}
		return "no", nil

	case KindInt:
		n, err := askline.Prompt(r.comm, askline.Int(q.Prompt))
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil

	case KindSingle:
		action, err := askline.SingleChoice(q.Prompt, q.Options)
		if err != nil {
			return "", err
		}
		idx, err := askline.Prompt(r.comm, action)
		if err != nil {
			return "", err
		}
		return q.Options[idx], nil

	case KindMulti:
		action, err := askline.MultiChoice(q.Prompt, q.Options, q.Min, q.Max)
		if err != nil {
			return "", err
		}
		picks, err := askline.Prompt(r.comm, action)
		if err != nil {
			return "", err
		}
		labels := make([]string, len(picks))
		for i, idx := range picks {
			labels[i] = q.Options[idx]
		}
		return strings.Join(labels, ", "), nil
	}
	return "", fmt.Errorf("unknown kind %q", q.Kind)
}

func (r *Runner) askText(q Question) (string, error) {
	var action askline.Action[string]
	switch {
	case q.Default != "":
		action = askline.TextDefault(q.Prompt, q.Default)
	case q.Required:
		action = askline.Required(q.Prompt)
	default:
		action = askline.Text(q.Prompt)
	}
	return askline.Prompt(r.comm, action)
}
