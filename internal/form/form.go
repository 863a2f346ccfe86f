// Package form loads YAML questionnaire definitions and runs them
// interactively over an askline Communicator.
package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind identifies how a question's reply is parsed.
type Kind string

const (
	KindText   Kind = "text"   // free-form line
	KindYesNo  Kind = "yesno"  // y/n question
	KindSingle Kind = "single" // exactly one of Options
	KindMulti  Kind = "multi"  // between Min and Max of Options
	KindInt    Kind = "int"    // whole number
)

// Question is one prompt in a questionnaire.
type Question struct {
	ID       string   `yaml:"id"`       // Stable identifier, unique within the form
	Kind     Kind     `yaml:"kind"`     // Reply type, defaults to text
	Prompt   string   `yaml:"prompt"`   // Instruction shown to the operator
	Options  []string `yaml:"options"`  // Choices for single/multi kinds
	Min      int      `yaml:"min"`      // Minimum picks for multi (default 1)
	Max      int      `yaml:"max"`      // Maximum picks for multi (default all)
	Default  string   `yaml:"default"`  // Fallback for blank text replies
	Required bool     `yaml:"required"` // Reject blank text replies
}

// Form is an ordered questionnaire.
type Form struct {
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Load reads and validates a questionnaire file.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates questionnaire YAML.
func Parse(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid form: %w", err)
	}
	return &f, nil
}

// applyDefaults fills in the optional fields before validation.
func (f *Form) applyDefaults() {
	for i := range f.Questions {
		q := &f.Questions[i]
		if q.Kind == "" {
			q.Kind = KindText
		}
		if q.Kind == KindMulti {
			if q.Min == 0 && q.Max == 0 {
				q.Min = 1
				q.Max = len(q.Options)
			} else if q.Max == 0 {
				q.Max = len(q.Options)
			}
		}
	}
}

// Validate checks the questionnaire for structural problems. Selection-count
// bounds are left to the action factory, which owns those preconditions.
func (f *Form) Validate() error {
	if len(f.Questions) == 0 {
		return fmt.Errorf("form has no questions")
	}

	seen := make(map[string]bool, len(f.Questions))
	for _, q := range f.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %q: missing id", q.Prompt)
		}
		if seen[q.ID] {
			return fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			return fmt.Errorf("question %q: missing prompt", q.ID)
		}

		switch q.Kind {
		case KindText, KindYesNo, KindInt:
			if len(q.Options) > 0 {
				return fmt.Errorf("question %q: %s questions take no options", q.ID, q.Kind)
			}
		case KindSingle, KindMulti:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %q: %s questions need options", q.ID, q.Kind)
			}
		default:
			return fmt.Errorf("question %q: unknown kind %q", q.ID, q.Kind)
		}
	}
	return nil
}
