package form

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/askline"
)

func runScripted(t *testing.T, f *Form, input string) ([]Answer, string) {
	t.Helper()
	var out bytes.Buffer
	comm := askline.New(strings.NewReader(input), &out, askline.WithPrompt(""))
	answers, err := NewRunner(comm).Run(f)
	require.NoError(t, err)
	return answers, out.String()
}

func TestRunnerAllKinds(t *testing.T) {
	f, err := Parse([]byte(sampleForm))
	require.NoError(t, err)

	answers, _ := runScripted(t, f, "ada\n2\n1,3\nyes\n12\n")
	assert.Equal(t, []Answer{
		{QuestionID: "name", Value: "ada"},
		{QuestionID: "editor", Value: "emacs"},
		{QuestionID: "languages", Value: "go, python"},
		{QuestionID: "remote", Value: "yes"},
		{QuestionID: "years", Value: "12"},
	}, answers)
}

func TestRunnerRetriesUntilValid(t *testing.T) {
	f, err := Parse([]byte(`
questions:
  - id: remote
    kind: yesno
    prompt: Do you work remotely?
`))
	require.NoError(t, err)

	answers, transcript := runScripted(t, f, "sometimes\nn\n")
	assert.Equal(t, "no", answers[0].Value)
	assert.Contains(t, transcript, "type y or n")
	assert.Equal(t, 2, strings.Count(transcript, "Do you work remotely?"),
		"the question is repeated after a rejection")
}

func TestRunnerTextDefault(t *testing.T) {
	f, err := Parse([]byte(`
questions:
  - id: shell
    prompt: Login shell
    default: /bin/bash
`))
	require.NoError(t, err)

	answers, _ := runScripted(t, f, "\n")
	assert.Equal(t, "/bin/bash", answers[0].Value)
}

func TestRunnerExhaustedInput(t *testing.T) {
	f, err := Parse([]byte(`
questions:
  - id: name
    prompt: Your name
    required: true
`))
	require.NoError(t, err)

	comm := askline.New(strings.NewReader(""), &bytes.Buffer{})
	_, err = NewRunner(comm).Run(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `question "name"`)
}
