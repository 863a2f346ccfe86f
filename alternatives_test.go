package askline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseInvokesSelectedHandler(t *testing.T) {
	in := strings.NewReader("2\n")
	var out bytes.Buffer
	comm := New(in, &out, WithPrompt(""))

	position := func(sel Selection) (int, error) { return sel.Index + 1, nil }

	value, err := Choose[int](comm, "Pick one").
		Option("one", position).
		Option("two", position).
		Run()
	require.NoError(t, err)
	assert.Equal(t, 2, value, "the second handler reports its own 1-based position")
	assert.Equal(t, "Pick one\n1) one\n2) two\n", out.String())
}

func TestChooseSelectionCarriesLabel(t *testing.T) {
	comm := New(strings.NewReader("1\n"), &bytes.Buffer{}, WithPrompt(""))

	label, err := Choose[string](comm, "Pick one").
		Option("pizza", func(sel Selection) (string, error) { return sel.Label, nil }).
		Option("curry", func(sel Selection) (string, error) { return sel.Label, nil }).
		Run()
	require.NoError(t, err)
	assert.Equal(t, "pizza", label)
}

func TestChooseRetriesInvalidSelection(t *testing.T) {
	in := strings.NewReader("5\nx\n1,2\n2\n")
	var out bytes.Buffer
	comm := New(in, &out, WithPrompt(""))

	value, err := Choose[string](comm, "Pick one").
		Option("a", func(sel Selection) (string, error) { return sel.Label, nil }).
		Option("b", func(sel Selection) (string, error) { return sel.Label, nil }).
		Run()
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	transcript := out.String()
	assert.Contains(t, transcript, msgValueBounds)
	assert.Contains(t, transcript, msgSelectionShape)
	assert.Contains(t, transcript, msgCountBounds)
}

func TestChooseNoAlternatives(t *testing.T) {
	comm := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := Choose[int](comm, "Pick one").Run()
	require.ErrorIs(t, err, ErrNoAlternatives)
}

func TestChooseHandlerErrorPropagates(t *testing.T) {
	comm := New(strings.NewReader("1\n"), &bytes.Buffer{}, WithPrompt(""))
	boom := errors.New("boom")

	_, err := Choose[int](comm, "Pick one").
		Option("explode", func(Selection) (int, error) { return 0, boom }).
		Run()
	require.ErrorIs(t, err, boom)
}

func TestChooseNested(t *testing.T) {
	// outer pick 1 ("food"), inner pick 2 ("curry"); the outer selection must
	// still be intact after the inner Run returns
	in := strings.NewReader("1\n2\n")
	var out bytes.Buffer
	comm := New(in, &out, WithPrompt(""))

	value, err := Choose[string](comm, "What next?").
		Option("food", func(outer Selection) (string, error) {
			inner, err := Choose[string](comm, "Which food?").
				Option("pizza", func(sel Selection) (string, error) { return sel.Label, nil }).
				Option("curry", func(sel Selection) (string, error) { return sel.Label, nil }).
				Run()
			if err != nil {
				return "", err
			}
			return outer.Label + "/" + inner, nil
		}).
		Option("sleep", func(sel Selection) (string, error) { return sel.Label, nil }).
		Run()
	require.NoError(t, err)
	assert.Equal(t, "food/curry", value)
}

func TestChooseExhaustedInput(t *testing.T) {
	comm := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := Choose[int](comm, "Pick one").
		Option("only", func(Selection) (int, error) { return 1, nil }).
		Run()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoAlternatives)
}
