package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPromptListsTheRegistries(t *testing.T) {
	p := SystemPrompt()

	assert := assert.New(t)
	assert.Contains(p, "PENTATONIC_MAJOR")
	assert.Contains(p, "acoustic_grand_piano")
	assert.Contains(p, "closed_hihat")
	assert.Contains(p, "chord_progression")
	assert.Contains(p, "<midi_spec>")
}

func TestExtractsTaggedDocument(t *testing.T) {
	response := `Sure, here is a short loop.

<midi_spec>
{"tempo": 100, "tracks": []}
</midi_spec>

Let me know if you want it longer.`

	doc, ok := ExtractDocument(response)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(doc, `{"tempo": 100, "tracks": []}`)
}

func TestExtractFailsWithoutTags(t *testing.T) {
	_, ok := ExtractDocument(`{"tempo": 100}`)

	assert := assert.New(t)
	assert.False(ok)
}

func TestExtractFailsOnInvalidJSON(t *testing.T) {
	_, ok := ExtractDocument("<midi_spec>not json</midi_spec>")

	assert := assert.New(t)
	assert.False(ok)
}

func TestExtractFailsOnReversedTags(t *testing.T) {
	_, ok := ExtractDocument("</midi_spec>{}<midi_spec>")

	assert := assert.New(t)
	assert.False(ok)
}
