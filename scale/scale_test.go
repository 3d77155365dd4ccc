package scale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/melodex/model"
)

func TestExpandsMajorScaleOverOneOctave(t *testing.T) {
	def, err := ByName("MAJOR")
	notes := Expand(60, def, 1)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(notes, model.Notes{60, 62, 64, 65, 67, 69, 71})
}

func TestExpandRepeatsOffsetsPerOctave(t *testing.T) {
	def, _ := ByName("MINOR")
	notes := Expand(48, def, 3)

	assert := assert.New(t)
	assert.Equal(len(notes), 21)
	assert.Equal(notes[0], uint8(48))
	assert.Equal(notes[7], uint8(60))
	assert.Equal(notes[14], uint8(72))
}

func TestExpandedNotesNeverDecrease(t *testing.T) {
	for name := range definitions {
		def, err := ByName(name)
		if err != nil {
			t.Fatal(err)
		}
		notes := Expand(36, def, 3)
		if len(notes) > 3*len(def.Offsets) {
			t.Errorf("%v expanded past its span", name)
		}
		for i := 1; i < len(notes); i++ {
			if notes[i] < notes[i-1] {
				t.Errorf("%v decreases at position %v", name, i)
			}
		}
	}
}

func TestExpandSkipsPitchesPastMidiRange(t *testing.T) {
	def, _ := ByName("MAJOR")
	notes := Expand(120, def, 2)

	assert := assert.New(t)
	assert.Equal(notes, model.Notes{120, 122, 124, 125, 127})
}

func TestByNameNormalizesCase(t *testing.T) {
	def, err := ByName("  dorian ")

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(def.Name, "DORIAN")
	assert.Equal(def.Offsets, []int{0, 2, 3, 5, 7, 9, 10})
}

func TestByNameRejectsUnknownScale(t *testing.T) {
	_, err := ByName("SUPER_LOCRIAN")

	assert := assert.New(t)
	assert.NotNil(err)
	assert.True(errors.Is(err, ErrUnknown))
}

func TestOnlyTheMajorScaleIsMajor(t *testing.T) {
	assert := assert.New(t)
	for name := range definitions {
		def, err := ByName(name)
		assert.Nil(err)
		assert.Equal(def.IsMajor(), name == "MAJOR")
	}
}

func TestNamesAreSortedAndComplete(t *testing.T) {
	names := Names()

	assert := assert.New(t)
	assert.Equal(len(names), len(definitions))
	for i := 1; i < len(names); i++ {
		assert.Less(names[i-1], names[i])
	}
	assert.Contains(names, "PENTATONIC_MAJOR")
	assert.Contains(names, "WHOLE_TONE")
}
