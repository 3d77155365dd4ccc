package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/melodex/model"
)

func TestByNameIsCaseInsensitive(t *testing.T) {
	template := ByName("LoFi")

	assert := assert.New(t)
	assert.Equal(template.TempoRange, [2]int{70, 90})
	assert.Equal(template.Scale, "MINOR")
	assert.Equal(template.Chords, "rhodes")
	assert.Equal(template.Progression, []int{1, 6, 4, 5})
}

func TestUnknownGenresGetTheGenericTemplate(t *testing.T) {
	template := ByName("polka")

	assert := assert.New(t)
	assert.Equal(template.Scale, "MAJOR")
	assert.Equal(template.TempoRange, [2]int{120, 140})
	assert.Equal(template.Progression, []int{1, 4, 5, 1})
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()

	assert := assert.New(t)
	assert.Equal(names, []string{"ambient", "funk", "jazz", "lofi", "pop", "rock"})
}

func TestQuickPicksTheMiddleOfTheTempoRange(t *testing.T) {
	assert := assert.New(t)

	ambient, err := Quick("ambient", "C", 0)
	assert.Nil(err)
	assert.Equal(ambient.Tempo, 70)

	jazz, err := Quick("jazz", "C", 0)
	assert.Nil(err)
	assert.Equal(jazz.Tempo, 150)

	given, err := Quick("ambient", "C", 93)
	assert.Nil(err)
	assert.Equal(given.Tempo, 93)
}

func TestQuickBuildsChordsAndBassForEveryGenre(t *testing.T) {
	c, err := Quick("ambient", "C", 0)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(c.Tracks), 2)
	assert.Equal(c.Tracks[0].Name, "Chord Progression")
	assert.Equal(c.Tracks[1].Name, "Bass")

	// root is always placed in octave 3
	assert.Equal(c.Tracks[0].Notes[0].Pitch, uint8(48))
	assert.Equal(c.Tracks[0].Notes[0].Duration, 4.0)

	// bass doubles the progression roots, one chord length each
	assert.Equal(len(c.Tracks[1].Notes), 4)
	assert.Equal(c.Tracks[1].Notes[0].Pitch, uint8(24))
	assert.Equal(c.Tracks[1].Notes[0].Duration, 4.0)
	assert.Equal(c.Tracks[1].Notes[3].Start, 12.0)
}

func TestQuickAppliesTemplateInstruments(t *testing.T) {
	c, err := Quick("ambient", "C", 0)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(c.Tracks[0].Program, uint8(89))
	assert.Equal(c.Tracks[1].Program, uint8(38))
}

func TestQuickAddsBackbeatDrums(t *testing.T) {
	c, err := Quick("pop", "C", 0)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(c.Tracks), 3)

	drums := c.Tracks[2]
	assert.Equal(drums.Name, "Drums")
	assert.Equal(drums.Channel, uint8(9))
	assert.Equal(len(drums.Notes), 48)
}

func TestQuickFunkUsesTheSyncopatedPattern(t *testing.T) {
	c, err := Quick("funk", "C", 0)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(c.Tracks), 3)

	var kicks []float64
	for _, n := range c.Tracks[2].Notes {
		if n.Pitch == 36 {
			kicks = append(kicks, n.Start)
		}
	}
	assert.Equal(kicks, []float64{0, 1.5, 2.5, 4, 5.5, 6.5, 8, 9.5, 10.5, 12, 13.5, 14.5})
}

func TestQuickLeavesQuietGenresWithoutDrums(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"jazz", "ambient"} {
		c, err := Quick(name, "C", 0)
		assert.Nil(err)
		assert.Equal(len(c.Tracks), 2)
	}
}

func TestQuickHarmonizesWithTheTemplateScale(t *testing.T) {
	c, err := Quick("jazz", "C", 0)

	assert := assert.New(t)
	assert.Nil(err)

	// dorian is not the major scale, so degree 2 gets a diminished triad
	var first model.Notes
	for _, n := range c.Tracks[0].Notes {
		if n.Start == 0 {
			first = append(first, n.Pitch)
		}
	}
	assert.Equal(first, model.Notes{50, 53, 56})
}

func TestQuickRejectsBadKeys(t *testing.T) {
	_, err := Quick("pop", "X", 0)

	assert := assert.New(t)
	assert.NotNil(err)
}
