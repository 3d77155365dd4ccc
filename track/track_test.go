package track

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/scale"
)

func mustScale(t *testing.T, name string) scale.Definition {
	def, err := scale.ByName(name)
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func pitchesAt(tr model.Track, start float64) model.Notes {
	var res model.Notes
	for _, n := range tr.Notes {
		if n.Start == start {
			res = append(res, n.Pitch)
		}
	}
	return res
}

func startsOf(tr model.Track, pitch uint8) []float64 {
	var res []float64
	for _, n := range tr.Notes {
		if n.Pitch == pitch {
			res = append(res, n.Start)
		}
	}
	return res
}

func TestChordProgressionHarmonizesMajorDegrees(t *testing.T) {
	tr := ChordProgression(60, mustScale(t, "MAJOR"), []int{1, 4, 5, 1}, 2.0)

	assert := assert.New(t)
	assert.Equal(tr.Name, "Chord Progression")
	assert.Equal(tr.Channel, uint8(0))
	assert.Equal(tr.Program, uint8(4))
	assert.Equal(len(tr.Notes), 12)

	assert.Equal(pitchesAt(tr, 0), model.Notes{60, 64, 67})
	assert.Equal(pitchesAt(tr, 2), model.Notes{65, 69, 72})
	assert.Equal(pitchesAt(tr, 4), model.Notes{67, 71, 74})
	assert.Equal(pitchesAt(tr, 6), model.Notes{60, 64, 67})

	for _, n := range tr.Notes {
		assert.Equal(n.Duration, 2.0)
		assert.Equal(n.Velocity, uint8(70))
	}
}

func TestChordProgressionMinorHarmonizationAndTotalTime(t *testing.T) {
	tr := ChordProgression(57, mustScale(t, "MINOR"), []int{1, 6, 4, 5}, 4.0)

	assert := assert.New(t)
	assert.Equal(pitchesAt(tr, 0), model.Notes{57, 60, 64})

	var last float64
	for _, n := range tr.Notes {
		if n.End() > last {
			last = n.End()
		}
	}
	assert.Equal(last, 16.0)
}

func TestChordProgressionFallsBackToRootOnBadDegrees(t *testing.T) {
	assert := assert.New(t)

	zero := ChordProgression(60, mustScale(t, "MAJOR"), []int{0}, 1.0)
	assert.Equal(pitchesAt(zero, 0), model.Notes{60, 64, 67})

	huge := ChordProgression(60, mustScale(t, "MAJOR"), []int{25}, 1.0)
	assert.Equal(pitchesAt(huge, 0), model.Notes{60, 64, 67})
}

func TestMelodySkipsRestDegreesButKeepsTime(t *testing.T) {
	steps := []MelodyStep{
		{Degree: 1, Duration: 1, Rest: 0},
		{Degree: 0, Duration: 1, Rest: 0},
		{Degree: 2, Duration: 0.5, Rest: 0.5},
		{Degree: 1, Duration: 1, Rest: 0},
	}
	tr := Melody(60, mustScale(t, "MAJOR"), steps)

	assert := assert.New(t)
	assert.Equal(tr.Name, "Melody")
	assert.Equal(tr.Channel, uint8(1))
	assert.Equal(tr.Program, uint8(81))
	assert.Equal(len(tr.Notes), 3)

	assert.Equal(tr.Notes[0].Pitch, uint8(60))
	assert.Equal(tr.Notes[0].Start, 0.0)
	assert.Equal(tr.Notes[1].Pitch, uint8(62))
	assert.Equal(tr.Notes[1].Start, 2.0)
	assert.Equal(tr.Notes[1].Duration, 0.5)
	assert.Equal(tr.Notes[2].Start, 3.0)

	for _, n := range tr.Notes {
		assert.Equal(n.Velocity, uint8(85))
	}
}

func TestMelodyDegreesWrapPastTheExpandedScale(t *testing.T) {
	steps := []MelodyStep{{Degree: 22, Duration: 1, Rest: 0}}
	tr := Melody(60, mustScale(t, "MAJOR"), steps)

	assert := assert.New(t)
	assert.Equal(len(tr.Notes), 1)
	assert.Equal(tr.Notes[0].Pitch, uint8(72))
}

func TestBassShiftsDownTwoOctaves(t *testing.T) {
	steps := []BassStep{
		{Degree: 1, Duration: 1},
		{Degree: 8, Duration: 1},
		{Degree: 99, Duration: 1},
		{Degree: 3, Duration: 2},
	}
	tr := Bass(60, mustScale(t, "MAJOR"), steps)

	assert := assert.New(t)
	assert.Equal(tr.Name, "Bass")
	assert.Equal(tr.Channel, uint8(2))
	assert.Equal(tr.Program, uint8(33))
	assert.Equal(len(tr.Notes), 3)

	assert.Equal(tr.Notes[0].Pitch, uint8(36))
	assert.Equal(tr.Notes[0].Start, 0.0)
	assert.Equal(tr.Notes[1].Pitch, uint8(48))
	assert.Equal(tr.Notes[1].Start, 1.0)

	// the out of range degree emits nothing but still takes up a beat
	assert.Equal(tr.Notes[2].Pitch, uint8(40))
	assert.Equal(tr.Notes[2].Start, 3.0)
	assert.Equal(tr.Notes[2].Duration, 2.0)

	for _, n := range tr.Notes {
		assert.Equal(n.Velocity, uint8(90))
	}
}

func TestBassDropsNotesBelowMidiRange(t *testing.T) {
	tr := Bass(12, mustScale(t, "MAJOR"), []BassStep{{Degree: 1, Duration: 1}})

	assert := assert.New(t)
	assert.Equal(len(tr.Notes), 1)
	assert.Equal(tr.Notes[0].Pitch, uint8(0))
}

func TestDrumsRepeatPerMeasure(t *testing.T) {
	pattern := map[string][]float64{
		"kick":    {0, 2},
		"snare":   {1, 3},
		"cowbell": {0},
	}
	tr := Drums(pattern, 2, 4)

	assert := assert.New(t)
	assert.Equal(tr.Name, "Drums")
	assert.Equal(tr.Channel, uint8(9))
	assert.Equal(tr.Program, uint8(0))
	assert.Equal(len(tr.Notes), 8)

	assert.Equal(startsOf(tr, 36), []float64{0, 2, 4, 6})
	assert.Equal(startsOf(tr, 38), []float64{1, 3, 5, 7})

	for _, n := range tr.Notes {
		assert.Equal(n.Duration, 0.1)
		assert.Equal(n.Velocity, uint8(95))
	}
}

func TestDrumsFollowTheTimeSignature(t *testing.T) {
	pattern := map[string][]float64{"kick": {0}}
	tr := Drums(pattern, 3, 3)

	assert := assert.New(t)
	assert.Equal(startsOf(tr, 36), []float64{0, 3, 6})
}
