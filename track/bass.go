package track

import (
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/scale"
)

// BassStep is one pattern element: a 1-based scale degree and a duration
// in beats.
type BassStep struct {
	Degree   int
	Duration float64
}

// Bass plays degrees from a 2-octave expansion dropped down two octaves.
// Out-of-range degrees emit nothing but the cursor still advances, so the
// rest of the line stays in place.
func Bass(root uint8, def scale.Definition, pattern []BassStep) model.Track {
	scaleNotes := scale.Expand(root, def, 2)
	var bassNotes []int
	for _, note := range scaleNotes {
		if int(note)-24 >= 0 {
			bassNotes = append(bassNotes, int(note)-24)
		}
	}

	t := model.Track{
		Name:    "Bass",
		Channel: 2,
		Program: instrument.DefaultBassProgram,
	}

	cursor := 0.0
	for _, step := range pattern {
		if step.Degree > 0 && step.Degree <= len(bassNotes) {
			t.AddNote(model.NewNote(bassNotes[step.Degree-1], cursor, step.Duration, 90))
		}
		cursor += step.Duration
	}
	return t
}
