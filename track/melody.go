package track

import (
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/scale"
)

// MelodyStep is one pattern element: a 1-based scale degree (zero or
// negative means rest), a sounding duration and a trailing rest, in beats.
type MelodyStep struct {
	Degree   int
	Duration float64
	Rest     float64
}

// Melody walks the pattern over a 3-octave scale expansion. Degrees past
// the expansion wrap into higher octaves instead of erroring.
func Melody(root uint8, def scale.Definition, pattern []MelodyStep) model.Track {
	scaleNotes := scale.Expand(root, def, 3)
	t := model.Track{
		Name:    "Melody",
		Channel: 1,
		Program: instrument.DefaultMelodyProgram,
	}

	cursor := 0.0
	for _, step := range pattern {
		if step.Degree > 0 {
			idx := (step.Degree - 1) % len(scaleNotes)
			octaveOffset := ((step.Degree - 1) / len(scaleNotes)) * 12
			pitch := int(scaleNotes[idx]) + octaveOffset
			t.AddNote(model.NewNote(pitch, cursor, step.Duration, 85))
		}
		cursor += step.Duration + step.Rest
	}
	return t
}
