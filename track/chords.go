// Package track turns abstract patterns into timed note events. Every
// builder keeps a running cursor in beats and leaves time-to-seconds
// conversion to the midi sink.
package track

import (
	"github.com/jsphweid/melodex/chord"
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/scale"
)

// ChordProgression emits one diatonic chord per scale degree. A degree that
// falls outside the expanded scale keeps the unmodified root as its chord
// root; unlike the melody builder there is no octave wraparound here.
func ChordProgression(root uint8, def scale.Definition, progression []int, durationPerChord float64) model.Track {
	scaleNotes := scale.Expand(root, def, 3)
	t := model.Track{
		Name:    "Chord Progression",
		Channel: 0,
		Program: instrument.DefaultChordsProgram,
	}

	cursor := 0.0
	for _, degree := range progression {
		chordRoot := root
		if degree >= 1 && degree <= len(scaleNotes) {
			chordRoot = scaleNotes[degree-1]
		}
		quality := chord.HarmonizeDegree(degree, def.IsMajor())
		for _, pitch := range chord.Build(chordRoot, quality, 0, false) {
			t.AddNote(model.NewNote(int(pitch), cursor, durationPerChord, 70))
		}
		cursor += durationPerChord
	}
	return t
}
