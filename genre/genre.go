// Package genre holds ready-made composition templates.
package genre

import (
	"sort"
	"strings"

	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/pitch"
	"github.com/jsphweid/melodex/scale"
	"github.com/jsphweid/melodex/track"
)

type Template struct {
	TempoRange    [2]int
	Scale         string
	TimeSignature model.TimeSignature
	Chords        string
	Melody        string
	Bass          string
	Progression   []int
}

var templates = map[string]Template{
	"lofi": {
		TempoRange:    [2]int{70, 90},
		Scale:         "MINOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "rhodes",
		Melody:        "electric_piano",
		Bass:          "electric_bass_finger",
		Progression:   []int{1, 6, 4, 5},
	},
	"jazz": {
		TempoRange:    [2]int{120, 180},
		Scale:         "DORIAN",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "acoustic_grand_piano",
		Melody:        "tenor_sax",
		Bass:          "acoustic_bass",
		Progression:   []int{2, 5, 1},
	},
	"funk": {
		TempoRange:    [2]int{95, 115},
		Scale:         "MINOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "electric_guitar_clean",
		Melody:        "trumpet",
		Bass:          "slap_bass",
		Progression:   []int{1, 1, 1, 1},
	},
	"ambient": {
		TempoRange:    [2]int{60, 80},
		Scale:         "MAJOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "synth_pad_warm",
		Melody:        "synth_pad_choir",
		Bass:          "synth_bass_1",
		Progression:   []int{1, 5, 6, 4},
	},
	"pop": {
		TempoRange:    [2]int{100, 130},
		Scale:         "MAJOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "electric_piano",
		Melody:        "synth_lead_sawtooth",
		Bass:          "electric_bass_finger",
		Progression:   []int{1, 5, 6, 4},
	},
	"rock": {
		TempoRange:    [2]int{120, 140},
		Scale:         "MINOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "electric_guitar_clean",
		Melody:        "synth_lead_square",
		Bass:          "electric_bass_pick",
		Progression:   []int{1, 4, 5, 1},
	},
}

// ByName is case-insensitive. Unrecognized genres get a generic template
// rather than an error.
func ByName(name string) Template {
	if t, ok := templates[strings.ToLower(name)]; ok {
		return t
	}
	return Template{
		TempoRange:    [2]int{120, 140},
		Scale:         "MAJOR",
		TimeSignature: model.TimeSignature{Beats: 4, Unit: 4},
		Chords:        "electric_piano",
		Melody:        "synth_lead_sawtooth",
		Bass:          "electric_bass_finger",
		Progression:   []int{1, 4, 5, 1},
	}
}

func Names() []string {
	var names []string
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SyncopatedRhythm returns a funk-style kick/snare/hat pattern spanning the
// given number of 4-beat measures.
func SyncopatedRhythm(measures int) map[string][]float64 {
	pattern := map[string][]float64{"kick": {}, "snare": {}, "closed_hihat": {}}
	for measure := 0; measure < measures; measure++ {
		offset := float64(measure * 4)
		pattern["kick"] = append(pattern["kick"], offset, offset+1.5, offset+2.5)
		pattern["snare"] = append(pattern["snare"], offset+1, offset+3)
		for i := 0; i < 16; i++ {
			pattern["closed_hihat"] = append(pattern["closed_hihat"], offset+float64(i)*0.25)
		}
	}
	return pattern
}

// Quick builds a full composition from a genre template: a chord
// progression, a bass line doubling the progression roots, and for the
// backbeat genres a drum track. A tempo of 0 or less picks the middle of
// the template's range.
func Quick(genreName, key string, tempo int) (*model.Composition, error) {
	template := ByName(genreName)
	if tempo <= 0 {
		tempo = (template.TempoRange[0] + template.TempoRange[1]) / 2
	}

	root, err := pitch.FromName(key, 3)
	if err != nil {
		return nil, err
	}
	def, err := scale.ByName(template.Scale)
	if err != nil {
		return nil, err
	}

	c := &model.Composition{Tempo: tempo, TimeSig: template.TimeSignature}

	chords := track.ChordProgression(root, def, template.Progression, 4.0)
	chords.Program = instrument.Lookup(template.Chords, instrument.DefaultChordsProgram)
	c.AddTrack(chords)

	bassPattern := make([]track.BassStep, 0, len(template.Progression))
	for _, degree := range template.Progression {
		bassPattern = append(bassPattern, track.BassStep{Degree: degree, Duration: 4.0})
	}
	bass := track.Bass(root, def, bassPattern)
	bass.Program = instrument.Lookup(template.Bass, instrument.DefaultBassProgram)
	c.AddTrack(bass)

	switch strings.ToLower(genreName) {
	case "funk":
		c.AddTrack(track.Drums(SyncopatedRhythm(1), 4, c.TimeSig.Beats))
	case "lofi", "pop", "rock":
		pattern := map[string][]float64{
			"kick":         {0, 2},
			"snare":        {1, 3},
			"closed_hihat": {0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		}
		c.AddTrack(track.Drums(pattern, 4, c.TimeSig.Beats))
	}

	return c, nil
}
