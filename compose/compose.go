// Package compose assembles a Composition from a declarative document.
package compose

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/pitch"
	"github.com/jsphweid/melodex/scale"
	"github.com/jsphweid/melodex/track"
)

var ErrMissingField = errors.New("missing required field")

// FromFile dispatches on extension: .yaml and .yml decode as YAML,
// everything else as JSON.
func FromFile(path string) (*model.Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %v: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return FromJSON(data)
	}
}

func FromYAML(data []byte) (*model.Composition, error) {
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("could not convert yaml document: %w", err)
	}
	return FromJSON(converted)
}

func FromJSON(data []byte) (*model.Composition, error) {
	var doc model.CompositionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}
	return FromDoc(doc)
}

// FromDoc resolves defaults, validates the key and scale up front, then
// walks the track descriptors in order. Any failure aborts the whole
// composition; there is no partial result.
func FromDoc(doc model.CompositionDoc) (*model.Composition, error) {
	tempo := constants.DefaultTempo
	if doc.Tempo != nil {
		tempo = *doc.Tempo
	}

	timeSig := model.TimeSignature{Beats: 4, Unit: 4}
	if len(doc.TimeSignature) >= 1 {
		timeSig.Beats = doc.TimeSignature[0]
	}
	if len(doc.TimeSignature) >= 2 {
		timeSig.Unit = doc.TimeSignature[1]
	}

	key := doc.Key
	if key == "" {
		key = "C"
	}
	octave := constants.DefaultOctave
	if doc.Octave != nil {
		octave = *doc.Octave
	}
	root, err := pitch.FromName(key, octave)
	if err != nil {
		return nil, err
	}

	scaleName := doc.Scale
	if scaleName == "" {
		scaleName = "MAJOR"
	}
	def, err := scale.ByName(scaleName)
	if err != nil {
		return nil, err
	}

	c := &model.Composition{Tempo: tempo, TimeSig: timeSig}
	for i, td := range doc.Tracks {
		switch td.Type {
		case "chord_progression":
			if td.Progression == nil {
				return nil, missingField("progression", i)
			}
			duration := 4.0
			if td.DurationPerChord != nil {
				duration = *td.DurationPerChord
			}
			t := track.ChordProgression(root, def, td.Progression, duration)
			applyInstrument(&t, td.Instrument, instrument.DefaultChordsProgram)
			c.AddTrack(t)
		case "melody":
			steps, err := melodySteps(td.Pattern, i)
			if err != nil {
				return nil, err
			}
			t := track.Melody(root, def, steps)
			applyInstrument(&t, td.Instrument, instrument.DefaultMelodyProgram)
			c.AddTrack(t)
		case "bass":
			steps, err := bassSteps(td.Pattern, i)
			if err != nil {
				return nil, err
			}
			t := track.Bass(root, def, steps)
			applyInstrument(&t, td.Instrument, instrument.DefaultBassProgram)
			c.AddTrack(t)
		case "drums":
			if td.Pattern == nil {
				return nil, missingField("pattern", i)
			}
			var pattern map[string][]float64
			if err := json.Unmarshal(td.Pattern, &pattern); err != nil {
				return nil, fmt.Errorf("track %v: could not parse drum pattern: %w", i, err)
			}
			measures := 4
			if td.Measures != nil {
				measures = *td.Measures
			}
			c.AddTrack(track.Drums(pattern, measures, timeSig.Beats))
		default:
			// unrecognized track types are skipped, not rejected
		}
	}
	return c, nil
}

func missingField(field string, trackIdx int) error {
	return fmt.Errorf("track %v: %w: %v", trackIdx, ErrMissingField, field)
}

func applyInstrument(t *model.Track, name string, fallback uint8) {
	if name == "" {
		return
	}
	t.Program = instrument.Lookup(name, fallback)
}

func melodySteps(raw json.RawMessage, trackIdx int) ([]track.MelodyStep, error) {
	if raw == nil {
		return nil, missingField("pattern", trackIdx)
	}
	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("track %v: could not parse melody pattern: %w", trackIdx, err)
	}
	steps := make([]track.MelodyStep, 0, len(rows))
	for j, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("track %v: melody pattern step %v needs [degree, duration, rest]", trackIdx, j)
		}
		steps = append(steps, track.MelodyStep{Degree: int(row[0]), Duration: row[1], Rest: row[2]})
	}
	return steps, nil
}

func bassSteps(raw json.RawMessage, trackIdx int) ([]track.BassStep, error) {
	if raw == nil {
		return nil, missingField("pattern", trackIdx)
	}
	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("track %v: could not parse bass pattern: %w", trackIdx, err)
	}
	steps := make([]track.BassStep, 0, len(rows))
	for j, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("track %v: bass pattern step %v needs [degree, duration]", trackIdx, j)
		}
		steps = append(steps, track.BassStep{Degree: int(row[0]), Duration: row[1]})
	}
	return steps, nil
}
