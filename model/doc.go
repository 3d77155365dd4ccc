package model

import "encoding/json"

// CompositionDoc is the declarative wire format. Optional numeric fields are
// pointers so an explicit zero survives defaulting. Unknown fields are
// ignored on decode.
type CompositionDoc struct {
	Tempo         *int       `json:"tempo"`
	TimeSignature []int      `json:"time_signature"`
	Key           string     `json:"key"`
	Octave        *int       `json:"octave"`
	Scale         string     `json:"scale"`
	Tracks        []TrackDoc `json:"tracks"`
}

// TrackDoc is one track descriptor. Pattern stays raw until the type tag
// picks its shape: melody [[degree, duration, rest], ...], bass
// [[degree, duration], ...], drums {"name": [hits...]}.
type TrackDoc struct {
	Type             string          `json:"type"`
	Instrument       string          `json:"instrument"`
	Progression      []int           `json:"progression"`
	DurationPerChord *float64        `json:"duration_per_chord"`
	Pattern          json.RawMessage `json:"pattern"`
	Measures         *int            `json:"measures"`

	// accepted for compatibility, never used by any builder
	Octave *int `json:"octave"`
}
