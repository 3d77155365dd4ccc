package model

import (
	"github.com/jsphweid/melodex/util"
)

type Notes = []uint8

// Note is one timed note event. Times are in beats, not seconds; only the
// midi sink knows about tempo.
type Note struct {
	Pitch    uint8   `json:"pitch"`
	Start    float64 `json:"start_time"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}

// NewNote saturates pitch and velocity into midi range instead of erroring.
func NewNote(pitch int, start float64, duration float64, velocity int) Note {
	return Note{
		Pitch:    uint8(util.Clamp(pitch, 0, 127)),
		Start:    start,
		Duration: duration,
		Velocity: uint8(util.Clamp(velocity, 0, 127)),
	}
}

func (n Note) End() float64 {
	return n.Start + n.Duration
}

type Track struct {
	Name    string `json:"name"`
	Channel uint8  `json:"channel"`
	Program uint8  `json:"program"`
	Notes   []Note `json:"notes"`
}

func (t *Track) AddNote(n Note) {
	t.Notes = append(t.Notes, n)
}

type TimeSignature struct {
	Beats int `json:"beats"`
	Unit  int `json:"unit"`
}

type Composition struct {
	Tempo   int           `json:"tempo"`
	TimeSig TimeSignature `json:"time_signature"`
	Tracks  []Track       `json:"tracks"`
}

func (c *Composition) AddTrack(t Track) {
	c.Tracks = append(c.Tracks, t)
}

// Beats reports where the last note ends.
func (c *Composition) Beats() float64 {
	var res float64
	for _, t := range c.Tracks {
		for _, n := range t.Notes {
			if n.End() > res {
				res = n.End()
			}
		}
	}
	return res
}
