// Package midi turns compositions into standard midi files and reads them
// back. All beat positions are converted to ticks here and nowhere else.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
)

type timedMessage struct {
	tick      uint32
	isNoteOff bool
	msg       midi.Message
}

func toTicks(beats float64) uint32 {
	return uint32(math.Round(beats * constants.TicksPerQuarter))
}

// Render produces one smf track per composition track. Each starts with a
// name and tempo meta event, then a program change for melodic channels.
// Note events are delta encoded from absolute ticks; at equal ticks the
// note off sorts first so repeated pitches retrigger cleanly.
func Render(c *model.Composition) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	for _, t := range c.Tracks {
		events := make([]timedMessage, 0, len(t.Notes)*2)
		for _, n := range t.Notes {
			events = append(events, timedMessage{
				tick: toTicks(n.Start),
				msg:  midi.NoteOn(t.Channel, n.Pitch, n.Velocity),
			})
			events = append(events, timedMessage{
				tick:      toTicks(n.End()),
				isNoteOff: true,
				msg:       midi.NoteOff(t.Channel, n.Pitch),
			})
		}
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].tick != events[j].tick {
				return events[i].tick < events[j].tick
			}
			return events[i].isNoteOff && !events[j].isNoteOff
		})

		var tr smf.Track
		tr.Add(0, smf.MetaTrackSequenceName(t.Name))
		tr.Add(0, smf.MetaTempo(float64(c.Tempo)))
		if t.Channel != constants.PercussionChannel {
			tr.Add(0, midi.ProgramChange(t.Channel, t.Program))
		}

		var lastTick uint32
		for _, ev := range events {
			tr.Add(ev.tick-lastTick, ev.msg)
			lastTick = ev.tick
		}
		tr.Close(0)
		res.Tracks = append(res.Tracks, tr)
	}

	return &res
}

// WriteFile renders the composition and writes it to path.
func WriteFile(c *model.Composition, path string) error {
	if err := Render(c).WriteFile(path); err != nil {
		return fmt.Errorf("could not write midi file: %w", err)
	}
	return nil
}

// WriteBytes renders the composition into an in-memory smf blob.
func WriteBytes(c *model.Composition) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Render(c).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("could not serialize midi: %w", err)
	}
	return buf.Bytes(), nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
