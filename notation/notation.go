// Package notation projects compositions into LilyPond source.
package notation

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
)

var noteNames = []string{"c", "cis", "d", "dis", "e", "f", "fis", "g", "gis", "a", "ais", "b"}

// durationSymbols covers the common note values; anything else renders as a
// quarter note. Positions come from the document so they are exact floats.
var durationSymbols = map[float64]string{
	4.0:   "1",
	3.0:   "2.",
	2.0:   "2",
	1.5:   "4.",
	1.0:   "4",
	0.75:  "8.",
	0.5:   "8",
	0.25:  "16",
	0.125: "32",
}

// midiInstrumentNames maps general midi programs to the lilypond midi
// instrument names it knows; anything else plays back as piano.
var midiInstrumentNames = map[uint8]string{
	0:  "acoustic grand",
	4:  "electric piano",
	32: "acoustic bass",
	33: "electric bass (finger)",
	36: "slap bass",
	40: "violin",
	48: "string ensemble",
	56: "trumpet",
	66: "tenor sax",
	80: "lead 1 (square)",
	81: "lead 2 (sawtooth)",
	89: "pad 2 (warm)",
}

var trackVarChars = regexp.MustCompile(`[^a-z0-9_]`)

type Generator struct {
	Title    string
	Composer string

	tempo   int
	timeSig model.TimeSignature
	tracks  []model.Track
}

func NewGenerator(title, composer string) *Generator {
	return &Generator{
		Title:    title,
		Composer: composer,
		tempo:    constants.DefaultTempo,
		timeSig:  model.TimeSignature{Beats: 4, Unit: 4},
	}
}

// FromComposition seeds a generator with the composition's tempo, time
// signature and tracks.
func FromComposition(c *model.Composition, title, composer string) *Generator {
	g := NewGenerator(title, composer)
	g.tempo = c.Tempo
	g.timeSig = c.TimeSig
	g.tracks = append(g.tracks, c.Tracks...)
	return g
}

func (g *Generator) AddTrack(t model.Track) {
	g.tracks = append(g.tracks, t)
}

func durationSymbol(d float64) string {
	if s, ok := durationSymbols[d]; ok {
		return s
	}
	return "4"
}

// pitchName renders a midi pitch relative to middle C: octaves above get
// apostrophes, octaves below get commas.
func pitchName(p uint8) string {
	name := noteNames[p%12]
	octave := int(p)/12 - 4
	if octave > 0 {
		name += strings.Repeat("'", octave)
	} else if octave < 0 {
		name += strings.Repeat(",", -octave)
	}
	return name
}

func noteSymbol(p uint8, duration float64) string {
	return pitchName(p) + durationSymbol(duration)
}

func restSymbol(duration float64) string {
	return "r" + durationSymbol(duration)
}

// melodicLines renders one note at a time, inserting rests for gaps,
// eight symbols per line.
func melodicLines(notes []model.Note) string {
	if len(notes) == 0 {
		return ""
	}
	sorted := append([]model.Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var symbols []string
	cursor := 0.0
	for _, n := range sorted {
		if n.Start > cursor {
			symbols = append(symbols, restSymbol(n.Start-cursor))
		}
		symbols = append(symbols, noteSymbol(n.Pitch, n.Duration))
		cursor = n.End()
	}
	return wrapSymbols(symbols, 8)
}

// chordalLines groups notes by start time; simultaneous notes render as a
// <...> chord taking the duration of its lowest pitch.
func chordalLines(notes []model.Note) string {
	if len(notes) == 0 {
		return ""
	}
	groups := groupByStart(notes)
	starts := make([]float64, 0, len(groups))
	for start := range groups {
		starts = append(starts, start)
	}
	sort.Float64s(starts)

	var symbols []string
	cursor := 0.0
	for _, start := range starts {
		if start > cursor {
			symbols = append(symbols, restSymbol(start-cursor))
		}
		group := groups[start]
		if len(group) == 1 {
			symbols = append(symbols, noteSymbol(group[0].Pitch, group[0].Duration))
			cursor = start + group[0].Duration
			continue
		}
		sort.SliceStable(group, func(i, j int) bool { return group[i].Pitch < group[j].Pitch })
		parts := make([]string, 0, len(group))
		for _, n := range group {
			parts = append(parts, pitchName(n.Pitch))
		}
		symbols = append(symbols, "<"+strings.Join(parts, " ")+">"+durationSymbol(group[0].Duration))
		cursor = start + group[0].Duration
	}
	return wrapSymbols(symbols, 4)
}

func groupByStart(notes []model.Note) map[float64][]model.Note {
	groups := make(map[float64][]model.Note)
	for _, n := range notes {
		groups[n.Start] = append(groups[n.Start], n)
	}
	return groups
}

func wrapSymbols(symbols []string, perLine int) string {
	var lines []string
	for i := 0; i < len(symbols); i += perLine {
		end := i + perLine
		if end > len(symbols) {
			end = len(symbols)
		}
		lines = append(lines, "  "+strings.Join(symbols[i:end], " "))
	}
	return strings.Join(lines, "\n")
}

func trackVar(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return trackVarChars.ReplaceAllString(s, "")
}

// Render emits the complete lilypond source: header, one variable per
// track, then a score block with both layout and midi output.
func (g *Generator) Render() string {
	lines := []string{
		`\version "2.24.0"`,
		"",
		`\header {`,
		fmt.Sprintf("  title = %q", g.Title),
		fmt.Sprintf("  composer = %q", g.Composer),
		"}",
		"",
	}

	for _, t := range g.tracks {
		lines = append(lines, trackVar(t.Name)+" = {")
		lines = append(lines, `  \clef treble`)
		if t.Channel == constants.PercussionChannel {
			lines = append(lines, "  % Drum track")
		} else if hasChords(t.Notes) {
			lines = append(lines, chordalLines(t.Notes))
		} else {
			lines = append(lines, melodicLines(t.Notes))
		}
		lines = append(lines, "}", "")
	}

	lines = append(lines, `\score {`, "  <<")
	for _, t := range g.tracks {
		inst, ok := midiInstrumentNames[t.Program]
		if !ok {
			inst = "piano"
		}
		lines = append(lines,
			`    \new Staff {`,
			fmt.Sprintf("      \\set Staff.instrumentName = %q", t.Name),
			fmt.Sprintf("      \\set Staff.midiInstrument = %q", inst),
			"      \\"+trackVar(t.Name),
			"    }",
		)
	}
	lines = append(lines,
		"  >>",
		`  \layout { }`,
		`  \midi {`,
		fmt.Sprintf("    \\tempo 4 = %v", g.tempo),
		"  }",
		"}",
	)

	return strings.Join(lines, "\n")
}

func hasChords(notes []model.Note) bool {
	for _, group := range groupByStart(notes) {
		if len(group) > 1 {
			return true
		}
	}
	return false
}

// WriteFile renders to path.
func (g *Generator) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(g.Render()), 0644); err != nil {
		return fmt.Errorf("could not write lilypond file: %w", err)
	}
	return nil
}
