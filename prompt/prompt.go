// Package prompt renders instructions for language models that want to
// drive the composition loader, and pulls their answers back out.
package prompt

import (
	"encoding/json"
	"strings"

	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/scale"
)

const (
	openTag  = "<midi_spec>"
	closeTag = "</midi_spec>"
)

// SystemPrompt describes the document format. The scale, instrument and
// drum lists come straight from the registries so the prompt cannot drift
// from what the loader accepts.
func SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a music composition assistant with access to a MIDI generation system.\n")
	b.WriteString("When a user describes music, generate a JSON specification wrapped in " + openTag + " tags.\n")
	b.WriteString("\n")
	b.WriteString("AVAILABLE SCALES: ")
	b.WriteString(strings.Join(scale.Names(), ", "))
	b.WriteString("\n\n")
	b.WriteString("TRACK TYPES:\n")
	b.WriteString("1. chord_progression: progression (scale degrees), duration_per_chord, instrument\n")
	b.WriteString("2. melody: pattern ([scale_degree, duration, rest]), instrument\n")
	b.WriteString("3. bass: pattern ([scale_degree, duration]), instrument\n")
	b.WriteString("4. drums: pattern ({drum: [hit_times]}), measures\n")
	b.WriteString("\n")
	b.WriteString("INSTRUMENTS: ")
	b.WriteString(strings.Join(instrument.Names(), ", "))
	b.WriteString("\n\n")
	b.WriteString("DRUMS: ")
	b.WriteString(strings.Join(instrument.DrumNames(), ", "))
	b.WriteString("\n\n")
	b.WriteString("Top-level fields: tempo, time_signature ([beats, unit]), key, octave, scale, tracks.\n")
	b.WriteString("Return JSON in " + openTag + "..." + closeTag + " tags.\n")
	return b.String()
}

// ExtractDocument pulls the first tagged block out of a model response.
// The second return is false when no block exists or its contents are not
// valid JSON.
func ExtractDocument(response string) (string, bool) {
	start := strings.Index(response, openTag)
	end := strings.Index(response, closeTag)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	doc := strings.TrimSpace(response[start+len(openTag) : end])
	if !json.Valid([]byte(doc)) {
		return "", false
	}
	return doc, true
}
