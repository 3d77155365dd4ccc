package instrument

import (
	"sort"

	"github.com/jsphweid/melodex/util"
)

// Programs maps friendly instrument names to General MIDI program numbers.
// Some names are aliases for the same program (rhodes/electric_piano,
// hammond/drawbar_organ).
var Programs = map[string]uint8{
	"acoustic_grand_piano":  0,
	"bright_acoustic_piano": 1,
	"electric_grand_piano":  2,
	"electric_piano":        4,
	"rhodes":                4,
	"wurlitzer":             5,
	"vibraphone":            11,
	"marimba":               12,
	"xylophone":             13,
	"drawbar_organ":         16,
	"hammond":               16,
	"rock_organ":            18,
	"acoustic_guitar_nylon": 24,
	"acoustic_guitar_steel": 25,
	"electric_guitar_jazz":  26,
	"electric_guitar_clean": 27,
	"electric_guitar_muted": 28,
	"acoustic_bass":         32,
	"electric_bass_finger":  33,
	"electric_bass_pick":    34,
	"fretless_bass":         35,
	"slap_bass":             36,
	"synth_bass_1":          38,
	"synth_bass_2":          39,
	"violin":                40,
	"viola":                 41,
	"cello":                 42,
	"contrabass":            43,
	"string_ensemble":       48,
	"choir_aahs":            52,
	"voice_oohs":            53,
	"trumpet":               56,
	"trombone":              57,
	"tuba":                  58,
	"french_horn":           60,
	"brass_section":         61,
	"soprano_sax":           64,
	"alto_sax":              65,
	"tenor_sax":             66,
	"baritone_sax":          67,
	"clarinet":              71,
	"synth_lead_square":     80,
	"synth_lead_sawtooth":   81,
	"synth_lead_calliope":   82,
	"synth_pad_new_age":     88,
	"synth_pad_warm":        89,
	"synth_pad_polysynth":   90,
	"synth_pad_choir":       91,
	"synth_pad_bowed":       92,
	"synth_pad_metallic":    93,
}

// Per-role defaults used when a descriptor names no instrument or an
// unknown one.
const (
	DefaultChordsProgram uint8 = 4  // electric_piano
	DefaultMelodyProgram uint8 = 81 // synth_lead_sawtooth
	DefaultBassProgram   uint8 = 33 // electric_bass_finger
)

// DrumKeys maps drum voice names to their fixed percussion pitches.
var DrumKeys = map[string]uint8{
	"kick":         36,
	"snare":        38,
	"closed_hihat": 42,
	"open_hihat":   46,
	"crash":        49,
	"ride":         51,
	"tom_high":     48,
	"tom_mid":      47,
	"tom_low":      45,
}

// Lookup resolves an instrument name, defaulting rather than failing.
func Lookup(name string, fallback uint8) uint8 {
	if program, ok := Programs[name]; ok {
		return program
	}
	return fallback
}

func Names() []string {
	names := util.GetKeys(Programs)
	sort.Strings(names)
	return names
}

func DrumNames() []string {
	names := util.GetKeys(DrumKeys)
	sort.Strings(names)
	return names
}
