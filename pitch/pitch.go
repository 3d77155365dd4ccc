package pitch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/melodex/util"
)

var ErrInvalidNoteName = errors.New("invalid note name")

var chromatic = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var nameToIndex = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
	"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
}

// flats get respelled as sharps before lookup
var flatAliases = map[string]string{
	"DB": "C#", "EB": "D#", "GB": "F#", "AB": "G#", "BB": "A#",
}

// FromName resolves a note name plus octave to an absolute pitch, clamped
// into [0, 127]. Minor key spellings like "Am" resolve to their root.
func FromName(name string, octave int) (uint8, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(name, "m", "")))
	if alias, ok := flatAliases[cleaned]; ok {
		cleaned = alias
	}
	idx, ok := nameToIndex[cleaned]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	return uint8(util.Clamp((octave+1)*12+idx, 0, 127)), nil
}

// Name renders a pitch like "C4" (middle C is 60).
func Name(p uint8) string {
	return fmt.Sprintf("%v%v", chromatic[p%12], int(p)/12-1)
}
