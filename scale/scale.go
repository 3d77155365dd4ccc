package scale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

var ErrUnknown = errors.New("unknown scale")

// Definition is an immutable interval pattern looked up by name.
type Definition struct {
	Name    string
	Offsets []int
}

// IsMajor is an identity check on the MAJOR definition, not a statement
// about tonality. The harmonization rule keys off exactly this.
func (d Definition) IsMajor() bool {
	return d.Name == "MAJOR"
}

var definitions = map[string][]int{
	"MAJOR":            {0, 2, 4, 5, 7, 9, 11},
	"MINOR":            {0, 2, 3, 5, 7, 8, 10},
	"HARMONIC_MINOR":   {0, 2, 3, 5, 7, 8, 11},
	"MELODIC_MINOR":    {0, 2, 3, 5, 7, 9, 11},
	"PENTATONIC_MAJOR": {0, 2, 4, 7, 9},
	"PENTATONIC_MINOR": {0, 3, 5, 7, 10},
	"BLUES":            {0, 3, 5, 6, 7, 10},
	"DORIAN":           {0, 2, 3, 5, 7, 9, 10},
	"PHRYGIAN":         {0, 1, 3, 5, 7, 8, 10},
	"LYDIAN":           {0, 2, 4, 6, 7, 9, 11},
	"MIXOLYDIAN":       {0, 2, 4, 5, 7, 9, 10},
	"LOCRIAN":          {0, 1, 3, 5, 6, 8, 10},
	"WHOLE_TONE":       {0, 2, 4, 6, 8, 10},
	"CHROMATIC":        {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

func ByName(name string) (Definition, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	offsets, ok := definitions[key]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return Definition{Name: key, Offsets: offsets}, nil
}

func Names() []string {
	names := util.GetKeys(definitions)
	sort.Strings(names)
	return names
}

// Expand lays the scale out over octaveSpan octaves starting at root,
// dropping anything that leaves midi range.
func Expand(root uint8, def Definition, octaveSpan int) model.Notes {
	var res model.Notes
	for octave := 0; octave < octaveSpan; octave++ {
		for _, offset := range def.Offsets {
			note := int(root) + 12*octave + offset
			if note >= 0 && note <= 127 {
				res = append(res, uint8(note))
			}
		}
	}
	return res
}
