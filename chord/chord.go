package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

var qualities = map[string][]int{
	"MAJOR":            {0, 4, 7},
	"MINOR":            {0, 3, 7},
	"DIMINISHED":       {0, 3, 6},
	"AUGMENTED":        {0, 4, 8},
	"MAJOR7":           {0, 4, 7, 11},
	"MINOR7":           {0, 3, 7, 10},
	"DOMINANT7":        {0, 4, 7, 10},
	"DIMINISHED7":      {0, 3, 6, 9},
	"HALF_DIMINISHED7": {0, 3, 6, 10},
	"MINOR_MAJOR7":     {0, 3, 7, 11},
	"AUGMENTED7":       {0, 4, 8, 10},
	"SUS2":             {0, 2, 7},
	"SUS4":             {0, 5, 7},
	"ADD9":             {0, 4, 7, 14},
	"MAJOR6":           {0, 4, 7, 9},
	"MINOR6":           {0, 3, 7, 9},
}

func ByName(name string) ([]int, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	intervals, ok := qualities[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
	}
	return intervals, nil
}

func Names() []string {
	names := util.GetKeys(qualities)
	sort.Strings(names)
	return names
}

// Build voices a chord from a root and an interval pattern. Each inversion
// step lifts the lowest interval an octave and re-sorts; doubling repeats
// the resulting bass note an octave up. Anything outside midi range is
// dropped, so chords near the boundary can come back short.
func Build(root uint8, quality []int, inversion int, doubleOctave bool) model.Notes {
	intervals := make([]int, len(quality))
	copy(intervals, quality)
	for i := 0; i < inversion; i++ {
		intervals[0] += 12
		sort.Ints(intervals)
	}

	pitches := make([]int, 0, len(intervals)+1)
	for _, interval := range intervals {
		pitches = append(pitches, int(root)+interval)
	}
	if doubleOctave && len(pitches) > 0 {
		pitches = append(pitches, pitches[0]+12)
	}

	var res model.Notes
	for _, p := range pitches {
		if p >= 0 && p <= 127 {
			res = append(res, uint8(p))
		}
	}
	return res
}

// HarmonizeDegree picks a triad quality for a scale degree. Two families
// only: the major scale, and everything else treated as minor. Degrees off
// the diatonic range fall back to the family's tonic quality.
func HarmonizeDegree(degree int, scaleIsMajor bool) []int {
	if scaleIsMajor {
		switch degree {
		case 1, 4, 5:
			return qualities["MAJOR"]
		case 2, 3, 6:
			return qualities["MINOR"]
		case 7:
			return qualities["DIMINISHED"]
		default:
			return qualities["MAJOR"]
		}
	}

	switch degree {
	case 3, 6, 7:
		return qualities["MAJOR"]
	case 1, 4, 5:
		return qualities["MINOR"]
	case 2:
		return qualities["DIMINISHED"]
	default:
		return qualities["MINOR"]
	}
}
