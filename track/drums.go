package track

import (
	"sort"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/instrument"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

// Drums repeats per-measure hit offsets across measures on the percussion
// channel. Unrecognized drum names are ignored. Names iterate sorted so the
// emitted order is stable.
func Drums(pattern map[string][]float64, measures int, beatsPerMeasure int) model.Track {
	t := model.Track{
		Name:    "Drums",
		Channel: constants.PercussionChannel,
		Program: 0,
	}

	drumNames := util.GetKeys(pattern)
	sort.Strings(drumNames)

	for measure := 0; measure < measures; measure++ {
		offset := float64(measure * beatsPerMeasure)
		for _, drum := range drumNames {
			pitch, ok := instrument.DrumKeys[drum]
			if !ok {
				continue
			}
			for _, hit := range pattern[drum] {
				t.AddNote(model.NewNote(int(pitch), offset+hit, 0.1, 95))
			}
		}
	}
	return t
}
