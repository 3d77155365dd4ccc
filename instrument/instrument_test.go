package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupFindsKnownInstruments(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Lookup("acoustic_grand_piano", 99), uint8(0))
	assert.Equal(Lookup("rhodes", 99), uint8(4))
	assert.Equal(Lookup("slap_bass", 99), uint8(36))
}

func TestLookupFallsBackOnUnknownNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Lookup("theremin", DefaultMelodyProgram), DefaultMelodyProgram)
	assert.Equal(Lookup("", DefaultChordsProgram), DefaultChordsProgram)
}

func TestTrackDefaultsMatchTheirInstruments(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Programs["electric_piano"], DefaultChordsProgram)
	assert.Equal(Programs["synth_lead_sawtooth"], DefaultMelodyProgram)
	assert.Equal(Programs["electric_bass_finger"], DefaultBassProgram)
}

func TestDrumKeysCoverTheStandardKit(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DrumKeys["kick"], uint8(36))
	assert.Equal(DrumKeys["snare"], uint8(38))
	assert.Equal(DrumKeys["closed_hihat"], uint8(42))
	assert.Equal(DrumKeys["crash"], uint8(49))
}

func TestNameListsAreSorted(t *testing.T) {
	assert := assert.New(t)

	names := Names()
	assert.Equal(len(names), len(Programs))
	for i := 1; i < len(names); i++ {
		assert.Less(names[i-1], names[i])
	}

	drums := DrumNames()
	assert.Equal(len(drums), len(DrumKeys))
	for i := 1; i < len(drums); i++ {
		assert.Less(drums[i-1], drums[i])
	}
}
