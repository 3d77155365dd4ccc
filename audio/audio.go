// Package audio bounces compositions to wav previews with a small
// software synth.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
)

const SampleRate = beep.SampleRate(44100)

type waveShape int

const (
	waveSine waveShape = iota
	waveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	shape    waveShape
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, shape waveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), shape: shape, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release shaping.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume switches to silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func midiFrequency(pitch uint8) float64 {
	return 440.0 * math.Pow(2, (float64(pitch)-69)/12)
}

// kicks and toms thump on a sine; everything else on channel 10 hisses
var thumpPitches = map[uint8]bool{36: true, 45: true, 47: true, 48: true}

func noteVoice(n model.Note, percussive bool, secondsPerBeat float64, rate beep.SampleRate) beep.Streamer {
	gain := float64(n.Velocity) / 127

	if percussive {
		dur := 80 * time.Millisecond
		shape := waveNoise
		freq := 0.0
		if thumpPitches[n.Pitch] {
			shape = waveSine
			freq = midiFrequency(n.Pitch)
		}
		osc := newOscillator(freq, dur, shape, rate)
		shaped := newEnvelope(osc, dur, time.Millisecond, 60*time.Millisecond, rate)
		return newVolume(shaped, gain*0.5)
	}

	dur := time.Duration(n.Duration * secondsPerBeat * float64(time.Second))
	osc := newOscillator(midiFrequency(n.Pitch), dur, waveSine, rate)
	shaped := newEnvelope(osc, dur, 8*time.Millisecond, dur/4, rate)
	return newVolume(shaped, gain*0.25)
}

// Bounce mixes one voice per note, each delayed by leading silence to its
// start time. Beats become seconds here using the composition tempo.
func Bounce(c *model.Composition) beep.Streamer {
	secondsPerBeat := 60.0 / float64(c.Tempo)
	var voices []beep.Streamer
	for _, t := range c.Tracks {
		percussive := t.Channel == constants.PercussionChannel
		for _, n := range t.Notes {
			delay := SampleRate.N(time.Duration(n.Start * secondsPerBeat * float64(time.Second)))
			voice := noteVoice(n, percussive, secondsPerBeat, SampleRate)
			voices = append(voices, beep.Seq(beep.Silence(delay), voice))
		}
	}
	if len(voices) == 0 {
		return beep.Silence(SampleRate.N(time.Second))
	}
	return beep.Mix(voices...)
}

// WriteWAV bounces the composition and encodes it to path.
func WriteWAV(c *model.Composition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create wav file: %w", err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Bounce(c), format); err != nil {
		return fmt.Errorf("could not encode wav: %w", err)
	}
	return nil
}
