package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/voidlight/starfolio/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation.
// A duration of 0 yields an endless streamer for looped beds.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := 0
	if duration > 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a simplified attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
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
			return i, i > 0
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
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

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume becomes silence instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound cue generators

// CreateConfirmBlip generates the two-note acknowledgment for travel confirm
func CreateConfirmBlip(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := constants.ConfirmBlipDuration / 2

	low := NewOscillator(660.0, half, WaveSine, rate)
	lowShaped := NewEnvelope(low, half, 5*time.Millisecond, 20*time.Millisecond, rate)

	high := NewOscillator(880.0, half, WaveSine, rate)
	highShaped := NewEnvelope(high, half, 5*time.Millisecond, 30*time.Millisecond, rate)

	sequence := beep.Seq(lowShaped, highShaped)

	// Master volume is applied once by the narrator's output stage
	return newVolume(sequence, cfg.CueVolumes[CueConfirm])
}

// CreateWhooshSound generates the hyperspace entry rush
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.WhooshCueDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.WhooshCueDuration, 120*time.Millisecond, 400*time.Millisecond, rate)

	// Low rumble under the noise
	rumble := NewOscillator(55.0, constants.WhooshCueDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, constants.WhooshCueDuration, 100*time.Millisecond, 300*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)

	return newVolume(mixed, cfg.CueVolumes[CueWhoosh])
}

// CreateArrivalChime generates the orbit insertion bell
func CreateArrivalChime(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E5)
	fund := NewOscillator(659.26, constants.ArrivalChimeDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.ArrivalChimeDuration, 5*time.Millisecond, 250*time.Millisecond, rate)

	// Overtone an octave up
	over := NewOscillator(1318.51, constants.ArrivalChimeDuration, WaveTriangle, rate)
	overShaped := NewEnvelope(over, constants.ArrivalChimeDuration, 5*time.Millisecond, 180*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.CueVolumes[CueArrival])
}

// CreateAbortKlaxon generates the emergency return warning
func CreateAbortKlaxon(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	pulse := 140 * time.Millisecond

	p1 := NewOscillator(220.0, pulse, WaveSaw, rate)
	p1Shaped := NewEnvelope(p1, pulse, 10*time.Millisecond, 40*time.Millisecond, rate)

	p2 := NewOscillator(174.61, pulse, WaveSaw, rate)
	p2Shaped := NewEnvelope(p2, pulse, 10*time.Millisecond, 60*time.Millisecond, rate)

	sequence := beep.Seq(p1Shaped, p2Shaped)

	return newVolume(sequence, cfg.CueVolumes[CueAbort])
}

// CreateNarrationBed generates the endless ambient pad looped under
// simulated narration sessions
func CreateNarrationBed(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Two slightly detuned low sines for a slow beat frequency
	a := NewOscillator(110.0, 0, WaveSine, rate)
	b := NewOscillator(110.7, 0, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(a, 0.5),
		newVolume(b, 0.5),
	)

	return newVolume(mixed, 0.25)
}

// GetCue returns the streamer for the given cue type
func GetCue(cue CueType, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CueConfirm:
		return CreateConfirmBlip(cfg)
	case CueWhoosh:
		return CreateWhooshSound(cfg)
	case CueArrival:
		return CreateArrivalChime(cfg)
	case CueAbort:
		return CreateAbortKlaxon(cfg)
	default:
		return nil
	}
}
