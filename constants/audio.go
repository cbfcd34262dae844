package constants

import "time"

// Speaker Configuration
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLength is the speaker buffer duration
	AudioBufferLength = 100 * time.Millisecond

	// AudioMasterVolume is the default output level on a 0..1 scale
	AudioMasterVolume = 0.8
)

// Narration Fallback
const (
	// NarrationFallbackDuration is the simulated session length used when a
	// section has no narration clip or the clip fails to decode. The travel
	// sequence timing never depends on real clip length, so this only
	// controls how long the ambient fallback tone hums.
	NarrationFallbackDuration = 6 * time.Second
)

// Cue Sound Timing
const (
	ConfirmBlipDuration  = 90 * time.Millisecond
	WhooshCueDuration    = 700 * time.Millisecond
	ArrivalChimeDuration = 350 * time.Millisecond
)
