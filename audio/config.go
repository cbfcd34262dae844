package audio

import (
	"github.com/voidlight/starfolio/constants"
)

// AudioConfig holds playback settings. Built from the application
// config in main; the narrator never reads the environment itself.
// MasterVolume is applied once at the narrator's output stage, so
// CueVolumes are levels relative to each other and to narration clips.
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueTypeCount]float64
}

// DefaultAudioConfig returns the standard playback settings
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.AudioMasterVolume,
	}
	cfg.CueVolumes[CueConfirm] = 0.5
	cfg.CueVolumes[CueWhoosh] = 0.7
	cfg.CueVolumes[CueArrival] = 0.6
	cfg.CueVolumes[CueAbort] = 0.8
	return cfg
}
