package audio

import (
	"errors"
)

// CueType represents different sound cues
type CueType int

const (
	CueConfirm CueType = iota // Travel confirmation blip
	CueWhoosh                 // Hyperspace entry
	CueArrival                // Orbit insertion chime
	CueAbort                  // Emergency return klaxon
	cueTypeCount
)

// Sentinel errors
var (
	ErrNoClip = errors.New("no narration clip for destination")
)
