package events

import "github.com/google/uuid"

// SelectRequestPayload identifies the destination the player chose.
// Name and Description come from the selected planet so the travel
// coordinator never has to reach back into the scene to resolve them.
type SelectRequestPayload struct {
	SectionID   string
	Name        string
	Description string
}

// NarrationFinishedPayload reports a completed narration session
type NarrationFinishedPayload struct {
	SessionID uuid.UUID
	SectionID string
	Simulated bool // True when the fallback duration timer ended the session
}

// CursorMovePayload carries destination highlight movement
type CursorMovePayload struct {
	Delta int // -1 previous planet, +1 next planet
}

// ResizePayload carries the new terminal geometry
type ResizePayload struct {
	Width  int
	Height int
}
