package events

import (
	"time"
)

// EventType represents the type of application event
type EventType int

const (
	// EventSelectRequest signals player intent to travel to a destination
	// Trigger: InputHandler (Enter on a highlighted planet)
	// Consumer: Coordinator | Payload: *SelectRequestPayload
	EventSelectRequest EventType = iota

	// EventTravelConfirm signals acceptance of the travel confirmation dialog
	// Trigger: InputHandler (y / Enter while confirming)
	// Consumer: Coordinator | Payload: nil
	EventTravelConfirm

	// EventTravelCancel signals rejection of the travel confirmation dialog
	// Trigger: InputHandler (n / Esc while confirming)
	// Consumer: Coordinator | Payload: nil
	EventTravelCancel

	// EventReturnRequest signals a return to orbit from the content view
	// Trigger: InputHandler (Esc / q while arrived)
	// Consumer: Coordinator | Payload: nil
	EventReturnRequest

	// EventEmergencyReturn signals an abort of an in-flight travel sequence
	// Trigger: InputHandler (Esc during fading..approach)
	// Consumer: Coordinator | Payload: nil
	EventEmergencyReturn

	// EventNarrationFinished marks the end of a narration session
	// Trigger: Narrator playback callback or simulated-duration timer
	// Consumer: Coordinator | Payload: *NarrationFinishedPayload
	EventNarrationFinished

	// EventCursorMove signals destination highlight movement in orbit
	// Trigger: InputHandler (h/l, arrow keys while idle)
	// Consumer: App (scene cursor) | Payload: *CursorMovePayload
	EventCursorMove

	// EventMuteToggle signals an audio mute/unmute request
	// Trigger: InputHandler (m in any phase)
	// Consumer: App (narrator) | Payload: nil
	EventMuteToggle

	// EventJournalToggle signals showing/hiding the flight journal overlay
	// Trigger: InputHandler (j while idle; j scrolls in the content view)
	// Consumer: View | Payload: nil
	EventJournalToggle

	// EventStatusToggle signals showing/hiding the status overlay
	// Trigger: InputHandler (s while idle)
	// Consumer: View | Payload: nil
	EventStatusToggle

	// EventResize signals a terminal geometry change
	// Trigger: tcell EventResize
	// Consumer: App | Payload: *ResizePayload
	EventResize

	// EventQuit signals application shutdown
	// Trigger: InputHandler (Ctrl+C, q while idle)
	// Consumer: App | Payload: nil
	EventQuit
)

// Event represents a single application event with metadata
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
