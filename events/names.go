package events

var typeNames = map[EventType]string{
	EventSelectRequest:     "SelectRequest",
	EventTravelConfirm:     "TravelConfirm",
	EventTravelCancel:      "TravelCancel",
	EventReturnRequest:     "ReturnRequest",
	EventEmergencyReturn:   "EmergencyReturn",
	EventNarrationFinished: "NarrationFinished",
	EventCursorMove:        "CursorMove",
	EventMuteToggle:        "MuteToggle",
	EventJournalToggle:     "JournalToggle",
	EventStatusToggle:      "StatusToggle",
	EventResize:            "Resize",
	EventQuit:              "Quit",
}

// String returns the event name for logging and the flight journal
func (et EventType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "Unknown"
}
