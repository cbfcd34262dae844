package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/engine"
	"github.com/voidlight/starfolio/events"
	"github.com/voidlight/starfolio/scene"
	"github.com/voidlight/starfolio/travel"
)

// FlightState is the slice of the travel coordinator the key router
// reads to decide which key set applies.
type FlightState interface {
	CurrentPhase() travel.Phase
}

// Selector reports the highlighted destination in the orbit view.
type Selector interface {
	Selected() (scene.PlanetBody, bool)
}

// Scroller moves the content overlay viewport.
type Scroller interface {
	ScrollContent(delta int)
}

// Handler turns terminal events into application events. Keys route by
// travel phase so each view owns a small, unambiguous key set. State
// that belongs to the main loop alone, the dialog focus and the content
// scroll position, is driven directly; everything that changes travel,
// scene or audio state goes through the queue so the router applies it
// in event order.
type Handler struct {
	queue  *events.EventQueue
	clock  engine.TimeProvider
	flight FlightState
	gate   *travel.Confirmation
	orbit  Selector
	view   Scroller
}

// NewHandler creates the key router.
func NewHandler(queue *events.EventQueue, clock engine.TimeProvider, flight FlightState, gate *travel.Confirmation, orbit Selector, view Scroller) *Handler {
	return &Handler{
		queue:  queue,
		clock:  clock,
		flight: flight,
		gate:   gate,
		orbit:  orbit,
		view:   view,
	}
}

// HandleEvent processes a single tcell event
func (h *Handler) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.push(events.EventResize, &events.ResizePayload{Width: w, Height: ht})
	}
}

// handleKey routes a key press to the active phase's key set
func (h *Handler) handleKey(ev *tcell.EventKey) {
	// Global keys work in every phase
	if ev.Key() == tcell.KeyCtrlC {
		h.push(events.EventQuit, nil)
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
		h.push(events.EventMuteToggle, nil)
		return
	}

	phase := h.flight.CurrentPhase()
	switch {
	case phase == travel.PhaseIdle:
		h.handleOrbit(ev)
	case phase == travel.PhaseConfirming:
		h.handleDialog(ev)
	case phase == travel.PhaseContent:
		h.handleContent(ev)
	case phase.Travelling():
		h.handleTransit(ev)
	}
}

// handleOrbit handles keys in the idle orbit view
func (h *Handler) handleOrbit(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		h.pushCursor(-1)
	case tcell.KeyRight:
		h.pushCursor(+1)
	case tcell.KeyEnter:
		h.pushSelect()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			h.pushCursor(-1)
		case 'l':
			h.pushCursor(+1)
		case 'j':
			h.push(events.EventJournalToggle, nil)
		case 's':
			h.push(events.EventStatusToggle, nil)
		case 'q':
			h.push(events.EventQuit, nil)
		}
	}
}

// handleDialog handles keys while the travel confirmation is up.
// Button focus moves directly on the gate; only the decision itself
// becomes an event.
func (h *Handler) handleDialog(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyTab:
		h.gate.ToggleFocus()
	case tcell.KeyEnter:
		if h.gate.FocusYes() {
			h.push(events.EventTravelConfirm, nil)
		} else {
			h.push(events.EventTravelCancel, nil)
		}
	case tcell.KeyEscape:
		h.push(events.EventTravelCancel, nil)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			h.push(events.EventTravelConfirm, nil)
		case 'n', 'N':
			h.push(events.EventTravelCancel, nil)
		case 'h', 'l':
			h.gate.ToggleFocus()
		}
	}
}

// handleTransit handles keys during the travel sequence proper. The
// ship is flying itself; only the abort handle is live.
func (h *Handler) handleTransit(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		h.push(events.EventEmergencyReturn, nil)
	}
}

// handleContent handles keys in the arrived content view
func (h *Handler) handleContent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		h.view.ScrollContent(-1)
	case tcell.KeyDown:
		h.view.ScrollContent(1)
	case tcell.KeyPgUp:
		h.view.ScrollContent(-constants.ContentScrollPage)
	case tcell.KeyPgDn:
		h.view.ScrollContent(constants.ContentScrollPage)
	case tcell.KeyEscape:
		h.push(events.EventReturnRequest, nil)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			h.view.ScrollContent(-1)
		case 'j':
			h.view.ScrollContent(1)
		case 'q':
			h.push(events.EventReturnRequest, nil)
		}
	}
}

// pushSelect emits a travel request for the highlighted planet
func (h *Handler) pushSelect() {
	planet, ok := h.orbit.Selected()
	if !ok {
		return
	}
	h.push(events.EventSelectRequest, &events.SelectRequestPayload{
		SectionID:   planet.SectionID,
		Name:        planet.Name,
		Description: planet.Title,
	})
}

func (h *Handler) pushCursor(delta int) {
	h.push(events.EventCursorMove, &events.CursorMovePayload{Delta: delta})
}

func (h *Handler) push(t events.EventType, payload any) {
	h.queue.Push(events.Event{Type: t, Payload: payload, Timestamp: h.clock.Now()})
}
