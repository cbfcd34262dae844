package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/voidlight/starfolio/content"
	"github.com/voidlight/starfolio/events"
	"github.com/voidlight/starfolio/journal"
	"github.com/voidlight/starfolio/status"
	"github.com/voidlight/starfolio/travel"
)

// AudioState reports what the HUD needs to know about the narrator.
type AudioState interface {
	IsMuted() bool
	IsPlaying() bool
}

// View composes everything drawn above the scene: HUD, confirmation
// dialog, content overlay, journal and status panels. It implements
// the coordinator's presenter surface by forwarding to the overlay.
type View struct {
	theme   Theme
	hud     *HUD
	overlay *ContentOverlay
	flights *JournalPanel
	ship    *StatusPanel

	coord    *travel.Coordinator
	gate     *travel.Confirmation
	registry *status.Registry
	store    *journal.Store
	audio    AudioState
	callsign string
	selected func() string // Highlighted planet name in orbit view
}

// NewView wires the overlay stack. store may be nil when the journal
// could not be opened; audio may be nil in silent mode.
func NewView(theme Theme, coord *travel.Coordinator, gate *travel.Confirmation,
	registry *status.Registry, store *journal.Store, audio AudioState,
	callsign string, selected func() string) *View {
	return &View{
		theme:    theme,
		hud:      NewHUD(theme),
		overlay:  NewContentOverlay(theme),
		flights:  NewJournalPanel(theme),
		ship:     NewStatusPanel(theme),
		coord:    coord,
		gate:     gate,
		registry: registry,
		store:    store,
		audio:    audio,
		callsign: callsign,
		selected: selected,
	}
}

// ShowContent displays the arrival dossier.
func (v *View) ShowContent(frag content.Fragment) {
	v.overlay.ShowContent(frag)
}

// HideContent drops the dossier overlay.
func (v *View) HideContent() {
	v.overlay.HideContent()
}

// ScrollContent moves the dossier viewport.
func (v *View) ScrollContent(delta int) {
	v.overlay.Scroll(delta)
}

// ContentVisible reports whether the dossier overlay is up.
func (v *View) ContentVisible() bool {
	return v.overlay.Visible()
}

// Draw renders the overlay stack back to front.
func (v *View) Draw(screen tcell.Screen) {
	root := ScreenRegion(screen)

	v.overlay.Draw(root)
	v.flights.Draw(root)
	v.ship.Draw(root, v.registry, v.coord.CurrentPhase().String(), v.coord.PendingTimers())

	if target, ok := v.gate.Pending(); ok {
		v.drawConfirm(root, target)
	}

	sel := ""
	if v.selected != nil && v.coord.CurrentPhase() == travel.PhaseIdle {
		sel = v.selected()
	}
	st := HUDState{
		Callsign: v.callsign,
		Phase:    v.coord.CurrentPhase(),
		Target:   v.coord.CurrentTarget().Name,
		Selected: sel,
	}
	if v.audio != nil {
		st.Muted = v.audio.IsMuted()
		st.Narrating = v.audio.IsPlaying()
	}
	v.hud.Draw(root, st)
}

func (v *View) drawConfirm(root Region, target travel.Target) {
	root.ConfirmDialog(v.gate.FocusYes(), ConfirmOpts{
		Title:   "INITIATE TRAVEL",
		Message: "Set course for " + target.Name + "?",
		Detail:  target.Description,
		Theme:   v.theme,
	})
}

// EventTypes registers the view for overlay toggle events.
func (v *View) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventJournalToggle,
		events.EventStatusToggle,
	}
}

// HandleEvent flips panels on routed toggle events.
func (v *View) HandleEvent(now time.Time, event events.Event) {
	switch event.Type {
	case events.EventJournalToggle:
		v.flights.Toggle(v.store)
	case events.EventStatusToggle:
		v.ship.Toggle()
	}
}
