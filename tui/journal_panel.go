package tui

import (
	"fmt"
	"time"

	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/journal"
	"github.com/voidlight/starfolio/travel"
)

// JournalPanel lists recent flights from the journal store. Entries
// are reloaded when the panel opens, not on every frame.
type JournalPanel struct {
	theme   Theme
	visible bool
	entries []journal.Entry
	loadErr error
}

// NewJournalPanel creates a hidden panel.
func NewJournalPanel(theme Theme) *JournalPanel {
	return &JournalPanel{theme: theme}
}

// Toggle flips visibility, refreshing the entries on open. A nil store
// leaves the panel usable with an explanatory row.
func (p *JournalPanel) Toggle(store *journal.Store) {
	p.visible = !p.visible
	if !p.visible {
		return
	}
	p.entries = nil
	p.loadErr = nil
	if store == nil {
		return
	}
	p.entries, p.loadErr = store.Recent(constants.JournalVisibleEntries)
}

// Hide closes the panel.
func (p *JournalPanel) Hide() {
	p.visible = false
}

// Visible reports whether the panel is up.
func (p *JournalPanel) Visible() bool {
	return p.visible
}

// Draw renders the panel anchored to the lower left corner.
func (p *JournalPanel) Draw(r Region) {
	if !p.visible {
		return
	}

	w := 46
	if w > r.W-2 {
		w = r.W - 2
	}
	h := len(p.entries) + 4
	if h < 5 {
		h = 5
	}
	if h > r.H-2 {
		h = r.H - 2
	}

	inner := r.Sub(1, r.H-h-1, w, h).Modal(ModalOpts{
		Title:    "FLIGHT JOURNAL",
		Hint:     "j close",
		Border:   LineSingle,
		BorderSt: p.theme.Border,
		TitleSt:  p.theme.Title,
		HintSt:   p.theme.Hint,
		Fill:     p.theme.Fill,
	})

	switch {
	case p.loadErr != nil:
		inner.Text(0, 0, Truncate("journal unavailable: "+p.loadErr.Error(), inner.W), p.theme.Warning)
		return
	case len(p.entries) == 0:
		inner.TextCenter(inner.H/2, "no flights logged", p.theme.Dim)
		return
	}

	for i, e := range p.entries {
		if i >= inner.H {
			break
		}
		style := p.theme.Text
		switch e.Result {
		case travel.ResultCancelled:
			style = p.theme.Dim
		case travel.ResultEmergency:
			style = p.theme.Warning
		}
		inner.Text(0, i, formatFlight(e, inner.W), style)
	}
}

// formatFlight renders one row: time, destination, result, duration.
func formatFlight(e journal.Entry, width int) string {
	row := fmt.Sprintf("%s  %s %s %s",
		e.EndedAt.Local().Format("15:04"),
		PadRight(Truncate(e.SectionID, 12), 12),
		PadRight(e.Result, 9),
		e.Duration().Round(100*time.Millisecond))
	return Truncate(row, width)
}
