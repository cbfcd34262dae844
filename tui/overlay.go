package tui

import (
	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/content"
)

// ContentOverlay displays the dossier for the arrived destination.
// It implements the travel coordinator's presenter surface.
type ContentOverlay struct {
	theme    Theme
	visible  bool
	fragment content.Fragment
	scroll   int
	viewH    int // Inner height of the last draw, for scroll clamping
}

// NewContentOverlay creates a hidden overlay.
func NewContentOverlay(theme Theme) *ContentOverlay {
	return &ContentOverlay{theme: theme}
}

// ShowContent replaces the displayed fragment and resets the scroll.
func (o *ContentOverlay) ShowContent(frag content.Fragment) {
	o.fragment = frag
	o.scroll = 0
	o.visible = true
}

// HideContent drops the overlay.
func (o *ContentOverlay) HideContent() {
	o.visible = false
	o.fragment = content.Fragment{}
	o.scroll = 0
}

// Visible reports whether the overlay is up.
func (o *ContentOverlay) Visible() bool {
	return o.visible
}

// Scroll moves the viewport by delta lines, clamped to the text.
func (o *ContentOverlay) Scroll(delta int) {
	if !o.visible {
		return
	}
	o.scroll += delta
	max := len(o.fragment.Lines) - o.viewH
	if max < 0 {
		max = 0
	}
	if o.scroll > max {
		o.scroll = max
	}
	if o.scroll < 0 {
		o.scroll = 0
	}
}

// Draw renders the overlay centered in the region.
func (o *ContentOverlay) Draw(r Region) {
	if !o.visible {
		return
	}

	w := constants.OverlayMaxWidth
	if w > r.W-4 {
		w = r.W - 4
	}
	if w < constants.OverlayMinWidth {
		w = min(constants.OverlayMinWidth, r.W)
	}
	h := r.H - 2*constants.OverlayMarginY
	if h < 5 {
		h = min(5, r.H)
	}

	inner := Center(r, w, h).Modal(ModalOpts{
		Title:    o.fragment.Title,
		Hint:     "j/k scroll · Esc depart",
		Border:   LineRounded,
		BorderSt: o.theme.Border,
		TitleSt:  o.theme.Title,
		HintSt:   o.theme.Hint,
		Fill:     o.theme.Fill,
	})
	o.viewH = inner.H
	o.Scroll(0) // Re-clamp after a resize

	lines := o.fragment.Lines
	for row := 0; row < inner.H; row++ {
		idx := o.scroll + row
		if idx >= len(lines) {
			break
		}
		inner.Text(1, row, lines[idx], o.theme.Text)
	}

	// Overflow markers on the right edge
	if o.scroll > 0 {
		inner.TextRight(0, "▲", o.theme.Hint)
	}
	if o.scroll+inner.H < len(lines) {
		inner.TextRight(inner.H-1, "▼", o.theme.Hint)
	}
}
