package tui

import (
	"github.com/voidlight/starfolio/travel"
)

// HUDState is everything the bottom strip needs for one frame.
type HUDState struct {
	Callsign  string
	Phase     travel.Phase
	Target    string // Destination name, empty while idle
	Selected  string // Highlighted planet in orbit view
	Muted     bool
	Narrating bool
}

// HUD is the single-row strip at the bottom edge.
type HUD struct {
	theme Theme
}

// NewHUD creates the strip renderer.
func NewHUD(theme Theme) *HUD {
	return &HUD{theme: theme}
}

// Draw renders callsign and phase left, key hints center, audio state
// right, on the region's last row.
func (h *HUD) Draw(r Region, st HUDState) {
	y := r.H - 1
	row := r.Sub(0, y, r.W, 1)
	row.Fill(h.theme.Fill)

	left := " " + st.Callsign + " · " + phaseLabel(st)
	row.Text(0, 0, Truncate(left, r.W/3), h.theme.Accent)

	hints := keyHints(st.Phase)
	row.TextCenter(0, Truncate(hints, r.W/2), h.theme.Hint)

	right := ""
	if st.Narrating {
		right = "♪ comms "
	}
	if st.Muted {
		right = "muted "
	}
	row.TextRight(0, right, h.theme.Dim)
}

// phaseLabel names the current mode, with destination when bound.
func phaseLabel(st HUDState) string {
	switch st.Phase {
	case travel.PhaseIdle:
		if st.Selected != "" {
			return "ORBIT → " + st.Selected
		}
		return "ORBIT"
	case travel.PhaseConfirming:
		return "COURSE LAID IN"
	case travel.PhaseContent:
		return "DOCKED · " + st.Target
	default:
		if st.Phase.Travelling() {
			label := "TRANSIT"
			if st.Target != "" {
				label += " → " + st.Target
			}
			return label
		}
		return st.Phase.String()
	}
}

// keyHints returns the key strip for the active phase.
func keyHints(phase travel.Phase) string {
	switch {
	case phase == travel.PhaseIdle:
		return "h/l select · Enter travel · j journal · s status · m mute · q quit"
	case phase == travel.PhaseConfirming:
		return "←/→ choose · Enter commit · y/n · Esc hold"
	case phase == travel.PhaseContent:
		return "j/k scroll · Esc depart · m mute"
	case phase.Travelling():
		return "Esc abort · m mute"
	default:
		return ""
	}
}
