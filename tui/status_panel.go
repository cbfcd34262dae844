package tui

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/voidlight/starfolio/status"
)

// StatusPanel dumps the metric registry, anchored top right. Meant for
// curious visitors and debugging alike.
type StatusPanel struct {
	theme   Theme
	visible bool
}

// NewStatusPanel creates a hidden panel.
func NewStatusPanel(theme Theme) *StatusPanel {
	return &StatusPanel{theme: theme}
}

// Toggle flips visibility.
func (p *StatusPanel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is up.
func (p *StatusPanel) Visible() bool {
	return p.visible
}

// Draw renders the live sequence state followed by every registered
// metric in sorted key order.
func (p *StatusPanel) Draw(r Region, registry *status.Registry, phase string, timers []string) {
	if !p.visible || registry == nil {
		return
	}

	pending := "-"
	if len(timers) > 0 {
		pending = strings.Join(timers, ", ")
	}
	rows := make([]string, 0, registry.TotalCount()+3)
	rows = append(rows,
		fmt.Sprintf("%s %s", PadRight("phase", 26), phase),
		fmt.Sprintf("%s %s", PadRight("timers", 26), pending),
		"")
	registry.Ints.Range(func(key string, ptr *atomic.Int64) {
		rows = append(rows, fmt.Sprintf("%s %d", PadRight(key, 26), ptr.Load()))
	})
	registry.Bools.Range(func(key string, ptr *atomic.Bool) {
		rows = append(rows, fmt.Sprintf("%s %v", PadRight(key, 26), ptr.Load()))
	})
	registry.Strings.Range(func(key string, ptr *status.AtomicString) {
		val := ptr.Load()
		if val == "" {
			val = "-"
		}
		rows = append(rows, fmt.Sprintf("%s %s", PadRight(key, 26), val))
	})

	w := 40
	if w > r.W-2 {
		w = r.W - 2
	}
	h := len(rows) + 2
	if registry.TotalCount() == 0 {
		h++
	}
	if h < 4 {
		h = 4
	}
	if h > r.H-2 {
		h = r.H - 2
	}

	inner := r.Sub(r.W-w-1, 1, w, h).Modal(ModalOpts{
		Title:    "SHIP STATUS",
		Hint:     "s close",
		Border:   LineSingle,
		BorderSt: p.theme.Border,
		TitleSt:  p.theme.Title,
		HintSt:   p.theme.Hint,
		Fill:     p.theme.Fill,
	})

	for i, row := range rows {
		if i >= inner.H {
			break
		}
		inner.Text(0, i, Truncate(row, inner.W), p.theme.Text)
	}
	if registry.TotalCount() == 0 && len(rows) < inner.H {
		inner.Text(0, len(rows), "no telemetry yet", p.theme.Dim)
	}
}
