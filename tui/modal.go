package tui

import "github.com/gdamore/tcell/v2"

// ModalOpts configures a modal frame.
type ModalOpts struct {
	Title    string
	Hint     string // Right-aligned on the top edge
	Border   LineType
	BorderSt tcell.Style
	TitleSt  tcell.Style
	HintSt   tcell.Style
	Fill     tcell.Style
}

// Modal fills the region, draws the border with title and hint, and
// returns the inner content region.
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Fill(opts.Fill)
	r.Box(opts.Border, opts.BorderSt)

	if opts.Title != "" {
		title := " " + opts.Title + " "
		if RuneLen(title) > r.W-4 {
			title = Truncate(title, r.W-4)
		}
		r.TextCenter(0, title, opts.TitleSt)
	}

	if opts.Hint != "" {
		hint := opts.Hint
		if RuneLen(hint) > r.W/3 {
			hint = Truncate(hint, r.W/3)
		}
		r.Text(r.W-RuneLen(hint)-2, 0, hint, opts.HintSt)
	}

	return r.Inset(1)
}

// Center returns a centered region of the given size within outer.
func Center(outer Region, w, h int) Region {
	return outer.Sub((outer.W-w)/2, (outer.H-h)/2, w, h)
}
