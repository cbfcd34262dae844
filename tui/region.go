package tui

import "github.com/gdamore/tcell/v2"

// Region is a rectangular drawing area on the screen. Coordinates
// passed to drawing methods are relative to the region's origin and
// clipped to its bounds.
type Region struct {
	screen tcell.Screen
	X, Y   int // Absolute origin on the screen
	W, H   int
}

// NewRegion creates a region at an absolute screen position.
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: screen, X: x, Y: y, W: w, H: h}
}

// ScreenRegion covers the whole screen.
func ScreenRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return NewRegion(screen, 0, 0, w, h)
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent bounds.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: r.screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns the region shrunk by n cells on all sides.
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Cell sets a single cell with bounds checking.
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H || r.screen == nil {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints the whole region with spaces in the given style.
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text draws a string starting at x,y, clipped to the region.
func (r Region) Text(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		if col >= r.W {
			return
		}
		r.Cell(col, y, ch, style)
		col++
	}
}

// TextCenter draws a string centered on row y.
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-RuneLen(s))/2, y, s, style)
}

// TextRight draws a string right-aligned on row y.
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-RuneLen(s), y, s, style)
}

// Width returns the region width.
func (r Region) Width() int {
	return r.W
}

// Height returns the region height.
func (r Region) Height() int {
	return r.H
}

// Bounds returns absolute position and dimensions.
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
