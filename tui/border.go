package tui

import "github.com/gdamore/tcell/v2"

// LineType selects the box drawing character set.
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// Box draws a border around the region edge.
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)

	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// HLine draws a horizontal rule across the region at row y.
func (r Region) HLine(y int, line LineType, style tcell.Style) {
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	ch := boxChars[line][boxH]
	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ch, style)
	}
}
