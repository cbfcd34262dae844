package tui

import "github.com/gdamore/tcell/v2"

// Theme holds the styles shared by the overlays and panels.
type Theme struct {
	Border      tcell.Style
	Title       tcell.Style
	Text        tcell.Style
	Dim         tcell.Style
	Hint        tcell.Style
	Fill        tcell.Style
	Button      tcell.Style
	ButtonFocus tcell.Style
	Warning     tcell.Style
	Accent      tcell.Style
}

// DefaultTheme returns the standard deep-space palette.
func DefaultTheme() Theme {
	bg := tcell.NewRGBColor(12, 14, 24)
	return Theme{
		Border:      tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(90, 100, 140)),
		Title:       tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(230, 235, 255)).Bold(true),
		Text:        tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(195, 200, 215)),
		Dim:         tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(120, 126, 145)),
		Hint:        tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(140, 150, 180)),
		Fill:        tcell.StyleDefault.Background(bg),
		Button:      tcell.StyleDefault.Background(tcell.NewRGBColor(40, 44, 62)).Foreground(tcell.NewRGBColor(180, 185, 200)),
		ButtonFocus: tcell.StyleDefault.Background(tcell.NewRGBColor(60, 90, 150)).Foreground(tcell.NewRGBColor(250, 252, 255)).Bold(true),
		Warning:     tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(235, 120, 90)),
		Accent:      tcell.StyleDefault.Background(bg).Foreground(tcell.NewRGBColor(120, 200, 255)),
	}
}
