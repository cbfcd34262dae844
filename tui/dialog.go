package tui

// ConfirmOpts configures the travel confirmation dialog.
type ConfirmOpts struct {
	Title    string
	Message  string
	Detail   string // Dimmed line under the message
	YesLabel string
	NoLabel  string
	Theme    Theme
}

// ConfirmDialog renders a centered yes/no dialog. The caller owns the
// focus state; key handling lives with the input layer.
func (r Region) ConfirmDialog(focusYes bool, opts ConfirmOpts) {
	if opts.YesLabel == "" {
		opts.YesLabel = "Engage"
	}
	if opts.NoLabel == "" {
		opts.NoLabel = "Hold"
	}
	theme := opts.Theme

	wrapW := r.W - 10
	if wrapW > 44 {
		wrapW = 44
	}
	msgLines := WrapText(opts.Message, wrapW)
	detailLines := []string{}
	if opts.Detail != "" {
		detailLines = WrapText(opts.Detail, wrapW)
	}

	dialogW := 40
	for _, line := range append(msgLines, detailLines...) {
		if w := RuneLen(line) + 6; w > dialogW {
			dialogW = w
		}
	}
	if dialogW > r.W-4 {
		dialogW = r.W - 4
	}
	if dialogW < 24 {
		dialogW = 24
	}

	dialogH := 4 + len(msgLines) + len(detailLines)
	if len(detailLines) > 0 {
		dialogH++
	}
	if dialogH > r.H-2 {
		dialogH = r.H - 2
	}

	content := Center(r, dialogW, dialogH).Modal(ModalOpts{
		Title:    opts.Title,
		Border:   LineDouble,
		BorderSt: theme.Border,
		TitleSt:  theme.Title,
		Fill:     theme.Fill,
	})

	y := 0
	for _, line := range msgLines {
		if y >= content.H-1 {
			break
		}
		content.TextCenter(y, line, theme.Text)
		y++
	}
	if len(detailLines) > 0 {
		y++
		for _, line := range detailLines {
			if y >= content.H-1 {
				break
			}
			content.TextCenter(y, line, theme.Dim)
			y++
		}
	}

	yesLabel := " " + opts.YesLabel + " "
	noLabel := " " + opts.NoLabel + " "
	gap := 4
	buttonY := content.H - 1
	buttonX := (content.W - RuneLen(yesLabel) - gap - RuneLen(noLabel)) / 2
	if buttonX < 0 {
		buttonX = 0
	}

	yesStyle, noStyle := theme.Button, theme.Button
	if focusYes {
		yesStyle = theme.ButtonFocus
	} else {
		noStyle = theme.ButtonFocus
	}
	content.Text(buttonX, buttonY, yesLabel, yesStyle)
	content.Text(buttonX+RuneLen(yesLabel)+gap, buttonY, noLabel, noStyle)
}
