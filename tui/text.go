package tui

import "strings"

// Truncate shortens s to maxLen runes with an ellipsis suffix.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads s with spaces to width runes.
func PadRight(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// PadLeft left-pads s with spaces to width runes.
func PadLeft(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// PadCenter centers s within width runes.
func PadCenter(s string, width int) string {
	n := RuneLen(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// RuneLen returns the rune count of s.
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// WrapText wraps text at word boundaries to fit width. Words longer
// than the width are hard-split.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	// Hard-split anything that can never fit on one line
	split := make([]string, 0, len(words))
	for _, w := range words {
		for RuneLen(w) > width {
			runes := []rune(w)
			split = append(split, string(runes[:width]))
			w = string(runes[width:])
		}
		split = append(split, w)
	}

	var lines []string
	line := split[0]
	for _, w := range split[1:] {
		if RuneLen(line)+1+RuneLen(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	return append(lines, line)
}
