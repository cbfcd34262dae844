package travel

import "strings"

// Target identifies the destination of one travel attempt. Immutable
// once the attempt is confirmed; cleared when the attempt ends.
type Target struct {
	SectionID   string
	Name        string
	Description string
}

// Valid reports whether the target carries a usable destination id.
func (t Target) Valid() bool {
	return strings.TrimSpace(t.SectionID) != ""
}
