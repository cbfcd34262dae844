package travel

// Confirmation is the modal gate shown before a travel attempt
// commits. It holds nothing beyond visibility, the pending target,
// and which button has focus; the actual decision reaches the
// Coordinator as a confirm or cancel event from the input layer.
type Confirmation struct {
	visible  bool
	target   Target
	focusYes bool
}

// NewConfirmation creates a hidden gate.
func NewConfirmation() *Confirmation {
	return &Confirmation{}
}

// Show raises the dialog for the given destination with Yes focused.
func (g *Confirmation) Show(target Target) {
	g.visible = true
	g.target = target
	g.focusYes = true
}

// Hide drops the dialog and forgets the pending target. Safe to call
// when already hidden.
func (g *Confirmation) Hide() {
	g.visible = false
	g.target = Target{}
}

// Visible reports whether the dialog is up.
func (g *Confirmation) Visible() bool {
	return g.visible
}

// Pending returns the destination awaiting a decision.
func (g *Confirmation) Pending() (Target, bool) {
	if !g.visible {
		return Target{}, false
	}
	return g.target, true
}

// ToggleFocus switches between the Yes and No buttons.
func (g *Confirmation) ToggleFocus() {
	g.focusYes = !g.focusYes
}

// FocusYes reports whether the Yes button has focus.
func (g *Confirmation) FocusYes() bool {
	return g.focusYes
}
