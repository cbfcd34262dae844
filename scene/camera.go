package scene

// Camera is the viewport offset applied to world-space objects.
// Stars parallax against it by depth layer.
type Camera struct {
	OffsetX float64
	OffsetY float64
}

// Background holds the global tone state the travel sequence mutates.
// Dim scales brightness during the fade phase; Flash is an additive
// white pulse that decays back to zero after the hyperspace exit.
type Background struct {
	Dim   float64 // 1.0 = full brightness
	Flash float64 // 0.0 = no flash, 1.0 = full white
}

// Snapshot captures everything the travel sequence disturbs, so a
// return to orbit can restore the view exactly as the player left it.
type Snapshot struct {
	Camera     Camera
	Background Background
	Hidden     ObjectSet
	Cursor     int
}
