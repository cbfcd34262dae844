package scene

// Position is the shared spatial component for scene entities.
type Position struct {
	X float64
	Y float64
}

// StarParams drives twinkle and parallax for one background star.
type StarParams struct {
	Depth int     // 0 = nearest layer, higher = farther and dimmer
	Phase float64 // Twinkle phase offset in [0, 1)
}

// Streak is one hyperspace line. The pool is fixed; Active gates
// whether the entity participates in update and draw.
type Streak struct {
	Speed  float64 // Cells per second toward the viewer
	Length int
	Active bool
}
