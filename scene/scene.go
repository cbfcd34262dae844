package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"

	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/content"
)

// PlanetBody is one destination rendered in orbit view.
type PlanetBody struct {
	SectionID string
	Name      string
	Title     string
	Hue       float64
	Ring      int // Orbit ring index, innermost first
}

// Scene owns the visual state of the orbit view and the travel
// sequence: starfield, planets, ship, hyperspace effect, camera and
// background tone, and the snapshot taken at travel confirmation.
type Scene struct {
	world  *ecs.World
	stars  *Starfield
	effect *HyperspaceEffect

	width  int
	height int

	camera     Camera
	background Background
	hidden     ObjectSet
	planets    []PlanetBody
	cursor     int

	cockpitShown bool

	approach struct {
		active    bool
		progress  float64 // 0..1
		hue       float64
		name      string
		sectionID string
	}
	arrived bool

	lastUpdate time.Time
}

// NewScene builds the orbit view for the profile's sections.
func NewScene(sections []content.Section, rng *rand.Rand, width, height int) *Scene {
	world := ecs.NewWorld(constants.StarCount + constants.StreakPoolSize + 16)

	s := &Scene{
		world:      world,
		stars:      NewStarfield(world, rng, width, height),
		effect:     NewHyperspaceEffect(world, rng, width, height),
		width:      width,
		height:     height,
		background: Background{Dim: 1.0},
	}

	s.planets = make([]PlanetBody, 0, len(sections))
	for i, sec := range sections {
		name := sec.Planet.Name
		if name == "" {
			name = sec.ID
		}
		s.planets = append(s.planets, PlanetBody{
			SectionID: sec.ID,
			Name:      name,
			Title:     sec.Title,
			Hue:       sec.Planet.Hue,
			Ring:      i,
		})
	}
	return s
}

// Effect exposes the hyperspace effect for the travel coordinator.
func (s *Scene) Effect() *HyperspaceEffect {
	return s.effect
}

// Resize adjusts the viewport.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.stars.Resize(width, height)
	s.effect.Resize(width, height)
	s.width = width
	s.height = height
}

// MoveCursor shifts the destination highlight, clamped to the planet list.
func (s *Scene) MoveCursor(delta int) {
	if len(s.planets) == 0 {
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.planets) {
		s.cursor = len(s.planets) - 1
	}
}

// Selected returns the highlighted destination.
func (s *Scene) Selected() (PlanetBody, bool) {
	if len(s.planets) == 0 {
		return PlanetBody{}, false
	}
	return s.planets[s.cursor], true
}

// PlanetByID finds a destination body.
func (s *Scene) PlanetByID(id string) (PlanetBody, bool) {
	for _, p := range s.planets {
		if p.SectionID == id {
			return p, true
		}
	}
	return PlanetBody{}, false
}

// BeginFade dims the scene for the pre-cockpit fade.
func (s *Scene) BeginFade() {
	s.background.Dim = constants.FadeDimFactor
}

// ShowCockpit raises the cockpit frame.
func (s *Scene) ShowCockpit() {
	s.cockpitShown = true
}

// HideCockpit drops the cockpit frame.
func (s *Scene) HideCockpit() {
	s.cockpitShown = false
}

// Hide adds objects to the hidden set.
func (s *Scene) Hide(set ObjectSet) {
	s.hidden |= set
}

// Restore removes objects from the hidden set.
func (s *Scene) Restore(set ObjectSet) {
	s.hidden &^= set
}

// Hidden returns the current hidden set.
func (s *Scene) Hidden() ObjectSet {
	return s.hidden
}

// FlashBackground triggers the white pulse on hyperspace exit.
func (s *Scene) FlashBackground() {
	s.background.Flash = 1.0
}

// BeginApproach starts the destination growth animation.
func (s *Scene) BeginApproach(sectionID string) {
	s.approach.active = true
	s.approach.progress = 0
	s.approach.sectionID = sectionID
	if p, ok := s.PlanetByID(sectionID); ok {
		s.approach.hue = p.Hue
		s.approach.name = p.Name
	} else {
		s.approach.hue = 0
		s.approach.name = "UNCHARTED"
	}
	s.arrived = false
}

// FinishApproach pins the destination at full size for the content view.
func (s *Scene) FinishApproach() {
	if s.approach.active {
		s.approach.progress = 1
		s.arrived = true
	}
}

// ClearApproach removes the destination body entirely.
func (s *Scene) ClearApproach() {
	s.approach.active = false
	s.approach.progress = 0
	s.arrived = false
}

// TakeSnapshot captures the restorable view state.
func (s *Scene) TakeSnapshot() Snapshot {
	return Snapshot{
		Camera:     s.camera,
		Background: s.background,
		Hidden:     s.hidden,
		Cursor:     s.cursor,
	}
}

// RestoreSnapshot replays a snapshot and clears all travel visuals.
func (s *Scene) RestoreSnapshot(snap Snapshot) {
	s.camera = snap.Camera
	s.background = snap.Background
	s.hidden = snap.Hidden
	s.cursor = snap.Cursor
	s.cockpitShown = false
	s.ClearApproach()
}

// Tone returns the current background tone state.
func (s *Scene) Tone() Background {
	return s.background
}

// CockpitShown reports whether the cockpit frame is up.
func (s *Scene) CockpitShown() bool {
	return s.cockpitShown
}

// Update advances animations. Approach growth is driven by the travel
// coordinator's phase duration, so here it only eases toward full size
// once active; the flash pulse decays on its own.
func (s *Scene) Update(now time.Time) {
	var dt time.Duration
	if !s.lastUpdate.IsZero() {
		dt = now.Sub(s.lastUpdate)
	}
	s.lastUpdate = now
	if dt < 0 {
		dt = 0
	}
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}

	s.stars.Update(dt)
	s.effect.Update(dt)

	if s.approach.active && !s.arrived && s.approach.progress < 1 {
		s.approach.progress += dt.Seconds() / constants.ApproachDuration.Seconds()
		if s.approach.progress > 1 {
			s.approach.progress = 1
		}
	}

	if s.background.Flash > 0 {
		s.background.Flash -= 3.0 * dt.Seconds()
		if s.background.Flash < 0 {
			s.background.Flash = 0
		}
	}
}

// Draw renders the scene back-to-front.
func (s *Scene) Draw(screen tcell.Screen, now time.Time) {
	if s.background.Flash > 0.65 {
		s.drawFlash(screen)
		return
	}

	if !s.hidden.Has(ObjectStars) {
		s.stars.Draw(screen, s.camera, s.background, now)
	}
	if !s.hidden.Has(ObjectPlanets) {
		s.drawOrbits(screen)
	}
	if !s.hidden.Has(ObjectShip) {
		s.drawShip(screen)
	}

	s.effect.Draw(screen, s.background)

	if s.approach.active {
		s.drawApproach(screen)
	}
	if s.background.Flash > 0 {
		s.drawFlashTint(screen)
	}
	if s.cockpitShown {
		s.drawCockpit(screen)
	}
}

// drawOrbits renders rings, planets, and the selection marker.
func (s *Scene) drawOrbits(screen tcell.Screen) {
	if len(s.planets) == 0 {
		return
	}
	cy := s.height / 2
	cx := s.width / 2

	for i, p := range s.planets {
		radius := float64((i + 1) * constants.OrbitRingSpacing)
		s.drawRing(screen, cx, cy, radius)

		// Planets sit at staggered angles on their rings
		angle := math.Pi * (0.25 + 0.5*float64(i)/float64(len(s.planets)))
		px := cx + int(radius*math.Cos(angle)*2) // x2 for cell aspect
		py := cy - int(radius*math.Sin(angle)/1.6)

		s.drawPlanet(screen, px, py, p, i == s.cursor)
	}
}

func (s *Scene) drawRing(screen tcell.Screen, cx, cy int, radius float64) {
	lum := 0.22 * s.background.Dim
	style := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(220, 0.1, lum)))
	for deg := 0; deg < 360; deg += 6 {
		a := float64(deg) * math.Pi / 180
		x := cx + int(radius*math.Cos(a)*2)
		y := cy - int(radius*math.Sin(a)/1.6)
		if x >= 0 && x < s.width && y >= 0 && y < s.height {
			screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func (s *Scene) drawPlanet(screen tcell.Screen, px, py int, p PlanetBody, selected bool) {
	r := constants.PlanetRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -2 * r; dx <= 2*r; dx++ {
			// Ellipse test compensating for cell aspect
			if float64(dx*dx)/4+float64(dy*dy) > float64(r*r) {
				continue
			}
			x, y := px+dx, py+dy
			if x < 0 || x >= s.width || y < 0 || y >= s.height {
				continue
			}
			// Simple top-left light
			shade := 0.55 - 0.18*float64(dx)/float64(2*r) - 0.22*float64(dy)/float64(r)
			lum := shade * s.background.Dim
			if lum < 0.08 {
				lum = 0.08
			}
			c := colorful.Hsv(p.Hue, 0.65, lum)
			screen.SetContent(x, y, '▓', nil, tcell.StyleDefault.Foreground(toTcell(c)))
		}
	}

	if selected && !s.hidden.Has(ObjectHUD) {
		markStyle := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(p.Hue, 0.3, s.background.Dim)))
		left := px - 2*r - 2
		right := px + 2*r + 2
		if left >= 0 && left < s.width && py >= 0 && py < s.height {
			screen.SetContent(left, py, '[', nil, markStyle)
		}
		if right >= 0 && right < s.width && py >= 0 && py < s.height {
			screen.SetContent(right, py, ']', nil, markStyle)
		}
		s.drawLabel(screen, px, py+r+1, p.Name, markStyle)
	}
}

func (s *Scene) drawLabel(screen tcell.Screen, cx, y int, text string, style tcell.Style) {
	x := cx - len(text)/2
	for i, ch := range text {
		if x+i >= 0 && x+i < s.width && y >= 0 && y < s.height {
			screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// drawShip renders the vessel marker beneath the selected planet's ring.
func (s *Scene) drawShip(screen tcell.Screen) {
	cx := s.width / 2
	y := s.height - 3
	lum := 0.9 * s.background.Dim
	style := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(200, 0.15, lum)))
	for i, ch := range "<=A=>" {
		x := cx - 2 + i
		if x >= 0 && x < s.width && y >= 0 && y < s.height {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawApproach renders the destination growing from the screen center.
func (s *Scene) drawApproach(screen tcell.Screen) {
	r := int(math.Round(s.approach.progress * constants.ApproachMaxRadius))
	if r < 1 {
		r = 1
	}
	cx, cy := s.width/2, s.height/2

	for dy := -r; dy <= r; dy++ {
		for dx := -2 * r; dx <= 2*r; dx++ {
			if float64(dx*dx)/4+float64(dy*dy) > float64(r*r) {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= s.width || y < 0 || y >= s.height {
				continue
			}
			shade := 0.6 - 0.15*float64(dx)/float64(2*r+1) - 0.25*float64(dy)/float64(r)
			c := colorful.Hsv(s.approach.hue, 0.6, shade)
			screen.SetContent(x, y, '▓', nil, tcell.StyleDefault.Foreground(toTcell(c)))
		}
	}

	if s.approach.progress >= 1 {
		style := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(s.approach.hue, 0.25, 0.95)))
		s.drawLabel(screen, cx, cy+r+1, s.approach.name, style)
	}
}

// drawFlash paints the whole screen white at peak flash.
func (s *Scene) drawFlash(screen tcell.Screen) {
	lum := s.background.Flash
	style := tcell.StyleDefault.Background(toTcell(colorful.Hsv(0, 0, lum)))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawFlashTint scatters residual sparkle as the flash dies down.
func (s *Scene) drawFlashTint(screen tcell.Screen) {
	style := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(0, 0, s.background.Flash)))
	step := 5
	for y := 0; y < s.height; y += step {
		for x := (y / step) % step; x < s.width; x += step {
			screen.SetContent(x, y, '.', nil, style)
		}
	}
}

// drawCockpit frames the viewport with the cockpit silhouette.
func (s *Scene) drawCockpit(screen tcell.Screen) {
	frame := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(30, 0.2, 0.5)))

	for x := 0; x < s.width; x++ {
		screen.SetContent(x, 0, '▄', nil, frame)
		screen.SetContent(x, s.height-1, '▀', nil, frame)
	}
	for y := 1; y < s.height-1; y++ {
		screen.SetContent(0, y, '█', nil, frame)
		screen.SetContent(s.width-1, y, '█', nil, frame)
	}

	// Angled struts toward the canopy corners
	strut := int(float64(s.width) * 0.2)
	for i := 1; i < strut && i < s.height-1; i++ {
		screen.SetContent(i, i, '╲', nil, frame)
		screen.SetContent(s.width-1-i, i, '╱', nil, frame)
	}

	// Console line above the lower frame
	consoleY := s.height - 2
	console := tcell.StyleDefault.Foreground(toTcell(colorful.Hsv(140, 0.6, 0.55)))
	for x := 2; x < s.width-2; x += 7 {
		for i, ch := range "[####]" {
			if x+i < s.width-2 {
				screen.SetContent(x+i, consoleY, ch, nil, console)
			}
		}
	}
}
