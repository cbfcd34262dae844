package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"

	"github.com/voidlight/starfolio/constants"
)

// Starfield is the parallax background layer. Stars live in the ECS
// world; each depth layer drifts and dims differently.
type Starfield struct {
	posMap   *ecs.Map[Position]
	paramMap *ecs.Map[StarParams]
	stars    []ecs.Entity

	width  int
	height int
}

// NewStarfield populates the world with the standard star count.
func NewStarfield(world *ecs.World, rng *rand.Rand, width, height int) *Starfield {
	sf := &Starfield{
		posMap:   ecs.NewMap[Position](world),
		paramMap: ecs.NewMap[StarParams](world),
		stars:    make([]ecs.Entity, 0, constants.StarCount),
		width:    width,
		height:   height,
	}

	builder := ecs.NewMap2[Position, StarParams](world)
	for i := 0; i < constants.StarCount; i++ {
		e := builder.NewEntity(
			&Position{
				X: rng.Float64() * float64(width),
				Y: rng.Float64() * float64(height),
			},
			&StarParams{
				Depth: i % constants.StarDepthLevels,
				Phase: rng.Float64(),
			},
		)
		sf.stars = append(sf.stars, e)
	}
	return sf
}

// Resize rescales star positions into the new viewport.
func (sf *Starfield) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == sf.width && height == sf.height) {
		return
	}
	sx := float64(width) / float64(sf.width)
	sy := float64(height) / float64(sf.height)
	for _, e := range sf.stars {
		pos := sf.posMap.Get(e)
		pos.X *= sx
		pos.Y *= sy
	}
	sf.width = width
	sf.height = height
}

// Update drifts stars horizontally, nearest layer fastest, with
// wraparound at the right edge.
func (sf *Starfield) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	step := constants.StarDriftPerSecond * dt.Seconds()
	for _, e := range sf.stars {
		params := sf.paramMap.Get(e)
		pos := sf.posMap.Get(e)
		pos.X += step / float64(params.Depth+1)
		if pos.X >= float64(sf.width) {
			pos.X -= float64(sf.width)
		}
	}
}

// Draw renders the stars with twinkle and camera parallax applied.
func (sf *Starfield) Draw(screen tcell.Screen, cam Camera, bg Background, now time.Time) {
	twinkleT := float64(now.UnixNano()) / float64(constants.StarTwinkleInterval.Nanoseconds())

	for _, e := range sf.stars {
		params := sf.paramMap.Get(e)
		pos := sf.posMap.Get(e)

		// Farther layers parallax less
		parallax := 1.0 / float64(params.Depth+1)
		x := int(pos.X - cam.OffsetX*parallax)
		y := int(pos.Y - cam.OffsetY*parallax)
		if x < 0 || x >= sf.width || y < 0 || y >= sf.height {
			continue
		}

		base := 1.0 - 0.3*float64(params.Depth)
		twinkle := 0.75 + 0.25*math.Sin(2*math.Pi*(twinkleT+params.Phase))
		lum := base * twinkle * bg.Dim
		if lum <= 0.05 {
			continue
		}
		if lum > 1 {
			lum = 1
		}

		c := colorful.Hsv(220, 0.12, lum)
		style := tcell.StyleDefault.Foreground(toTcell(c))
		screen.SetContent(x, y, starRune(params.Depth), nil, style)
	}
}

func starRune(depth int) rune {
	switch depth {
	case 0:
		return '*'
	case 1:
		return '+'
	default:
		return '.'
	}
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
