package scene

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"

	"github.com/voidlight/starfolio/constants"
)

// EffectState is the hyperspace effect lifecycle.
type EffectState int

const (
	EffectInactive EffectState = iota
	EffectStreaking
	EffectApproaching
)

func (s EffectState) String() string {
	switch s {
	case EffectInactive:
		return "Inactive"
	case EffectStreaking:
		return "Streaking"
	case EffectApproaching:
		return "Approaching"
	default:
		return "Unknown"
	}
}

// HyperspaceEffect animates the streak pool during hyperspace travel.
// The pool is allocated once; Start re-seeds it, Stop parks it. The
// visible flag only gates drawing, so post-entry validation can
// distinguish a dead effect from a hidden one.
type HyperspaceEffect struct {
	posMap    *ecs.Map[Position]
	streakMap *ecs.Map[Streak]
	pool      []ecs.Entity

	state   EffectState
	visible bool
	rng     *rand.Rand
	width   int
	height  int
}

// NewHyperspaceEffect allocates the streak pool in the shared world.
func NewHyperspaceEffect(world *ecs.World, rng *rand.Rand, width, height int) *HyperspaceEffect {
	fx := &HyperspaceEffect{
		posMap:    ecs.NewMap[Position](world),
		streakMap: ecs.NewMap[Streak](world),
		pool:      make([]ecs.Entity, 0, constants.StreakPoolSize),
		rng:       rng,
		width:     width,
		height:    height,
	}

	builder := ecs.NewMap2[Position, Streak](world)
	for i := 0; i < constants.StreakPoolSize; i++ {
		e := builder.NewEntity(
			&Position{},
			&Streak{},
		)
		fx.pool = append(fx.pool, e)
	}
	return fx
}

// Start activates every streak with fresh parameters and makes the
// effect visible. Calling Start while running re-seeds the pool.
func (fx *HyperspaceEffect) Start() {
	for _, e := range fx.pool {
		fx.seed(e, true)
	}
	fx.state = EffectStreaking
	fx.visible = true
}

// Stop parks the pool and hides the effect.
func (fx *HyperspaceEffect) Stop() {
	for _, e := range fx.pool {
		streak := fx.streakMap.Get(e)
		streak.Active = false
	}
	fx.state = EffectInactive
	fx.visible = false
}

// BeginApproach switches the running effect into its deceleration
// mode. A no-op unless the effect is streaking.
func (fx *HyperspaceEffect) BeginApproach() {
	if fx.state == EffectStreaking {
		fx.state = EffectApproaching
	}
}

// IsActive reports whether the effect lifecycle is running.
func (fx *HyperspaceEffect) IsActive() bool {
	return fx.state != EffectInactive
}

// IsVisible reports whether the effect is actually being rendered.
func (fx *HyperspaceEffect) IsVisible() bool {
	return fx.visible && fx.state != EffectInactive
}

// State returns the current lifecycle state.
func (fx *HyperspaceEffect) State() EffectState {
	return fx.state
}

// ForceShow unhides the effect without touching its lifecycle.
func (fx *HyperspaceEffect) ForceShow() {
	fx.visible = true
}

// ForceHide suppresses drawing without touching the lifecycle.
func (fx *HyperspaceEffect) ForceHide() {
	fx.visible = false
}

// ActiveStreaks counts streaks currently in flight.
func (fx *HyperspaceEffect) ActiveStreaks() int {
	n := 0
	for _, e := range fx.pool {
		if fx.streakMap.Get(e).Active {
			n++
		}
	}
	return n
}

// Resize updates the spawn bounds.
func (fx *HyperspaceEffect) Resize(width, height int) {
	if width > 0 && height > 0 {
		fx.width = width
		fx.height = height
	}
}

// Update advances streaks. While streaking, streaks leaving the left
// edge respawn on the right; while approaching they decelerate,
// shorten, and retire instead.
func (fx *HyperspaceEffect) Update(dt time.Duration) {
	if fx.state == EffectInactive || dt <= 0 {
		return
	}

	for _, e := range fx.pool {
		streak := fx.streakMap.Get(e)
		if !streak.Active {
			continue
		}
		pos := fx.posMap.Get(e)
		pos.X -= streak.Speed * dt.Seconds()

		switch fx.state {
		case EffectStreaking:
			if pos.X+float64(streak.Length) < 0 {
				fx.seed(e, false)
			}
		case EffectApproaching:
			// Bleed speed off and condense the line back to a point
			streak.Speed *= 1 - 1.5*dt.Seconds()
			if streak.Speed < constants.StreakMinSpeed/2 {
				shrink := 1 + int(6*dt.Seconds()*float64(streak.Length))
				streak.Length -= shrink
			}
			if streak.Length <= 0 || pos.X+float64(streak.Length) < 0 {
				streak.Active = false
			}
		}
	}
}

// seed resets one streak. Initial placement scatters across the whole
// screen; respawns enter from the right edge.
func (fx *HyperspaceEffect) seed(e ecs.Entity, initial bool) {
	pos := fx.posMap.Get(e)
	streak := fx.streakMap.Get(e)

	if initial {
		pos.X = fx.rng.Float64() * float64(fx.width)
	} else {
		pos.X = float64(fx.width) + fx.rng.Float64()*float64(fx.width)/2
	}
	pos.Y = fx.rng.Float64() * float64(fx.height)

	streak.Speed = constants.StreakMinSpeed +
		fx.rng.Float64()*(constants.StreakMaxSpeed-constants.StreakMinSpeed)
	streak.Length = 2 + fx.rng.Intn(constants.StreakMaxLength-1)
	streak.Active = true
}

// Draw renders active streaks head-left with a brightness falloff
// along the tail.
func (fx *HyperspaceEffect) Draw(screen tcell.Screen, bg Background) {
	if !fx.IsVisible() {
		return
	}

	for _, e := range fx.pool {
		streak := fx.streakMap.Get(e)
		if !streak.Active {
			continue
		}
		pos := fx.posMap.Get(e)
		y := int(pos.Y)
		if y < 0 || y >= fx.height {
			continue
		}

		speedLum := 0.5 + 0.5*(streak.Speed-constants.StreakMinSpeed)/
			(constants.StreakMaxSpeed-constants.StreakMinSpeed)

		for i := 0; i < streak.Length; i++ {
			x := int(pos.X) + i
			if x < 0 || x >= fx.width {
				continue
			}
			falloff := 1.0 - float64(i)/float64(streak.Length)
			lum := speedLum * (0.35 + 0.65*falloff) * bg.Dim
			if lum > 1 {
				lum = 1
			}
			c := colorful.Hsv(215, 0.5-0.4*falloff, lum)
			style := tcell.StyleDefault.Foreground(toTcell(c))
			ch := '-'
			if i == 0 {
				ch = '='
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}
