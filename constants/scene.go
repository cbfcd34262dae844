package constants

import "time"

// Starfield Composition
const (
	// StarCount is the number of background stars in the orbit view
	StarCount = 220

	// StarDepthLevels controls the parallax layering (1 = nearest)
	StarDepthLevels = 3

	// StarTwinkleInterval is the mean time between brightness flips
	StarTwinkleInterval = 900 * time.Millisecond

	// StarDriftPerSecond is the slow camera-relative drift of the far layer
	StarDriftPerSecond = 0.6
)

// Hyperspace Streak Pool
const (
	// StreakPoolSize is the fixed number of pre-allocated streak entities
	StreakPoolSize = 96

	// StreakMinSpeed and StreakMaxSpeed bound the radial cells-per-second
	StreakMinSpeed = 18.0
	StreakMaxSpeed = 64.0

	// StreakMaxLength is the longest tail a streak may draw
	StreakMaxLength = 7
)

// Planet Layout
const (
	// OrbitRingSpacing is the horizontal cell distance between orbit rings
	OrbitRingSpacing = 11

	// PlanetRadius is the half-width of the planet disc art in cells
	PlanetRadius = 2

	// ApproachMaxRadius is the largest disc drawn during the approach phase
	ApproachMaxRadius = 9
)

// Scene Fade
const (
	// FadeDimFactor is the brightness multiplier applied while fading
	FadeDimFactor = 0.35
)
