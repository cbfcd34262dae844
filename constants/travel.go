package constants

import "time"

// Travel Sequence Phase Durations
// Each value is the dwell time of one forward phase before its advance timer
// fires. Overridable per-phase through the config file.
const (
	// FadeDuration dims the orbit view before the cockpit appears
	FadeDuration = 600 * time.Millisecond

	// CockpitDuration shows the cockpit frame before the jump
	CockpitDuration = 900 * time.Millisecond

	// HyperspaceDuration is the star-streak leg of the journey
	HyperspaceDuration = 2600 * time.Millisecond

	// TransitionDuration is the white-out between hyperspace and approach
	TransitionDuration = 450 * time.Millisecond

	// ApproachDuration grows the destination planet to full size
	ApproachDuration = 1800 * time.Millisecond

	// ArrivedDuration is the touchdown pause before content is shown
	ArrivedDuration = 700 * time.Millisecond
)

// Travel Validation
const (
	// ValidationDelay is how long after a phase-entry side effect the
	// coordinator checks that the effect actually reports itself visible
	ValidationDelay = 100 * time.Millisecond
)

// Timer names used by the coordinator's timer set
const (
	TimerAdvance  = "travel.advance"
	TimerValidate = "travel.validate"
)
