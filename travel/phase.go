package travel

// Phase is the discrete stage of one travel attempt. Exactly one phase
// is active at a time and the Coordinator is its sole writer; every
// other component only reads.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirming
	PhaseFading
	PhaseCockpit
	PhaseHyperspace
	PhaseTransitioning
	PhaseApproach
	PhaseArrived
	PhaseContent
)

var phaseNames = map[Phase]string{
	PhaseIdle:          "Idle",
	PhaseConfirming:    "Confirming",
	PhaseFading:        "Fading",
	PhaseCockpit:       "Cockpit",
	PhaseHyperspace:    "Hyperspace",
	PhaseTransitioning: "Transitioning",
	PhaseApproach:      "Approach",
	PhaseArrived:       "Arrived",
	PhaseContent:       "Content",
}

// String returns the phase name for logging and the status overlay
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// validTransitions lists the edges the sequence may walk: each phase
// advances to exactly one forward phase, and every non-idle phase can
// fall back to Idle through cancel or emergency return.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:          {PhaseConfirming},
	PhaseConfirming:    {PhaseFading, PhaseIdle},
	PhaseFading:        {PhaseCockpit, PhaseIdle},
	PhaseCockpit:       {PhaseHyperspace, PhaseIdle},
	PhaseHyperspace:    {PhaseTransitioning, PhaseIdle},
	PhaseTransitioning: {PhaseApproach, PhaseIdle},
	PhaseApproach:      {PhaseArrived, PhaseIdle},
	PhaseArrived:       {PhaseContent, PhaseIdle},
	PhaseContent:       {PhaseIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InFlight reports whether p belongs to an active travel attempt.
func (p Phase) InFlight() bool {
	return p != PhaseIdle
}

// Travelling reports whether p is one of the timer-driven sequence
// phases between confirmation and content display.
func (p Phase) Travelling() bool {
	return p >= PhaseFading && p <= PhaseArrived
}
