package travel

// CheckResult is the corrective action a post-entry validation check
// decided on after reading the effect's reported flags.
type CheckResult int

const (
	// CheckOK means the effect matches the phase expectation
	CheckOK CheckResult = iota

	// CheckRestart means the effect died and must be started again
	CheckRestart

	// CheckForceShow means the effect runs but is not being drawn
	CheckForceShow
)

func (r CheckResult) String() string {
	switch r {
	case CheckOK:
		return "OK"
	case CheckRestart:
		return "Restart"
	case CheckForceShow:
		return "ForceShow"
	default:
		return "Unknown"
	}
}

// EvaluateEffect maps the effect's reported flags to the corrective
// action for a phase that expects the effect running and visible.
// Pure so the retry policy is testable without timers or a scene.
func EvaluateEffect(active, visible bool) CheckResult {
	switch {
	case !active:
		return CheckRestart
	case !visible:
		return CheckForceShow
	default:
		return CheckOK
	}
}
