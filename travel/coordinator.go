package travel

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/voidlight/starfolio/audio"
	"github.com/voidlight/starfolio/config"
	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/content"
	"github.com/voidlight/starfolio/engine"
	"github.com/voidlight/starfolio/events"
	"github.com/voidlight/starfolio/scene"
	"github.com/voidlight/starfolio/status"
)

// Director is the slice of the scene the travel sequence drives.
// *scene.Scene satisfies it; tests substitute a fake.
type Director interface {
	TakeSnapshot() scene.Snapshot
	RestoreSnapshot(snap scene.Snapshot)
	Hide(set scene.ObjectSet)
	BeginFade()
	ShowCockpit()
	HideCockpit()
	FlashBackground()
	BeginApproach(sectionID string)
	FinishApproach()
}

// Effect is the hyperspace streak layer as the coordinator sees it:
// lifecycle commands plus the two flags the validation check reads.
type Effect interface {
	Start()
	Stop()
	BeginApproach()
	IsActive() bool
	IsVisible() bool
	ForceShow()
}

// Source yields the content fragment shown on arrival.
type Source interface {
	ContentFor(sectionID string) content.Fragment
}

// Narrator is the audio surface used during the sequence. Every call
// must be safe when audio is degraded or muted.
type Narrator interface {
	PlayNarration(sectionID string) *audio.Session
	StopNarration()
	PlayCue(cue audio.CueType) bool
	IsPlaying() bool
}

// Presenter shows and hides the destination content overlay.
type Presenter interface {
	ShowContent(frag content.Fragment)
	HideContent()
}

// Gate is the confirmation dialog surface.
type Gate interface {
	Show(target Target)
	Hide()
}

// Deps are the collaborators a Coordinator drives. All fields are
// required except Recorder, which may be nil when no journal is open.
type Deps struct {
	Clock     engine.TimeProvider
	Director  Director
	Effect    Effect
	Source    Source
	Narrator  Narrator
	Presenter Presenter
	Gate      Gate
	Recorder  Recorder
	Registry  *status.Registry
	Durations config.Durations
}

// Coordinator owns the travel sequence state machine. It is the sole
// writer of the current phase and of its two named timers; everything
// runs on the main loop goroutine, so no locking is needed.
//
// The sequence is strictly timer-driven: a failed validation check
// corrects the effect but never delays the advance timer, so travel
// can degrade visually but cannot get stuck.
type Coordinator struct {
	clock     engine.TimeProvider
	timers    *engine.TimerSet
	director  Director
	effect    Effect
	source    Source
	narrator  Narrator
	presenter Presenter
	gate      Gate
	recorder  Recorder
	registry  *status.Registry
	durations config.Durations

	phase     Phase
	target    Target
	attemptID uuid.UUID
	startedAt time.Time

	snapshot      scene.Snapshot
	snapshotTaken bool

	interaction bool
}

// NewCoordinator creates an idle coordinator with orbit input enabled.
func NewCoordinator(deps Deps) *Coordinator {
	return &Coordinator{
		clock:       deps.Clock,
		timers:      engine.NewTimerSet(deps.Clock),
		director:    deps.Director,
		effect:      deps.Effect,
		source:      deps.Source,
		narrator:    deps.Narrator,
		presenter:   deps.Presenter,
		gate:        deps.Gate,
		recorder:    deps.Recorder,
		registry:    deps.Registry,
		durations:   deps.Durations,
		phase:       PhaseIdle,
		interaction: true,
	}
}

// CurrentPhase returns the active phase.
func (c *Coordinator) CurrentPhase() Phase {
	return c.phase
}

// CurrentTarget returns the destination of the running attempt.
// Zero while idle.
func (c *Coordinator) CurrentTarget() Target {
	return c.target
}

// AttemptID returns the id of the running attempt, uuid.Nil while idle.
func (c *Coordinator) AttemptID() uuid.UUID {
	return c.attemptID
}

// InteractionEnabled reports whether orbit-view input is accepted.
// False from confirmation until the sequence fully resets.
func (c *Coordinator) InteractionEnabled() bool {
	return c.interaction
}

// PendingTimers returns the armed timer names, sorted. Shown on the
// status overlay.
func (c *Coordinator) PendingTimers() []string {
	return c.timers.Names()
}

// Update fires due timers. Called every frame from the main loop.
func (c *Coordinator) Update(now time.Time) {
	c.timers.Fire(now)
}

// Initiate opens the confirmation gate for the chosen destination.
// Ignored unless the coordinator is idle.
func (c *Coordinator) Initiate(target Target) bool {
	if c.phase != PhaseIdle {
		log.Printf("Travel request ignored in phase %s", c.phase)
		return false
	}
	if !target.Valid() {
		log.Printf("Travel request rejected, no destination")
		return false
	}

	c.phase = PhaseConfirming
	c.target = target
	c.gate.Show(target)
	c.registry.Ints.Get(status.KeyTravelAttempts).Add(1)
	log.Printf("Travel to %q requested", target.SectionID)
	return true
}

// Confirm commits the pending attempt: snapshot the scene, lock input,
// and start the timed sequence. A target that turned invalid between
// Initiate and Confirm is a hard stop back to idle, before any scene
// or timer state changes.
func (c *Coordinator) Confirm() {
	if c.phase != PhaseConfirming {
		log.Printf("Travel confirm ignored in phase %s", c.phase)
		return
	}
	if !c.target.Valid() {
		log.Printf("Travel confirm aborted, destination lost")
		c.gate.Hide()
		c.target = Target{}
		c.phase = PhaseIdle
		return
	}

	c.gate.Hide()
	c.attemptID = uuid.New()
	c.startedAt = c.clock.Now()
	c.snapshot = c.director.TakeSnapshot()
	c.snapshotTaken = true
	c.interaction = false
	c.narrator.PlayCue(audio.CueConfirm)
	log.Printf("Travel %s to %q confirmed", c.attemptID, c.target.SectionID)

	c.enterPhase(PhaseFading)
}

// Cancel aborts the attempt before arrival. At the confirmation dialog
// it just closes the dialog; mid-flight it tears the sequence down and
// restores the orbit view. After arrival it behaves like a departure.
func (c *Coordinator) Cancel() {
	switch c.phase {
	case PhaseIdle:
		log.Printf("Travel cancel ignored, nothing in progress")
	case PhaseConfirming:
		c.gate.Hide()
		c.target = Target{}
		c.phase = PhaseIdle
		c.registry.Ints.Get(status.KeyTravelCancels).Add(1)
		log.Printf("Travel declined at confirmation")
	case PhaseContent:
		c.ReturnToOrbit()
	default:
		c.abort(ResultCancelled, false)
	}
}

// EmergencyReturn aborts from any point in the sequence with the abort
// klaxon. Safe while idle.
func (c *Coordinator) EmergencyReturn() {
	switch c.phase {
	case PhaseIdle:
		log.Printf("Emergency return ignored, already in orbit")
	case PhaseConfirming:
		c.narrator.PlayCue(audio.CueAbort)
		c.gate.Hide()
		c.target = Target{}
		c.phase = PhaseIdle
		c.registry.Ints.Get(status.KeyTravelCancels).Add(1)
		log.Printf("Emergency return from confirmation")
	case PhaseContent:
		// Flight already concluded, nothing to abort; leave like a
		// normal departure but keep the klaxon.
		c.narrator.PlayCue(audio.CueAbort)
		c.ReturnToOrbit()
	default:
		c.abort(ResultEmergency, true)
	}
}

// ReturnToOrbit leaves the content view and restores the orbit scene
// exactly as the snapshot captured it at confirmation.
func (c *Coordinator) ReturnToOrbit() {
	if c.phase != PhaseContent {
		log.Printf("Return to orbit ignored in phase %s", c.phase)
		return
	}
	log.Printf("Departing %q, returning to orbit", c.target.SectionID)
	c.reset()
}

// OnNarrationFinished is informational: the sequence is timer-driven
// and never waits on narration.
func (c *Coordinator) OnNarrationFinished(sectionID string, simulated bool) {
	log.Printf("Narration for %q finished (simulated=%v) in phase %s",
		sectionID, simulated, c.phase)
}

// abort records the failed attempt and funnels into reset.
func (c *Coordinator) abort(result string, klaxon bool) {
	endedPhase := c.phase
	if klaxon {
		c.narrator.PlayCue(audio.CueAbort)
	}
	if c.recorder != nil {
		c.recorder.Record(Outcome{
			AttemptID: c.attemptID,
			SectionID: c.target.SectionID,
			Result:    result,
			Phase:     endedPhase.String(),
			StartedAt: c.startedAt,
			EndedAt:   c.clock.Now(),
		})
	}
	c.registry.Ints.Get(status.KeyTravelCancels).Add(1)
	log.Printf("Travel to %q aborted (%s) in phase %s", c.target.SectionID, result, endedPhase)
	c.reset()
}

// reset is the single teardown path back to the orbit view. Every
// abort, emergency return, and departure funnels through here, and it
// must be safe for whatever half-state the sequence is in: timers
// disarmed first so nothing fires into a stale phase, then audio,
// overlays, and finally the scene snapshot.
func (c *Coordinator) reset() {
	c.timers.CancelAll()
	c.narrator.StopNarration()
	c.effect.Stop()
	c.presenter.HideContent()
	c.gate.Hide()

	if c.snapshotTaken {
		c.director.RestoreSnapshot(c.snapshot)
		c.snapshotTaken = false
		c.registry.Ints.Get(status.KeySceneRestores).Add(1)
	}

	c.target = Target{}
	c.attemptID = uuid.Nil
	c.phase = PhaseIdle
	c.interaction = true
}

// enterPhase performs the entry side effects of next and arms the
// advance timer toward the following phase. The validation timer never
// survives a phase change.
func (c *Coordinator) enterPhase(next Phase) {
	if !CanTransition(c.phase, next) {
		log.Printf("Invalid travel transition %s -> %s dropped", c.phase, next)
		return
	}
	c.timers.Cancel(constants.TimerValidate)
	prev := c.phase
	c.phase = next
	log.Printf("Travel phase %s -> %s", prev, next)

	switch next {
	case PhaseFading:
		c.director.BeginFade()
		c.scheduleAdvance(PhaseCockpit, c.durations.Fade)

	case PhaseCockpit:
		c.director.ShowCockpit()
		c.director.Hide(scene.ObjectPlanets | scene.ObjectShip | scene.ObjectHUD)
		c.scheduleAdvance(PhaseHyperspace, c.durations.Cockpit)

	case PhaseHyperspace:
		c.effect.Start()
		c.narrator.PlayCue(audio.CueWhoosh)
		c.narrator.PlayNarration(c.target.SectionID)
		c.scheduleValidation(PhaseHyperspace, false)
		c.scheduleAdvance(PhaseTransitioning, c.durations.Hyperspace)

	case PhaseTransitioning:
		c.effect.BeginApproach()
		c.director.FlashBackground()
		c.scheduleAdvance(PhaseApproach, c.durations.Transition)

	case PhaseApproach:
		c.director.BeginApproach(c.target.SectionID)
		c.scheduleValidation(PhaseApproach, false)
		c.scheduleAdvance(PhaseArrived, c.durations.Approach)

	case PhaseArrived:
		c.effect.Stop()
		c.director.FinishApproach()
		c.director.HideCockpit()
		c.narrator.PlayCue(audio.CueArrival)
		c.scheduleAdvance(PhaseContent, c.durations.Arrived)

	case PhaseContent:
		c.arrive()
	}
}

// arrive performs the terminal side effects of a successful flight:
// fetch content once, show the overlay, record the outcome. The target
// stays set until ReturnToOrbit so the content view knows where it is.
func (c *Coordinator) arrive() {
	frag := c.source.ContentFor(c.target.SectionID)
	c.presenter.ShowContent(frag)

	c.registry.Ints.Get(status.KeyTravelArrivals).Add(1)
	c.registry.Strings.Get(status.KeyTravelLastDestination).Store(c.target.SectionID)
	if c.recorder != nil {
		c.recorder.Record(Outcome{
			AttemptID: c.attemptID,
			SectionID: c.target.SectionID,
			Result:    ResultArrived,
			Phase:     PhaseContent.String(),
			StartedAt: c.startedAt,
			EndedAt:   c.clock.Now(),
		})
	}
	log.Printf("Arrived at %q", c.target.SectionID)
}

func (c *Coordinator) scheduleAdvance(next Phase, delay time.Duration) {
	c.timers.Schedule(constants.TimerAdvance, delay, func() {
		c.enterPhase(next)
	})
}

// scheduleValidation arms the post-entry effect check for phases that
// need the hyperspace effect on screen. The check corrects at most
// once: a failure re-arms one follow-up check, and a failure after the
// correction is only logged. The advance timer is never touched.
func (c *Coordinator) scheduleValidation(expect Phase, retried bool) {
	c.timers.Schedule(constants.TimerValidate, c.durations.Validation, func() {
		c.validateEffect(expect, retried)
	})
}

func (c *Coordinator) validateEffect(expect Phase, retried bool) {
	if c.phase != expect {
		// Sequence moved on before the check fired; stale result
		return
	}
	result := EvaluateEffect(c.effect.IsActive(), c.effect.IsVisible())
	if result == CheckOK {
		return
	}
	if retried {
		log.Printf("Effect still inconsistent in %s after retry (%s), continuing", c.phase, result)
		return
	}

	c.registry.Ints.Get(status.KeyTravelValidationRetry).Add(1)
	log.Printf("Effect check failed in %s (%s), correcting", c.phase, result)
	switch result {
	case CheckRestart:
		c.effect.Start()
		if expect == PhaseApproach {
			c.effect.BeginApproach()
		}
	case CheckForceShow:
		c.effect.ForceShow()
	}
	c.scheduleValidation(expect, true)
}

// EventTypes registers the coordinator for travel control events.
func (c *Coordinator) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSelectRequest,
		events.EventTravelConfirm,
		events.EventTravelCancel,
		events.EventReturnRequest,
		events.EventEmergencyReturn,
		events.EventNarrationFinished,
	}
}

// HandleEvent maps routed control events onto coordinator operations.
func (c *Coordinator) HandleEvent(now time.Time, event events.Event) {
	switch event.Type {
	case events.EventSelectRequest:
		if p, ok := event.Payload.(*events.SelectRequestPayload); ok {
			c.Initiate(Target{
				SectionID:   p.SectionID,
				Name:        p.Name,
				Description: p.Description,
			})
		}
	case events.EventTravelConfirm:
		c.Confirm()
	case events.EventTravelCancel:
		c.Cancel()
	case events.EventReturnRequest:
		c.ReturnToOrbit()
	case events.EventEmergencyReturn:
		c.EmergencyReturn()
	case events.EventNarrationFinished:
		if p, ok := event.Payload.(*events.NarrationFinishedPayload); ok {
			c.OnNarrationFinished(p.SectionID, p.Simulated)
		}
	}
}
