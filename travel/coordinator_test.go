package travel

import (
	"testing"
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

var testDurations = config.Durations{
	Fade:       600 * time.Millisecond,
	Cockpit:    900 * time.Millisecond,
	Hyperspace: 2600 * time.Millisecond,
	Transition: 450 * time.Millisecond,
	Approach:   1800 * time.Millisecond,
	Arrived:    700 * time.Millisecond,
	Validation: 100 * time.Millisecond,
}

var testTarget = Target{SectionID: "about", Name: "Aurelia", Description: "Who is flying this thing"}

// testSnapshot is distinctive so restore assertions catch a coordinator
// that restores the wrong (or a zero) snapshot.
var testSnapshot = scene.Snapshot{
	Camera:     scene.Camera{OffsetX: 3, OffsetY: 7},
	Background: scene.Background{Dim: 0.8},
	Hidden:     scene.ObjectShip,
	Cursor:     2,
}

type fakeDirector struct {
	snapshots    int
	restores     []scene.Snapshot
	fades        int
	cockpitShown bool
	hidden       scene.ObjectSet
	flashes      int
	approachID   string
	approachDone bool
}

func (d *fakeDirector) TakeSnapshot() scene.Snapshot { d.snapshots++; return testSnapshot }
func (d *fakeDirector) RestoreSnapshot(snap scene.Snapshot) {
	d.restores = append(d.restores, snap)
	d.cockpitShown = false
	d.approachID = ""
	d.approachDone = false
	d.hidden = snap.Hidden
}
func (d *fakeDirector) Hide(set scene.ObjectSet)    { d.hidden |= set }
func (d *fakeDirector) BeginFade()                  { d.fades++ }
func (d *fakeDirector) ShowCockpit()                { d.cockpitShown = true }
func (d *fakeDirector) HideCockpit()                { d.cockpitShown = false }
func (d *fakeDirector) FlashBackground()            { d.flashes++ }
func (d *fakeDirector) BeginApproach(sectionID string) { d.approachID = sectionID }
func (d *fakeDirector) FinishApproach()             { d.approachDone = true }

type fakeEffect struct {
	active     bool
	visible    bool
	starts     int
	stops      int
	approaches int
	forceShows int

	failNextStart   bool // Start leaves the flags down once
	ignoreForceShow bool // ForceShow does not restore visibility
}

func (e *fakeEffect) Start() {
	e.starts++
	if e.failNextStart {
		e.failNextStart = false
		return
	}
	e.active = true
	e.visible = true
}
func (e *fakeEffect) Stop()          { e.stops++; e.active = false; e.visible = false }
func (e *fakeEffect) BeginApproach() { e.approaches++ }
func (e *fakeEffect) IsActive() bool { return e.active }
func (e *fakeEffect) IsVisible() bool {
	return e.visible && e.active
}
func (e *fakeEffect) ForceShow() {
	e.forceShows++
	if !e.ignoreForceShow {
		e.visible = true
	}
}

type fakeSource struct {
	requests []string
}

func (s *fakeSource) ContentFor(sectionID string) content.Fragment {
	s.requests = append(s.requests, sectionID)
	return content.Fragment{Title: "DOSSIER: " + sectionID, Lines: []string{"classified"}}
}

type fakeNarrator struct {
	playing    bool
	narrations []string
	stops      int
	cues       []audio.CueType
}

func (n *fakeNarrator) PlayNarration(sectionID string) *audio.Session {
	n.playing = true
	n.narrations = append(n.narrations, sectionID)
	return &audio.Session{SectionID: sectionID, Simulated: true}
}
func (n *fakeNarrator) StopNarration()               { n.playing = false; n.stops++ }
func (n *fakeNarrator) PlayCue(cue audio.CueType) bool { n.cues = append(n.cues, cue); return true }
func (n *fakeNarrator) IsPlaying() bool              { return n.playing }

func (n *fakeNarrator) hasCue(cue audio.CueType) bool {
	for _, c := range n.cues {
		if c == cue {
			return true
		}
	}
	return false
}

type fakePresenter struct {
	visible bool
	shown   []content.Fragment
	hides   int
}

func (p *fakePresenter) ShowContent(frag content.Fragment) {
	p.visible = true
	p.shown = append(p.shown, frag)
}
func (p *fakePresenter) HideContent() { p.visible = false; p.hides++ }

type fakeGate struct {
	visible bool
	shows   []Target
	hides   int
}

func (g *fakeGate) Show(target Target) { g.visible = true; g.shows = append(g.shows, target) }
func (g *fakeGate) Hide()              { g.visible = false; g.hides++ }

type fakeRecorder struct {
	outcomes []Outcome
}

func (r *fakeRecorder) Record(o Outcome) { r.outcomes = append(r.outcomes, o) }

type coordFixture struct {
	clock     *engine.MockTimeProvider
	director  *fakeDirector
	effect    *fakeEffect
	source    *fakeSource
	narrator  *fakeNarrator
	presenter *fakePresenter
	gate      *fakeGate
	recorder  *fakeRecorder
	registry  *status.Registry
	coord     *Coordinator
}

func newFixture() *coordFixture {
	f := &coordFixture{
		clock:     engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		director:  &fakeDirector{},
		effect:    &fakeEffect{},
		source:    &fakeSource{},
		narrator:  &fakeNarrator{},
		presenter: &fakePresenter{},
		gate:      &fakeGate{},
		recorder:  &fakeRecorder{},
		registry:  status.NewRegistry(),
	}
	f.coord = NewCoordinator(Deps{
		Clock:     f.clock,
		Director:  f.director,
		Effect:    f.effect,
		Source:    f.source,
		Narrator:  f.narrator,
		Presenter: f.presenter,
		Gate:      f.gate,
		Recorder:  f.recorder,
		Registry:  f.registry,
		Durations: testDurations,
	})
	return f
}

// advance moves the mock clock and fires due coordinator timers.
func (f *coordFixture) advance(d time.Duration) {
	f.clock.Advance(d)
	f.coord.Update(f.clock.Now())
}

func (f *coordFixture) metric(key string) int64 {
	return f.registry.Ints.Get(key).Load()
}

// runTo confirms a flight to testTarget and advances phase by phase
// until want is reached.
func (f *coordFixture) runTo(t *testing.T, want Phase) {
	t.Helper()
	if !f.coord.Initiate(testTarget) {
		t.Fatal("Initiate rejected")
	}
	if want == PhaseConfirming {
		return
	}
	f.coord.Confirm()
	if f.coord.CurrentPhase() == want {
		return
	}

	steps := []struct {
		delay time.Duration
		next  Phase
	}{
		{testDurations.Fade, PhaseCockpit},
		{testDurations.Cockpit, PhaseHyperspace},
		{testDurations.Hyperspace, PhaseTransitioning},
		{testDurations.Transition, PhaseApproach},
		{testDurations.Approach, PhaseArrived},
		{testDurations.Arrived, PhaseContent},
	}
	for _, step := range steps {
		f.advance(step.delay)
		if f.coord.CurrentPhase() != step.next {
			t.Fatalf("Expected phase %s while running to %s, got %s",
				step.next, want, f.coord.CurrentPhase())
		}
		if step.next == want {
			return
		}
	}
	t.Fatalf("Never reached phase %s", want)
}

// TestFullSequence walks the complete forward sequence and checks the
// entry side effects of every phase.
func TestFullSequence(t *testing.T) {
	f := newFixture()

	if !f.coord.Initiate(testTarget) {
		t.Fatal("Initiate rejected while idle")
	}
	if f.coord.CurrentPhase() != PhaseConfirming {
		t.Fatalf("Expected Confirming, got %s", f.coord.CurrentPhase())
	}
	if len(f.gate.shows) != 1 || f.gate.shows[0].SectionID != "about" {
		t.Errorf("Expected gate to show the target, got %+v", f.gate.shows)
	}
	if f.metric(status.KeyTravelAttempts) != 1 {
		t.Errorf("Expected 1 attempt, got %d", f.metric(status.KeyTravelAttempts))
	}

	f.coord.Confirm()
	if f.coord.CurrentPhase() != PhaseFading {
		t.Fatalf("Expected Fading after confirm, got %s", f.coord.CurrentPhase())
	}
	if f.gate.visible {
		t.Error("Expected gate hidden after confirm")
	}
	if f.director.snapshots != 1 {
		t.Errorf("Expected exactly one snapshot, got %d", f.director.snapshots)
	}
	if f.coord.InteractionEnabled() {
		t.Error("Expected interaction disabled for the flight")
	}
	if f.coord.AttemptID() == uuid.Nil {
		t.Error("Expected a non-nil attempt id")
	}
	if f.director.fades != 1 {
		t.Errorf("Expected one fade, got %d", f.director.fades)
	}
	if !f.narrator.hasCue(audio.CueConfirm) {
		t.Error("Expected confirm cue on confirm")
	}

	f.advance(testDurations.Fade)
	if f.coord.CurrentPhase() != PhaseCockpit {
		t.Fatalf("Expected Cockpit, got %s", f.coord.CurrentPhase())
	}
	if !f.director.cockpitShown {
		t.Error("Expected cockpit to be shown")
	}
	wantHidden := scene.ObjectPlanets | scene.ObjectShip | scene.ObjectHUD
	if f.director.hidden&wantHidden != wantHidden {
		t.Errorf("Expected planets, ship and HUD hidden, got %b", f.director.hidden)
	}

	f.advance(testDurations.Cockpit)
	if f.coord.CurrentPhase() != PhaseHyperspace {
		t.Fatalf("Expected Hyperspace, got %s", f.coord.CurrentPhase())
	}
	if f.effect.starts != 1 || !f.effect.active {
		t.Errorf("Expected effect started once and active, starts=%d active=%v",
			f.effect.starts, f.effect.active)
	}
	wantTimers := []string{constants.TimerAdvance, constants.TimerValidate}
	if got := f.coord.PendingTimers(); len(got) != 2 || got[0] != wantTimers[0] || got[1] != wantTimers[1] {
		t.Errorf("Expected pending timers %v, got %v", wantTimers, got)
	}
	if !f.narrator.hasCue(audio.CueWhoosh) {
		t.Error("Expected whoosh cue on hyperspace entry")
	}
	if len(f.narrator.narrations) != 1 || f.narrator.narrations[0] != "about" {
		t.Errorf("Expected narration for about, got %v", f.narrator.narrations)
	}

	f.advance(testDurations.Hyperspace)
	if f.coord.CurrentPhase() != PhaseTransitioning {
		t.Fatalf("Expected Transitioning, got %s", f.coord.CurrentPhase())
	}
	if f.effect.approaches != 1 {
		t.Errorf("Expected effect approach mode, got %d calls", f.effect.approaches)
	}
	if f.director.flashes != 1 {
		t.Errorf("Expected one background flash, got %d", f.director.flashes)
	}

	f.advance(testDurations.Transition)
	if f.coord.CurrentPhase() != PhaseApproach {
		t.Fatalf("Expected Approach, got %s", f.coord.CurrentPhase())
	}
	if f.director.approachID != "about" {
		t.Errorf("Expected scene approach to about, got %q", f.director.approachID)
	}

	f.advance(testDurations.Approach)
	if f.coord.CurrentPhase() != PhaseArrived {
		t.Fatalf("Expected Arrived, got %s", f.coord.CurrentPhase())
	}
	if f.effect.active || f.effect.stops == 0 {
		t.Error("Expected effect stopped on arrival")
	}
	if !f.director.approachDone {
		t.Error("Expected approach pinned at full size")
	}
	if f.director.cockpitShown {
		t.Error("Expected cockpit hidden on arrival")
	}
	if !f.narrator.hasCue(audio.CueArrival) {
		t.Error("Expected arrival chime")
	}

	f.advance(testDurations.Arrived)
	if f.coord.CurrentPhase() != PhaseContent {
		t.Fatalf("Expected Content, got %s", f.coord.CurrentPhase())
	}
	if len(f.source.requests) != 1 || f.source.requests[0] != "about" {
		t.Errorf("Expected exactly one content fetch for about, got %v", f.source.requests)
	}
	if len(f.presenter.shown) != 1 || f.presenter.shown[0].Title != "DOSSIER: about" {
		t.Errorf("Expected content overlay shown once, got %+v", f.presenter.shown)
	}
	if f.metric(status.KeyTravelArrivals) != 1 {
		t.Errorf("Expected 1 arrival, got %d", f.metric(status.KeyTravelArrivals))
	}
	if got := f.registry.Strings.Get(status.KeyTravelLastDestination).Load(); got != "about" {
		t.Errorf("Expected last destination about, got %q", got)
	}
	if len(f.recorder.outcomes) != 1 {
		t.Fatalf("Expected 1 journal outcome, got %d", len(f.recorder.outcomes))
	}
	outcome := f.recorder.outcomes[0]
	if outcome.Result != ResultArrived || outcome.SectionID != "about" {
		t.Errorf("Expected arrived outcome for about, got %+v", outcome)
	}
	if outcome.AttemptID != f.coord.AttemptID() {
		t.Error("Expected outcome to carry the attempt id")
	}
	if f.coord.timers.Len() != 0 {
		t.Errorf("Expected no timers pending in content phase, got %d", f.coord.timers.Len())
	}
	if f.coord.InteractionEnabled() {
		t.Error("Expected orbit interaction still disabled in content view")
	}

	// Target stays resolved for the content view
	if f.coord.CurrentTarget().SectionID != "about" {
		t.Errorf("Expected target retained, got %+v", f.coord.CurrentTarget())
	}
}

// TestCancelMidFlight cancels at every travelling phase and verifies
// the full teardown contract each time.
func TestCancelMidFlight(t *testing.T) {
	phases := []Phase{PhaseFading, PhaseCockpit, PhaseHyperspace,
		PhaseTransitioning, PhaseApproach, PhaseArrived}

	for _, phase := range phases {
		t.Run(phase.String(), func(t *testing.T) {
			f := newFixture()
			f.runTo(t, phase)
			attemptID := f.coord.AttemptID()

			f.coord.Cancel()

			if f.coord.CurrentPhase() != PhaseIdle {
				t.Fatalf("Expected Idle after cancel, got %s", f.coord.CurrentPhase())
			}
			if !f.coord.InteractionEnabled() {
				t.Error("Expected interaction re-enabled")
			}
			if f.coord.timers.Len() != 0 {
				t.Errorf("Expected no pending timers, got %d", f.coord.timers.Len())
			}
			if len(f.director.restores) != 1 || f.director.restores[0] != testSnapshot {
				t.Errorf("Expected exactly one restore of the confirm snapshot, got %+v",
					f.director.restores)
			}
			if f.narrator.playing {
				t.Error("Expected narration stopped")
			}
			if f.effect.active || f.effect.IsVisible() {
				t.Error("Expected effect inactive and invisible")
			}
			if f.presenter.visible {
				t.Error("Expected content overlay hidden")
			}
			if f.coord.CurrentTarget() != (Target{}) {
				t.Errorf("Expected target cleared, got %+v", f.coord.CurrentTarget())
			}
			if f.coord.AttemptID() != uuid.Nil {
				t.Error("Expected attempt id cleared")
			}
			if len(f.recorder.outcomes) != 1 {
				t.Fatalf("Expected 1 outcome, got %d", len(f.recorder.outcomes))
			}
			outcome := f.recorder.outcomes[0]
			if outcome.Result != ResultCancelled {
				t.Errorf("Expected cancelled outcome, got %q", outcome.Result)
			}
			if outcome.Phase != phase.String() {
				t.Errorf("Expected outcome phase %s, got %s", phase, outcome.Phase)
			}
			if outcome.AttemptID != attemptID {
				t.Error("Expected outcome to carry the aborted attempt id")
			}
			if f.metric(status.KeyTravelCancels) != 1 {
				t.Errorf("Expected 1 cancel, got %d", f.metric(status.KeyTravelCancels))
			}
			if f.metric(status.KeySceneRestores) != 1 {
				t.Errorf("Expected 1 scene restore, got %d", f.metric(status.KeySceneRestores))
			}
		})
	}
}

// TestEmergencyReturn aborts from dialog, mid-flight and content view.
func TestEmergencyReturn(t *testing.T) {
	t.Run("Confirming", func(t *testing.T) {
		f := newFixture()
		f.runTo(t, PhaseConfirming)
		f.coord.EmergencyReturn()

		if f.coord.CurrentPhase() != PhaseIdle {
			t.Fatalf("Expected Idle, got %s", f.coord.CurrentPhase())
		}
		if f.gate.visible {
			t.Error("Expected gate hidden")
		}
		if len(f.recorder.outcomes) != 0 {
			t.Errorf("Expected no journal row for a flight that never started, got %d",
				len(f.recorder.outcomes))
		}
		if !f.narrator.hasCue(audio.CueAbort) {
			t.Error("Expected abort klaxon")
		}
	})

	for _, phase := range []Phase{PhaseFading, PhaseHyperspace, PhaseApproach} {
		t.Run(phase.String(), func(t *testing.T) {
			f := newFixture()
			f.runTo(t, phase)
			f.coord.EmergencyReturn()

			if f.coord.CurrentPhase() != PhaseIdle {
				t.Fatalf("Expected Idle, got %s", f.coord.CurrentPhase())
			}
			if f.coord.timers.Len() != 0 {
				t.Errorf("Expected no pending timers, got %d", f.coord.timers.Len())
			}
			if len(f.director.restores) != 1 {
				t.Fatalf("Expected one scene restore, got %d", len(f.director.restores))
			}
			if !f.narrator.hasCue(audio.CueAbort) {
				t.Error("Expected abort klaxon")
			}
			if len(f.recorder.outcomes) != 1 || f.recorder.outcomes[0].Result != ResultEmergency {
				t.Errorf("Expected one emergency outcome, got %+v", f.recorder.outcomes)
			}
			if f.recorder.outcomes[0].Phase != phase.String() {
				t.Errorf("Expected outcome phase %s, got %s", phase, f.recorder.outcomes[0].Phase)
			}
		})
	}

	t.Run("Content", func(t *testing.T) {
		f := newFixture()
		f.runTo(t, PhaseContent)
		f.coord.EmergencyReturn()

		if f.coord.CurrentPhase() != PhaseIdle {
			t.Fatalf("Expected Idle, got %s", f.coord.CurrentPhase())
		}
		// Arrival was already journaled; leaving adds nothing
		if len(f.recorder.outcomes) != 1 || f.recorder.outcomes[0].Result != ResultArrived {
			t.Errorf("Expected only the arrived outcome, got %+v", f.recorder.outcomes)
		}
		if !f.narrator.hasCue(audio.CueAbort) {
			t.Error("Expected abort klaxon")
		}
		if len(f.director.restores) != 1 {
			t.Errorf("Expected one scene restore, got %d", len(f.director.restores))
		}
	})

	t.Run("Idle", func(t *testing.T) {
		f := newFixture()
		f.coord.EmergencyReturn()
		if f.coord.CurrentPhase() != PhaseIdle {
			t.Error("Expected emergency return while idle to be a no-op")
		}
		if len(f.director.restores) != 0 {
			t.Error("Expected no restore while idle")
		}
	})
}

// TestValidationRestartsDeadEffect simulates an effect that fails to
// start: the 100ms check must restart it once, and the phase must still
// advance at the originally scheduled time.
func TestValidationRestartsDeadEffect(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseCockpit)
	f.effect.failNextStart = true

	f.advance(testDurations.Cockpit)
	if f.coord.CurrentPhase() != PhaseHyperspace {
		t.Fatalf("Expected Hyperspace, got %s", f.coord.CurrentPhase())
	}
	if f.effect.starts != 1 || f.effect.active {
		t.Fatalf("Expected dead effect after failed start, starts=%d active=%v",
			f.effect.starts, f.effect.active)
	}

	f.advance(testDurations.Validation)
	if f.effect.starts != 2 || !f.effect.active {
		t.Errorf("Expected corrective restart, starts=%d active=%v",
			f.effect.starts, f.effect.active)
	}
	if f.metric(status.KeyTravelValidationRetry) != 1 {
		t.Errorf("Expected 1 validation retry, got %d", f.metric(status.KeyTravelValidationRetry))
	}

	// Remaining hyperspace time: the advance fires exactly on schedule
	f.advance(testDurations.Hyperspace - testDurations.Validation)
	if f.coord.CurrentPhase() != PhaseTransitioning {
		t.Errorf("Expected Transitioning on schedule, got %s", f.coord.CurrentPhase())
	}
	if f.effect.starts != 2 {
		t.Errorf("Expected no further restarts, got %d", f.effect.starts)
	}
}

// TestValidationForcesVisibility simulates the effect reporting itself
// invisible at the checkpoint: exactly one forceShow, no schedule slip.
func TestValidationForcesVisibility(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseHyperspace)
	f.effect.visible = false

	f.advance(testDurations.Validation)
	if f.effect.forceShows != 1 {
		t.Errorf("Expected exactly one forceShow, got %d", f.effect.forceShows)
	}
	if !f.effect.IsVisible() {
		t.Error("Expected effect visible after correction")
	}

	f.advance(testDurations.Hyperspace - testDurations.Validation)
	if f.coord.CurrentPhase() != PhaseTransitioning {
		t.Errorf("Expected Transitioning on schedule, got %s", f.coord.CurrentPhase())
	}
	if f.effect.forceShows != 1 {
		t.Errorf("Expected no second correction, got %d forceShows", f.effect.forceShows)
	}
}

// TestValidationPersistentFailure keeps the effect broken through both
// checks: one correction, one logged follow-up, never a blocked timer.
func TestValidationPersistentFailure(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseHyperspace)
	f.effect.visible = false
	f.effect.ignoreForceShow = true

	f.advance(testDurations.Validation)
	f.advance(testDurations.Validation)
	if f.effect.forceShows != 1 {
		t.Errorf("Expected a single correction attempt, got %d", f.effect.forceShows)
	}
	if f.metric(status.KeyTravelValidationRetry) != 1 {
		t.Errorf("Expected 1 validation retry, got %d", f.metric(status.KeyTravelValidationRetry))
	}

	f.advance(testDurations.Hyperspace - 2*testDurations.Validation)
	if f.coord.CurrentPhase() != PhaseTransitioning {
		t.Errorf("Expected sequence to continue despite broken effect, got %s",
			f.coord.CurrentPhase())
	}
}

// TestValidationApproachRestart checks the approach-phase variant of
// the corrective restart, which must also re-enter approach mode.
func TestValidationApproachRestart(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseTransitioning)
	approachesBefore := f.effect.approaches

	f.effect.Stop() // Effect dies between transition and the checkpoint
	f.advance(testDurations.Transition)
	if f.coord.CurrentPhase() != PhaseApproach {
		t.Fatalf("Expected Approach, got %s", f.coord.CurrentPhase())
	}

	f.advance(testDurations.Validation)
	if !f.effect.active {
		t.Error("Expected effect restarted during approach")
	}
	if f.effect.approaches != approachesBefore+1 {
		t.Errorf("Expected restart to re-enter approach mode, approaches=%d", f.effect.approaches)
	}
}

func TestValidationStaleCheckIgnored(t *testing.T) {
	f := newFixture()
	f.effect.active = false

	// Fires against an idle coordinator: must not count or correct
	f.coord.validateEffect(PhaseHyperspace, false)
	if f.effect.starts != 0 || f.effect.forceShows != 0 {
		t.Error("Expected stale check to do nothing")
	}
	if f.metric(status.KeyTravelValidationRetry) != 0 {
		t.Error("Expected no retry counted for a stale check")
	}
}

// TestConfirmInvalidTarget covers the hard-stop rule: a destination
// that vanished between request and confirm must return to idle
// without touching scene, timers, or audio.
func TestConfirmInvalidTarget(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseConfirming)
	f.coord.target = Target{} // Destination lost while dialog was up

	f.coord.Confirm()

	if f.coord.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected hard stop to Idle, got %s", f.coord.CurrentPhase())
	}
	if f.director.snapshots != 0 {
		t.Error("Expected no snapshot taken")
	}
	if f.director.fades != 0 {
		t.Error("Expected no scene mutation")
	}
	if f.coord.timers.Len() != 0 {
		t.Error("Expected no timers started")
	}
	if len(f.narrator.cues) != 0 {
		t.Error("Expected no audio cue")
	}
	if !f.coord.InteractionEnabled() {
		t.Error("Expected interaction to remain enabled")
	}
	if f.gate.visible {
		t.Error("Expected gate hidden")
	}
}

// TestConfirmGuards verifies Confirm is inert outside the dialog.
func TestConfirmGuards(t *testing.T) {
	f := newFixture()

	f.coord.Confirm()
	if f.coord.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected idle confirm to no-op, got %s", f.coord.CurrentPhase())
	}
	if f.coord.timers.Len() != 0 {
		t.Error("Expected no timers scheduled")
	}
	if f.director.snapshots != 0 {
		t.Error("Expected no snapshot taken")
	}

	f.runTo(t, PhaseHyperspace)
	f.coord.Confirm()
	if f.coord.CurrentPhase() != PhaseHyperspace {
		t.Errorf("Expected mid-flight confirm to no-op, got %s", f.coord.CurrentPhase())
	}
	if f.director.snapshots != 1 {
		t.Errorf("Expected 1 snapshot, got %d", f.director.snapshots)
	}
}

func TestInitiateGuards(t *testing.T) {
	f := newFixture()

	if f.coord.Initiate(Target{}) {
		t.Error("Expected empty target to be rejected")
	}
	if f.metric(status.KeyTravelAttempts) != 0 {
		t.Error("Expected rejected request to not count as attempt")
	}

	if !f.coord.Initiate(testTarget) {
		t.Fatal("Expected valid request to be accepted")
	}
	if f.coord.Initiate(testTarget) {
		t.Error("Expected second request to be rejected while confirming")
	}
	if len(f.gate.shows) != 1 {
		t.Errorf("Expected gate shown once, got %d", len(f.gate.shows))
	}

	f.coord.Confirm()
	if f.coord.Initiate(testTarget) {
		t.Error("Expected request to be rejected mid-flight")
	}
	if f.metric(status.KeyTravelAttempts) != 1 {
		t.Errorf("Expected 1 attempt, got %d", f.metric(status.KeyTravelAttempts))
	}
}

func TestCancelAtConfirmationDialog(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseConfirming)

	f.coord.Cancel()

	if f.coord.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected Idle, got %s", f.coord.CurrentPhase())
	}
	if f.gate.visible {
		t.Error("Expected gate hidden")
	}
	if f.director.snapshots != 0 || len(f.director.restores) != 0 {
		t.Error("Expected scene untouched by a declined dialog")
	}
	if len(f.recorder.outcomes) != 0 {
		t.Errorf("Expected no journal row, got %d", len(f.recorder.outcomes))
	}
	if f.metric(status.KeyTravelCancels) != 1 {
		t.Errorf("Expected 1 cancel, got %d", f.metric(status.KeyTravelCancels))
	}

	// Cancelling again while idle is a logged no-op
	f.coord.Cancel()
	if f.metric(status.KeyTravelCancels) != 1 {
		t.Error("Expected idle cancel to not count")
	}
}

// TestReturnToOrbit verifies the content-view departure: snapshot
// restored exactly, input re-enabled, overlay gone, no extra journal row.
func TestReturnToOrbit(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseContent)

	f.coord.ReturnToOrbit()

	if f.coord.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected Idle, got %s", f.coord.CurrentPhase())
	}
	if len(f.director.restores) != 1 || f.director.restores[0] != testSnapshot {
		t.Errorf("Expected the confirm snapshot restored, got %+v", f.director.restores)
	}
	if f.presenter.visible {
		t.Error("Expected content overlay hidden")
	}
	if !f.coord.InteractionEnabled() {
		t.Error("Expected interaction re-enabled")
	}
	if f.narrator.playing {
		t.Error("Expected narration stopped on departure")
	}
	if f.coord.timers.Len() != 0 {
		t.Errorf("Expected no timers, got %d", f.coord.timers.Len())
	}
	if f.coord.CurrentTarget() != (Target{}) {
		t.Error("Expected target cleared")
	}
	if len(f.recorder.outcomes) != 1 {
		t.Errorf("Expected only the arrival outcome, got %d", len(f.recorder.outcomes))
	}
	if f.metric(status.KeySceneRestores) != 1 {
		t.Errorf("Expected 1 scene restore, got %d", f.metric(status.KeySceneRestores))
	}

	// Departing again is a logged no-op
	f.coord.ReturnToOrbit()
	if len(f.director.restores) != 1 {
		t.Error("Expected no second restore")
	}
}

// TestNilRecorder runs a full flight and an abort without a journal.
func TestNilRecorder(t *testing.T) {
	f := newFixture()
	f.coord.recorder = nil

	f.runTo(t, PhaseContent)
	if f.coord.CurrentPhase() != PhaseContent {
		t.Fatal("Expected arrival without a recorder")
	}
	f.coord.ReturnToOrbit()

	f.runTo(t, PhaseHyperspace)
	f.coord.Cancel()
	if f.coord.CurrentPhase() != PhaseIdle {
		t.Error("Expected cancel without a recorder")
	}
}

// TestSecondFlightAfterReturn checks that state fully recycles.
func TestSecondFlightAfterReturn(t *testing.T) {
	f := newFixture()
	f.runTo(t, PhaseContent)
	firstID := f.recorder.outcomes[0].AttemptID
	f.coord.ReturnToOrbit()

	f.runTo(t, PhaseContent)
	if len(f.recorder.outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes after 2 flights, got %d", len(f.recorder.outcomes))
	}
	if f.recorder.outcomes[1].AttemptID == firstID {
		t.Error("Expected a fresh attempt id for the second flight")
	}
	if len(f.source.requests) != 2 {
		t.Errorf("Expected one content fetch per arrival, got %d", len(f.source.requests))
	}
	if f.metric(status.KeyTravelArrivals) != 2 {
		t.Errorf("Expected 2 arrivals, got %d", f.metric(status.KeyTravelArrivals))
	}
}

func TestHandleEventRouting(t *testing.T) {
	f := newFixture()
	now := f.clock.Now()

	f.coord.HandleEvent(now, events.Event{
		Type: events.EventSelectRequest,
		Payload: &events.SelectRequestPayload{
			SectionID:   "projects",
			Name:        "Forge",
			Description: "Things built in the void",
		},
	})
	if f.coord.CurrentPhase() != PhaseConfirming {
		t.Fatalf("Expected Confirming after select event, got %s", f.coord.CurrentPhase())
	}
	if f.coord.CurrentTarget().Name != "Forge" {
		t.Errorf("Expected target from payload, got %+v", f.coord.CurrentTarget())
	}

	f.coord.HandleEvent(now, events.Event{Type: events.EventTravelConfirm})
	if f.coord.CurrentPhase() != PhaseFading {
		t.Fatalf("Expected Fading after confirm event, got %s", f.coord.CurrentPhase())
	}

	f.coord.HandleEvent(now, events.Event{
		Type:    events.EventNarrationFinished,
		Payload: &events.NarrationFinishedPayload{SectionID: "projects", Simulated: true},
	})
	if f.coord.CurrentPhase() != PhaseFading {
		t.Error("Expected narration event to not change phase")
	}

	f.coord.HandleEvent(now, events.Event{Type: events.EventEmergencyReturn})
	if f.coord.CurrentPhase() != PhaseIdle {
		t.Fatalf("Expected Idle after emergency event, got %s", f.coord.CurrentPhase())
	}

	// Malformed payload is dropped, not acted on
	f.coord.HandleEvent(now, events.Event{Type: events.EventSelectRequest, Payload: "bogus"})
	if f.coord.CurrentPhase() != PhaseIdle {
		t.Error("Expected malformed select payload to be ignored")
	}

	types := f.coord.EventTypes()
	if len(types) != 6 {
		t.Errorf("Expected 6 handled event types, got %d", len(types))
	}
}
