package audio

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/engine"
	"github.com/voidlight/starfolio/events"
	"github.com/voidlight/starfolio/status"
)

// Session is one narration playback, real or simulated.
// Real sessions end when the clip's completion callback fires;
// simulated sessions end when Update passes EndsAt.
type Session struct {
	ID        uuid.UUID
	SectionID string
	Simulated bool
	StartedAt time.Time
	EndsAt    time.Time // Zero for real clips

	ctrl *beep.Ctrl
}

// Narrator owns the speaker and all cue/narration playback.
// Speaker init failure degrades to a silent mode where simulated
// sessions still complete on schedule, so travel never stalls on audio.
type Narrator struct {
	cfg          *AudioConfig
	clock        engine.TimeProvider
	queue        *events.EventQueue
	registry     *status.Registry
	narrationDir string
	fallback     time.Duration

	disabled    atomic.Bool
	muted       atomic.Bool
	initialized bool
	mixer       *beep.Mixer
	master      *effects.Volume

	mu      sync.Mutex
	session *Session
}

// NewNarrator creates a narrator. Initialize must be called before use.
func NewNarrator(cfg *AudioConfig, clock engine.TimeProvider, queue *events.EventQueue,
	registry *status.Registry, narrationDir string, fallback time.Duration) *Narrator {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if fallback <= 0 {
		fallback = constants.NarrationFallbackDuration
	}
	return &Narrator{
		cfg:          cfg,
		clock:        clock,
		queue:        queue,
		registry:     registry,
		narrationDir: narrationDir,
		fallback:     fallback,
		mixer:        &beep.Mixer{},
	}
}

// Initialize opens the speaker. Failure is not an error: the narrator
// switches to silent mode and every later call degrades gracefully.
func (n *Narrator) Initialize() error {
	if !n.cfg.Enabled {
		n.disabled.Store(true)
		return nil
	}

	rate := beep.SampleRate(n.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferLength)); err != nil {
		log.Printf("Speaker init failed (%v), audio disabled", err)
		n.disabled.Store(true)
		return nil
	}

	// Volume is an exponent on Base, so log2 maps the linear 0..1
	// setting onto the expected gain.
	n.master = &effects.Volume{
		Streamer: n.mixer,
		Base:     2,
		Volume:   math.Log2(n.cfg.MasterVolume),
		Silent:   n.cfg.MasterVolume <= 0,
	}
	speaker.Play(n.master)
	n.initialized = true
	return nil
}

// Close shuts the speaker down.
func (n *Narrator) Close() {
	n.StopNarration()
	if n.initialized {
		speaker.Close()
		n.initialized = false
	}
}

// IsDisabled returns true if no audio backend is available
func (n *Narrator) IsDisabled() bool {
	return n.disabled.Load()
}

// IsMuted returns current mute state
func (n *Narrator) IsMuted() bool {
	return n.muted.Load()
}

// ToggleMute flips the mute state and returns true if audio is now audible.
// Mute silences output only; running sessions keep their schedule.
func (n *Narrator) ToggleMute() bool {
	newMute := !n.muted.Load()
	n.muted.Store(newMute)
	if n.registry != nil {
		n.registry.Bools.Get(status.KeyAudioMuted).Store(newMute)
	}
	if n.initialized {
		speaker.Lock()
		n.master.Silent = newMute
		speaker.Unlock()
	}
	return !newMute
}

// PlayCue mixes in a short generated cue. Returns false when nothing
// was queued (disabled or muted).
func (n *Narrator) PlayCue(cue CueType) bool {
	if n.disabled.Load() || n.muted.Load() || !n.initialized {
		return false
	}
	streamer := GetCue(cue, n.cfg)
	if streamer == nil {
		return false
	}
	speaker.Lock()
	n.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// PlayNarration starts a narration session for the destination,
// replacing any running session. When a clip file exists it plays and
// the completion callback reports the end; otherwise a simulated
// session runs for the fallback duration under an ambient bed.
func (n *Narrator) PlayNarration(sectionID string) *Session {
	n.StopNarration()

	now := n.clock.Now()
	session := &Session{
		ID:        uuid.New(),
		SectionID: sectionID,
		StartedAt: now,
	}

	if n.initialized && !n.disabled.Load() {
		if clip, closeClip, err := n.loadClip(sectionID); err == nil {
			id := session.ID
			done := beep.Callback(func() {
				closeClip()
				n.queue.Push(events.Event{
					Type: events.EventNarrationFinished,
					Payload: &events.NarrationFinishedPayload{
						SessionID: id,
						SectionID: sectionID,
						Simulated: false,
					},
					Timestamp: n.clock.Now(),
				})
			})
			session.ctrl = &beep.Ctrl{Streamer: beep.Seq(clip, done)}
			speaker.Lock()
			n.mixer.Add(session.ctrl)
			speaker.Unlock()

			n.mu.Lock()
			n.session = session
			n.mu.Unlock()
			return session
		}
	}

	// Simulated fallback: fixed duration, optional ambient bed
	session.Simulated = true
	session.EndsAt = now.Add(n.fallback)
	if n.registry != nil {
		n.registry.Ints.Get(status.KeyAudioFallbacks).Add(1)
	}
	log.Printf("No narration clip for %q, simulating %v session", sectionID, n.fallback)

	if n.initialized && !n.disabled.Load() {
		bed := CreateNarrationBed(n.cfg)
		session.ctrl = &beep.Ctrl{Streamer: bed}
		speaker.Lock()
		n.mixer.Add(session.ctrl)
		speaker.Unlock()
	}

	n.mu.Lock()
	n.session = session
	n.mu.Unlock()
	return session
}

// StopNarration halts the current session without reporting completion.
// Safe to call with no session running.
func (n *Narrator) StopNarration() {
	n.mu.Lock()
	session := n.session
	n.session = nil
	n.mu.Unlock()

	if session == nil || session.ctrl == nil {
		return
	}
	if n.initialized {
		speaker.Lock()
		session.ctrl.Streamer = nil // Mixer drops drained streamers
		speaker.Unlock()
	}
}

// Update finishes simulated sessions whose deadline has passed.
// Called every frame from the main loop.
func (n *Narrator) Update(now time.Time) {
	n.mu.Lock()
	session := n.session
	if session == nil || !session.Simulated || now.Before(session.EndsAt) {
		n.mu.Unlock()
		return
	}
	n.session = nil
	n.mu.Unlock()

	if session.ctrl != nil && n.initialized {
		speaker.Lock()
		session.ctrl.Streamer = nil
		speaker.Unlock()
	}

	n.queue.Push(events.Event{
		Type: events.EventNarrationFinished,
		Payload: &events.NarrationFinishedPayload{
			SessionID: session.ID,
			SectionID: session.SectionID,
			Simulated: true,
		},
		Timestamp: now,
	})
}

// Current returns the running session, or nil.
func (n *Narrator) Current() *Session {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session
}

// IsPlaying reports whether a narration session is running.
func (n *Narrator) IsPlaying() bool {
	return n.Current() != nil
}

// loadClip opens and decodes <narrationDir>/<sectionID>.wav,
// resampling to the speaker rate when needed. The returned close func
// must run once the clip drains.
func (n *Narrator) loadClip(sectionID string) (beep.Streamer, func(), error) {
	if n.narrationDir == "" {
		return nil, nil, ErrNoClip
	}
	path := filepath.Join(n.narrationDir, sectionID+".wav")
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ErrNoClip
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		log.Printf("Narration clip %s unreadable: %v", path, err)
		return nil, nil, ErrNoClip
	}
	closeClip := func() { streamer.Close() }

	rate := beep.SampleRate(n.cfg.SampleRate)
	if format.SampleRate != rate {
		return beep.Resample(4, format.SampleRate, rate, streamer), closeClip, nil
	}
	return streamer, closeClip, nil
}
