package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/voidlight/starfolio/audio"
	"github.com/voidlight/starfolio/config"
	"github.com/voidlight/starfolio/constants"
	"github.com/voidlight/starfolio/content"
	"github.com/voidlight/starfolio/engine"
	"github.com/voidlight/starfolio/events"
	"github.com/voidlight/starfolio/input"
	"github.com/voidlight/starfolio/journal"
	"github.com/voidlight/starfolio/scene"
	"github.com/voidlight/starfolio/status"
	"github.com/voidlight/starfolio/travel"
	"github.com/voidlight/starfolio/tui"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML configuration file")
	contentFlag = flag.String("content", "", "Path to CV content JSON (overrides config)")
	journalFlag = flag.String("journal", "", "Path to flight journal database (overrides config)")
	muteFlag    = flag.Bool("mute", false, "Start with audio muted")
	noAudioFlag = flag.Bool("no-audio", false, "Run without audio output")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/starfolio.log")
)

// presenterBridge fills the coordinator's presenter slot before the
// view exists; the view needs the coordinator for its HUD, so it is
// constructed second and patched in here.
type presenterBridge struct {
	view *tui.View
}

func (p *presenterBridge) ShowContent(frag content.Fragment) { p.view.ShowContent(frag) }
func (p *presenterBridge) HideContent()                      { p.view.HideContent() }

// app handles the routed events that belong to the shell rather than
// to the travel coordinator or the overlay stack.
type app struct {
	screen   tcell.Screen
	orbit    *scene.Scene
	coord    *travel.Coordinator
	narrator *audio.Narrator
	quit     bool
}

// EventTypes registers the shell for cursor, resize, mute and quit events.
func (a *app) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCursorMove,
		events.EventMuteToggle,
		events.EventResize,
		events.EventQuit,
	}
}

// HandleEvent applies shell events on the main loop.
func (a *app) HandleEvent(now time.Time, event events.Event) {
	switch event.Type {
	case events.EventCursorMove:
		// Highlight is frozen while a flight owns the scene
		if payload, ok := event.Payload.(*events.CursorMovePayload); ok && a.coord.InteractionEnabled() {
			a.orbit.MoveCursor(payload.Delta)
		}
	case events.EventMuteToggle:
		a.narrator.ToggleMute()
	case events.EventResize:
		if payload, ok := event.Payload.(*events.ResizePayload); ok {
			a.orbit.Resize(payload.Width, payload.Height)
		}
		a.screen.Sync()
	case events.EventQuit:
		a.quit = true
	}
}

func main() {
	// Panic recovery: restore the terminal before anything prints
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARFOLIO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *contentFlag != "" {
		cfg.ContentPath = *contentFlag
	}
	if *journalFlag != "" {
		cfg.JournalPath = *journalFlag
	}
	if *noAudioFlag {
		cfg.Audio.Disabled = true
	}

	source, err := content.Load(cfg.ContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load content: %v\n", err)
		os.Exit(1)
	}

	clock := engine.NewMonotonicTimeProvider()
	queue := events.NewEventQueue()
	registry := status.NewRegistry()
	theme := tui.DefaultTheme()

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(theme.Fill)

	width, height := screen.Size()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	orbit := scene.NewScene(source.Sections(), rng, width, height)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.MasterVolume = cfg.Audio.Volume
	if cfg.Audio.Disabled {
		audioCfg.Enabled = false
	}
	narrator := audio.NewNarrator(audioCfg, clock, queue, registry,
		cfg.Audio.NarrationDir, cfg.Audio.Fallback())
	narrator.Initialize()
	defer narrator.Close()
	if *muteFlag {
		narrator.ToggleMute()
	}

	store, err := journal.Open(cfg.JournalPath, registry)
	if err != nil {
		log.Printf("Journal unavailable: %v (flights will not be recorded)", err)
	} else {
		defer store.Close()
	}

	gate := travel.NewConfirmation()
	presenter := &presenterBridge{}
	deps := travel.Deps{
		Clock:     clock,
		Director:  orbit,
		Effect:    orbit.Effect(),
		Source:    source,
		Narrator:  narrator,
		Presenter: presenter,
		Gate:      gate,
		Registry:  registry,
		Durations: cfg.Travel.Durations(),
	}
	if store != nil {
		deps.Recorder = store
	}
	coordinator := travel.NewCoordinator(deps)

	view := tui.NewView(theme, coordinator, gate, registry, store, narrator,
		source.Profile().Callsign, func() string {
			if p, ok := orbit.Selected(); ok {
				return p.Name
			}
			return ""
		})
	presenter.view = view

	handler := input.NewHandler(queue, clock, coordinator, gate, orbit, view)

	shell := &app{
		screen:   screen,
		orbit:    orbit,
		coord:    coordinator,
		narrator: narrator,
	}

	router := events.NewRouter[time.Time](queue)
	router.Register(coordinator)
	router.Register(view)
	router.Register(shell)

	// Terminal events feed the select loop through a channel so input
	// and the frame tick share one goroutine
	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()
	frames := registry.Ints.Get(status.KeyFramesRendered)

	log.Printf("Starfolio up: %d destinations, journal at %s", len(source.Sections()), cfg.JournalPath)

	for {
		select {
		case ev := <-eventChan:
			handler.HandleEvent(ev)
			// Keys apply immediately instead of waiting for the frame tick
			router.DispatchAll(clock.Now())
			if shell.quit {
				return
			}

		case <-ticker.C:
			now := clock.Now()
			coordinator.Update(now)
			narrator.Update(now)
			router.DispatchAll(now)
			if shell.quit {
				return
			}

			orbit.Update(now)
			screen.Clear()
			orbit.Draw(screen, now)
			view.Draw(screen)
			screen.Show()
			frames.Add(1)
		}
	}
}
