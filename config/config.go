package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voidlight/starfolio/constants"
)

// Config is the full application configuration. Zero values are filled
// from defaults during Load, so a partial YAML file is fine.
type Config struct {
	ContentPath string       `yaml:"content_path"`
	JournalPath string       `yaml:"journal_path"`
	Audio       AudioConfig  `yaml:"audio"`
	Travel      TravelConfig `yaml:"travel"`
}

type AudioConfig struct {
	Disabled     bool   `yaml:"disabled"`
	NarrationDir string `yaml:"narration_dir"`

	// Volume is the master output level, 0 (exclusive) to 1.
	Volume float64 `yaml:"volume"`

	// FallbackMs is the simulated narration length used when no clip
	// exists for a destination.
	FallbackMs int `yaml:"fallback_ms"`
}

// TravelConfig holds the phase durations in milliseconds.
type TravelConfig struct {
	FadeMs       int `yaml:"fade_ms"`
	CockpitMs    int `yaml:"cockpit_ms"`
	HyperspaceMs int `yaml:"hyperspace_ms"`
	TransitionMs int `yaml:"transition_ms"`
	ApproachMs   int `yaml:"approach_ms"`
	ArrivedMs    int `yaml:"arrived_ms"`
	ValidationMs int `yaml:"validation_ms"`
}

// Load reads path (optional), fills defaults, applies STARFOLIO_*
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
	}
	cfg.applyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		JournalPath: "starfolio.db",
		Audio: AudioConfig{
			Volume:     constants.AudioMasterVolume,
			FallbackMs: int(constants.NarrationFallbackDuration / time.Millisecond),
		},
		Travel: TravelConfig{
			FadeMs:       int(constants.FadeDuration / time.Millisecond),
			CockpitMs:    int(constants.CockpitDuration / time.Millisecond),
			HyperspaceMs: int(constants.HyperspaceDuration / time.Millisecond),
			TransitionMs: int(constants.TransitionDuration / time.Millisecond),
			ApproachMs:   int(constants.ApproachDuration / time.Millisecond),
			ArrivedMs:    int(constants.ArrivedDuration / time.Millisecond),
			ValidationMs: int(constants.ValidationDelay / time.Millisecond),
		},
	}
}

// applyEnv layers environment overrides on top of file values.
// STARFOLIO_CONTENT points at a CV JSON file, STARFOLIO_JOURNAL at the
// flight journal database, STARFOLIO_NO_AUDIO=1 forces silent mode, and
// STARFOLIO_VOLUME sets the master level on a 0..1 scale.
func (c *Config) applyEnv() {
	if v := os.Getenv("STARFOLIO_CONTENT"); v != "" {
		c.ContentPath = v
	}
	if v := os.Getenv("STARFOLIO_JOURNAL"); v != "" {
		c.JournalPath = v
	}
	if v := os.Getenv("STARFOLIO_NO_AUDIO"); v == "1" || strings.EqualFold(v, "true") {
		c.Audio.Disabled = true
	}
	if v := os.Getenv("STARFOLIO_VOLUME"); v != "" {
		if vol, err := strconv.ParseFloat(v, 64); err == nil {
			c.Audio.Volume = vol
		}
	}
}

// Normalize replaces non-positive durations with defaults.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	def := defaults()
	if c.Audio.Volume <= 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
	}
	if c.Audio.FallbackMs <= 0 {
		c.Audio.FallbackMs = def.Audio.FallbackMs
	}
	if c.Travel.FadeMs <= 0 {
		c.Travel.FadeMs = def.Travel.FadeMs
	}
	if c.Travel.CockpitMs <= 0 {
		c.Travel.CockpitMs = def.Travel.CockpitMs
	}
	if c.Travel.HyperspaceMs <= 0 {
		c.Travel.HyperspaceMs = def.Travel.HyperspaceMs
	}
	if c.Travel.TransitionMs <= 0 {
		c.Travel.TransitionMs = def.Travel.TransitionMs
	}
	if c.Travel.ApproachMs <= 0 {
		c.Travel.ApproachMs = def.Travel.ApproachMs
	}
	if c.Travel.ArrivedMs <= 0 {
		c.Travel.ArrivedMs = def.Travel.ArrivedMs
	}
	if c.Travel.ValidationMs <= 0 {
		c.Travel.ValidationMs = def.Travel.ValidationMs
	}
	if strings.TrimSpace(c.JournalPath) == "" {
		c.JournalPath = def.JournalPath
	}
}

func (c Config) Validate() error {
	// Validation must land while its phase is still running, or the
	// check would race the advance timer.
	if c.Travel.ValidationMs >= c.Travel.HyperspaceMs {
		return fmt.Errorf("validation_ms %d must be < hyperspace_ms %d",
			c.Travel.ValidationMs, c.Travel.HyperspaceMs)
	}
	if c.Travel.ValidationMs >= c.Travel.ApproachMs {
		return fmt.Errorf("validation_ms %d must be < approach_ms %d",
			c.Travel.ValidationMs, c.Travel.ApproachMs)
	}
	return nil
}

// Durations converts the millisecond fields for the travel coordinator.
func (c TravelConfig) Durations() Durations {
	return Durations{
		Fade:       time.Duration(c.FadeMs) * time.Millisecond,
		Cockpit:    time.Duration(c.CockpitMs) * time.Millisecond,
		Hyperspace: time.Duration(c.HyperspaceMs) * time.Millisecond,
		Transition: time.Duration(c.TransitionMs) * time.Millisecond,
		Approach:   time.Duration(c.ApproachMs) * time.Millisecond,
		Arrived:    time.Duration(c.ArrivedMs) * time.Millisecond,
		Validation: time.Duration(c.ValidationMs) * time.Millisecond,
	}
}

// Durations are the phase lengths used by the travel coordinator.
type Durations struct {
	Fade       time.Duration
	Cockpit    time.Duration
	Hyperspace time.Duration
	Transition time.Duration
	Approach   time.Duration
	Arrived    time.Duration
	Validation time.Duration
}

// Fallback returns the simulated narration duration.
func (c AudioConfig) Fallback() time.Duration {
	return time.Duration(c.FallbackMs) * time.Millisecond
}
