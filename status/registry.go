package status

import "sync/atomic"

// Well-known metric keys. Subsystems cache the pointers during init
// and write to the atomics directly on their hot paths.
const (
	KeyTravelAttempts        = "travel.attempts"
	KeyTravelArrivals        = "travel.arrivals"
	KeyTravelCancels         = "travel.cancels"
	KeyTravelValidationRetry = "travel.validation_retries"
	KeyTravelLastDestination = "travel.last_destination"
	KeyAudioFallbacks        = "audio.fallbacks"
	KeyAudioMuted            = "audio.muted"
	KeyJournalEntries        = "journal.entries"
	KeyJournalWriteErrors    = "journal.write_errors"
	KeySceneRestores         = "scene.snapshot_restores"
	KeyFramesRendered        = "ui.frames_rendered"
)

// Registry is the central metrics facade
// Subsystems cache pointers during init; loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}
