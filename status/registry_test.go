package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()

	first := r.Ints.Get(KeyTravelAttempts)
	first.Add(3)

	second := r.Ints.Get(KeyTravelAttempts)
	if first != second {
		t.Errorf("Expected cached pointer on second Get")
	}
	if second.Load() != 3 {
		t.Errorf("Expected counter value 3, got %d", second.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyTravelArrivals).Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyTravelArrivals).Load(); got != 16 {
		t.Errorf("Expected 16 increments, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected single registered key, got %d", r.Ints.Count())
	}
}

func TestMetricMapRangeSortedOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("travel.cancels").Store(2)
	r.Ints.Get("audio.fallbacks").Store(1)
	r.Ints.Get("journal.entries").Store(5)

	var keys []string
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{"audio.fallbacks", "journal.entries", "travel.cancels"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected key %q at index %d, got %q", want[i], i, keys[i])
		}
	}
}

func TestAtomicStringTruncation(t *testing.T) {
	var s AtomicString

	if s.Load() != "" {
		t.Errorf("Expected zero value to load empty string, got %q", s.Load())
	}

	s.Store("andromeda-gamma-seven-outpost")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected truncation to %d chars, got %d (%q)", MaxStringLen, len(got), got)
	}

	s.Store("orbit")
	if s.Load() != "orbit" {
		t.Errorf("Expected 'orbit', got %q", s.Load())
	}
}

func TestRegistryTotalCount(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTravelAttempts)
	r.Ints.Get(KeyTravelArrivals)
	r.Bools.Get(KeyAudioMuted)
	r.Strings.Get(KeyTravelLastDestination)

	if got := r.TotalCount(); got != 4 {
		t.Errorf("Expected 4 total metrics, got %d", got)
	}
}
