package status

import (
	"sort"
	"sync"
)

// MetricMap holds named metrics of one atomic type. Get hands out
// stable pointers, so subsystems look a key up once and update the
// metric lock-free afterwards; the mutex only guards registration.
type MetricMap[T any] struct {
	mu      sync.RWMutex
	metrics map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{metrics: make(map[string]*T)}
}

// Get returns the pointer registered under key, allocating a zero
// metric on first use. The returned pointer never changes for a key.
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.metrics[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another caller may have registered the key between locks
	if ptr, ok := m.metrics[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.metrics[key] = ptr
	return ptr
}

// Range calls fn for every metric in ascending key order. The status
// overlay depends on the ordering staying deterministic across frames.
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.metrics))
	for k := range m.metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.metrics[k])
	}
}

// Count returns the number of registered keys.
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metrics)
}
