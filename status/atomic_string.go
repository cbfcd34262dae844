package status

import (
	"sync/atomic"
)

// MaxStringLen caps stored gauge text so overlay rows stay aligned
const MaxStringLen = 24

// AtomicString is a lock-free text gauge, used for values like the
// last travel destination. The zero value reads as an empty string.
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value, truncating anything past MaxStringLen
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
