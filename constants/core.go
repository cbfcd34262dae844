package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
