package events

import (
	"sync/atomic"

	"github.com/voidlight/starfolio/constants"
)

// EventQueue is a lock-free MPSC ring buffer. Producers are the
// terminal poll goroutine and audio completion callbacks; the sole
// consumer is the main loop.
//
//   - Push reserves a slot by CAS on tail, any goroutine may call it
//   - Consume runs on the main loop only
//   - A published flag per slot keeps half-written events invisible
//   - When full, the oldest unread events are overwritten
type EventQueue struct {
	events    [constants.EventQueueSize]Event
	published [constants.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewEventQueue() *EventQueue {
	q := &EventQueue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push enqueues an event. Safe for concurrent producers, O(1) amortized.
func (q *EventQueue) Push(event Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constants.EventBufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Stops early at the first slot whose writer has not published yet;
// that event and everything behind it arrives on the next call.
func (q *EventQueue) Consume() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > constants.EventQueueSize {
			available = constants.EventQueueSize
			currentHead = currentTail - constants.EventQueueSize
		}

		batch := make([]Event, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & constants.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			batch = append(batch, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(batch))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(batch) == 0 {
				return nil
			}
			return batch
		}
	}
}
