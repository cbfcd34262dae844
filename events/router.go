package events

// Handler receives routed events under a context of type T
// Subsystems declare their event types once and are called back
// synchronously from the dispatch phase of the main loop
type Handler[T any] interface {
	// HandleEvent processes one event
	HandleEvent(ctx T, event Event)

	// EventTypes lists the types this handler registers for
	EventTypes() []EventType
}

// Router fans consumed events out to registered handlers
//
//   - Dispatch runs on the main loop only
//   - Several handlers may register for one event type
//   - Handlers run in registration order
//   - Context T is the loop timestamp here
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router draining the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register subscribes a handler to each of its declared types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue and routes every event in FIFO order
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HasHandlers reports whether any handler is registered for t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
