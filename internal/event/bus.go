package event

import "sync"

// Bus fans announcements out to subscribers synchronously, in subscription
// order, on the caller's goroutine. A handler may publish further
// announcements; the handler list is snapshotted per publish so re-entrant
// subscription cannot corrupt an in-flight delivery.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	fn func(Announcement)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler and returns a function that removes it.
func (b *Bus) Subscribe(fn func(Announcement)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.handlers {
			if s.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Announce implements Announcer by delivering to every subscriber.
func (b *Bus) Announce(a Announcement) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(a)
	}
}
