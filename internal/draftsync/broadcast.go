package draftsync

import "sync"

// Broadcaster delivers save-now signals to any number of listeners. Zero
// listeners is fine; a broadcast with nobody subscribed is a no-op.
type Broadcaster struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func()
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: map[int]func(){}}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// twice is harmless.
func (b *Broadcaster) Subscribe(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.listeners[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Broadcast invokes every subscribed listener.
func (b *Broadcaster) Broadcast() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// BindSaveSignal subscribes the controller's Flush to the broadcaster, so a
// save signal forces an immediate write. Returns the unsubscribe function.
func BindSaveSignal(b *Broadcaster, c *Controller) func() {
	return b.Subscribe(c.Flush)
}
