// Package draftsync coalesces rapid draft edits into periodic draft-store
// writes and fans out explicit save signals to interested listeners.
package draftsync

import (
	"context"
	"sync"
	"time"

	"formly.backend/pkg/draftstore"
)

// DefaultDebounce is the trailing-edge delay between the last edit and the
// persisted write.
const DefaultDebounce = 300 * time.Millisecond

// Controller debounces draft writes. Every Edit restarts the timer; only the
// state read after the delay elapses is written, so a burst of edits costs
// one write.
type Controller struct {
	store *draftstore.Store
	ns    string
	delay time.Duration
	read  func() interface{}

	mu    sync.Mutex
	timer *time.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay overrides the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// NewController creates a debounced writer for one namespace. read is called
// at write time to snapshot the current draft state.
func NewController(store *draftstore.Store, ns string, read func() interface{}, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		ns:    ns,
		delay: DefaultDebounce,
		read:  read,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Edit notes a state change and (re)arms the write timer.
func (c *Controller) Edit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.delay, c.write)
}

// Flush persists immediately, cancelling any pending timer. Call it on
// step transitions so navigation never races the debounce window.
func (c *Controller) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.write()
}

// Close cancels any pending write without persisting.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) write() {
	c.store.SaveJSON(context.Background(), c.ns, c.read())
}
