// Package reveal decides when a page section has scrolled into view.
//
// A Controller owns one section's "has entered view" flag. The flag starts
// false, flips to true the first time the section's observer reports an
// entry, and never goes back. Observers are anything that can call a
// function when a region enters the viewport: the browser client backs them
// with IntersectionObserver, tests and the trace command use a Field.
package reveal

import (
	"sync"
	"sync/atomic"
)

// Observer delivers viewport-entry notifications for a single region.
// Calling the returned function stops delivery; it must be safe to call more
// than once.
type Observer interface {
	Subscribe(onEnter func()) (unsubscribe func())
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(onEnter func()) func()

// Subscribe calls f.
func (f ObserverFunc) Subscribe(onEnter func()) func() { return f(onEnter) }

// Controller tracks whether a section has entered view.
type Controller struct {
	inView   atomic.Bool
	onReveal func()
	revealed chan struct{}

	mu          sync.Mutex
	unsubscribe func()
}

// New subscribes to obs and returns the section's controller. onReveal, if
// non-nil, runs once when the section first enters view.
func New(obs Observer, onReveal func()) *Controller {
	c := &Controller{
		onReveal: onReveal,
		revealed: make(chan struct{}),
	}
	unsub := obs.Subscribe(c.enter)

	c.mu.Lock()
	if c.inView.Load() {
		// Entered during Subscribe; nothing left to observe.
		c.mu.Unlock()
		unsub()
		return c
	}
	c.unsubscribe = unsub
	c.mu.Unlock()
	return c
}

// InView reports whether the section has ever entered view.
func (c *Controller) InView() bool {
	return c.inView.Load()
}

// Revealed is closed once the section enters view.
func (c *Controller) Revealed() <-chan struct{} {
	return c.revealed
}

// Close stops observing. A controller that already revealed keeps reporting
// true.
func (c *Controller) Close() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (c *Controller) enter() {
	if !c.inView.CompareAndSwap(false, true) {
		return
	}
	close(c.revealed)

	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
	if c.onReveal != nil {
		c.onReveal()
	}
}
