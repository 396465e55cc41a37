// Package event provides a small synchronous event dispatcher.
//
// Services fire named events; the kernel attaches listeners for metrics and
// the order queue:
//
//	d := event.NewDispatcher()
//	d.Listen("order.created", func(p any) { ... })
//	d.Fire("order.created", order)
package event

import (
	"sync"
)

// Handler is a function that receives an event payload.
type Handler func(payload any)

// Dispatcher routes fired events to their listeners. A nil *Dispatcher is
// valid and drops every event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: map[string][]Handler{}}
}

// Listen registers a handler for the given event name.
func (d *Dispatcher) Listen(event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func (d *Dispatcher) Fire(event string, payload any) {
	for _, h := range d.listeners(event) {
		h(payload)
	}
}

func (d *Dispatcher) listeners(event string) []Handler {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	hs := make([]Handler, len(d.handlers[event]))
	copy(hs, d.handlers[event])
	return hs
}
