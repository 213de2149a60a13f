package scalarnet

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// Consumer receives the dispatched output of an output transition.
type Consumer interface {
	Consume(fuzzy.Scalar)
}

// EventManager maps output transition ids to their ordered list of
// subscribers.
type EventManager struct {
	handlers map[int][]Consumer
}

// NewEventManager returns an empty EventManager.
func NewEventManager() *EventManager {
	return &EventManager{handlers: make(map[int][]Consumer)}
}

// Subscribe registers c to receive tokens dispatched by transition t.
func (m *EventManager) Subscribe(t int, c Consumer) {
	m.handlers[t] = append(m.handlers[t], c)
}

// Dispatch invokes every subscriber of t with val, in registration
// order. It is a no-op if t has no subscribers.
func (m *EventManager) Dispatch(t int, val fuzzy.Scalar) {
	for _, c := range m.handlers[t] {
		c.Consume(val)
	}
}
