package fuzzynet

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// Consumer receives the dispatched output of an output transition.
// Consume is called synchronously from the Executor's finish-fire
// step; the engine hands each subscriber its own token, so a Consumer
// that needs to retain state across calls owns its own synchronization.
type Consumer interface {
	Consume(fuzzy.Token)
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

// Dispatch invokes every subscriber of t with tok, in registration
// order. It is a no-op if t has no subscribers.
func (m *EventManager) Dispatch(t int, tok fuzzy.Token) {
	for _, c := range m.handlers[t] {
		c.Consume(tok)
	}
}
