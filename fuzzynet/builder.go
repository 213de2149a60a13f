package fuzzynet

import (
	"errors"
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

// Sentinel errors returned by Builder methods and Build.
var (
	// ErrUnknownPlace indicates a place id outside the registered range.
	ErrUnknownPlace = errors.New("fuzzynet: unknown place")

	// ErrUnknownTransition indicates a transition id outside the
	// registered range.
	ErrUnknownTransition = errors.New("fuzzynet: unknown transition")

	// ErrOutputTransitionShape indicates add_output_transition was
	// called with a table that is not 1x1.
	ErrOutputTransitionShape = errors.New("fuzzynet: output transition requires a 1x1 table")

	// ErrArityMismatch indicates a transition's wired arc count does
	// not match its table's declared arity at Build time.
	ErrArityMismatch = errors.New("fuzzynet: transition arity does not match wired arcs")
)

// Builder accumulates places, transitions, arcs, initial markings and
// subscribers, then yields an immutable Net plus a mutable
// EventManager. The Builder is consumed by Build.
type Builder struct {
	places      []place
	transitions []transition
	weights     map[[2]int]float64
	events      *EventManager
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		weights: make(map[[2]int]float64),
		events:  NewEventManager(),
	}
}

// AddPlace registers a new internal place and returns its id.
func (b *Builder) AddPlace() int {
	b.places = append(b.places, place{initial: fuzzy.Phi()})
	return len(b.places) - 1
}

// AddInputPlace registers a new externally-fed place and returns its id.
func (b *Builder) AddInputPlace() int {
	b.places = append(b.places, place{isInput: true, initial: fuzzy.Phi()})
	return len(b.places) - 1
}

// AddTransition registers a new internal transition with the given
// delay and rule table, and returns its id.
func (b *Builder) AddTransition(delay int, table tables.FuzzyTable) int {
	b.transitions = append(b.transitions, transition{delay: delay, table: table})
	return len(b.transitions) - 1
}

// AddOutputTransition registers a new output transition. table must be
// a 1x1 shape (ErrOutputTransitionShape otherwise), since an output
// transition dispatches a single token rather than depositing into
// places.
func (b *Builder) AddOutputTransition(table tables.FuzzyTable) (int, error) {
	if table.Shape() != tables.ShapeOneByOne {
		return 0, fmt.Errorf("%w: got %s", ErrOutputTransitionShape, table.Shape())
	}
	b.transitions = append(b.transitions, transition{table: table, isOutput: true})
	return len(b.transitions) - 1, nil
}

// Connect wires a place->transition arc with the given weight (used
// only by fuzzy nets; default 1.0 when unsure).
func (b *Builder) Connect(p, t int, weight float64) error {
	if p < 0 || p >= len(b.places) {
		return fmt.Errorf("%w: place %d", ErrUnknownPlace, p)
	}
	if t < 0 || t >= len(b.transitions) {
		return fmt.Errorf("%w: transition %d", ErrUnknownTransition, t)
	}
	b.transitions[t].before = append(b.transitions[t].before, p)
	b.places[p].after = append(b.places[p].after, t)
	b.weights[[2]int{p, t}] = weight
	return nil
}

// ConnectOut wires a transition->place arc.
func (b *Builder) ConnectOut(t, p int) error {
	if t < 0 || t >= len(b.transitions) {
		return fmt.Errorf("%w: transition %d", ErrUnknownTransition, t)
	}
	if p < 0 || p >= len(b.places) {
		return fmt.Errorf("%w: place %d", ErrUnknownPlace, p)
	}
	b.transitions[t].after = append(b.transitions[t].after, p)
	return nil
}

// SetInitialMarking sets the initial token of place p.
func (b *Builder) SetInitialMarking(p int, tok fuzzy.Token) error {
	if p < 0 || p >= len(b.places) {
		return fmt.Errorf("%w: place %d", ErrUnknownPlace, p)
	}
	b.places[p].initial = tok
	return nil
}

// Subscribe registers c to receive tokens dispatched by output
// transition t.
func (b *Builder) Subscribe(t int, c Consumer) error {
	if t < 0 || t >= len(b.transitions) {
		return fmt.Errorf("%w: transition %d", ErrUnknownTransition, t)
	}
	b.events.Subscribe(t, c)
	return nil
}

// Build validates arc/table arity and yields the immutable Net plus
// its EventManager. The Builder must not be used afterward.
func (b *Builder) Build() (*Net, *EventManager, error) {
	for t, tr := range b.transitions {
		ins, outs := tr.table.Shape().Arity()
		if len(tr.before) != ins {
			return nil, nil, fmt.Errorf("%w: transition %d wants %d inputs, has %d", ErrArityMismatch, t, ins, len(tr.before))
		}
		if tr.isOutput {
			continue
		}
		if len(tr.after) != outs {
			return nil, nil, fmt.Errorf("%w: transition %d wants %d outputs, has %d", ErrArityMismatch, t, outs, len(tr.after))
		}
	}
	net := &Net{places: b.places, transitions: b.transitions, weights: b.weights}
	return net, b.events, nil
}
