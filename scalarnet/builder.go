package scalarnet

import (
	"errors"
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scaler"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

// Sentinel errors returned by Builder methods and Build.
var (
	ErrUnknownPlace         = errors.New("scalarnet: unknown place")
	ErrUnknownTransition    = errors.New("scalarnet: unknown transition")
	ErrOutputTransitionShape = errors.New("scalarnet: output transition requires a 1x1 table")
	ErrArityMismatch        = errors.New("scalarnet: transition arity does not match wired arcs")
	ErrBadScale             = errors.New("scalarnet: place scale must be positive")
)

// Builder accumulates places, transitions, arcs, initial markings and
// subscribers, then yields an immutable Net plus a mutable
// EventManager. The Builder is consumed by Build.
type Builder struct {
	places      []place
	transitions []transition
	events      *EventManager
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{events: NewEventManager()}
}

// AddPlace registers a new internal place scaled over [-scale, scale]
// and returns its id. scale must be positive.
func (b *Builder) AddPlace(scale float64) (int, error) {
	tri, err := triangleFromScale(scale)
	if err != nil {
		return 0, err
	}
	b.places = append(b.places, place{scale: tri, initial: fuzzy.ScalarPhi()})
	return len(b.places) - 1, nil
}

// AddInputPlace registers a new externally-fed place scaled over
// [-scale, scale] and returns its id.
func (b *Builder) AddInputPlace(scale float64) (int, error) {
	tri, err := triangleFromScale(scale)
	if err != nil {
		return 0, err
	}
	b.places = append(b.places, place{isInput: true, scale: tri, initial: fuzzy.ScalarPhi()})
	return len(b.places) - 1, nil
}

func triangleFromScale(scale float64) (scaler.Triangle, error) {
	if scale <= 0 {
		return scaler.Triangle{}, fmt.Errorf("%w: got %v", ErrBadScale, scale)
	}
	return scaler.NewFromMinMax(-scale, scale)
}

// AddTransition registers a new internal transition with the given
// delay and scalar rule table, and returns its id.
func (b *Builder) AddTransition(delay int, table tables.ScalarTable) int {
	b.transitions = append(b.transitions, transition{delay: delay, table: table})
	return len(b.transitions) - 1
}

// AddOutputTransition registers a new output transition. table must be
// a 1x1 shape.
func (b *Builder) AddOutputTransition(table tables.ScalarTable) (int, error) {
	if table.Shape() != tables.ShapeOneByOne {
		return 0, fmt.Errorf("%w: got %s", ErrOutputTransitionShape, table.Shape())
	}
	b.transitions = append(b.transitions, transition{table: table, isOutput: true})
	return len(b.transitions) - 1, nil
}

// Connect wires an unweighted place->transition arc.
func (b *Builder) Connect(p, t int) error {
	if p < 0 || p >= len(b.places) {
		return fmt.Errorf("%w: place %d", ErrUnknownPlace, p)
	}
	if t < 0 || t >= len(b.transitions) {
		return fmt.Errorf("%w: transition %d", ErrUnknownTransition, t)
	}
	b.transitions[t].before = append(b.transitions[t].before, p)
	b.places[p].after = append(b.places[p].after, t)
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

// SetInitialMarking sets the initial scalar of place p.
func (b *Builder) SetInitialMarking(p int, val fuzzy.Scalar) error {
	if p < 0 || p >= len(b.places) {
		return fmt.Errorf("%w: place %d", ErrUnknownPlace, p)
	}
	b.places[p].initial = val
	return nil
}

// Subscribe registers c to receive values dispatched by output
// transition t.
func (b *Builder) Subscribe(t int, c Consumer) error {
	if t < 0 || t >= len(b.transitions) {
		return fmt.Errorf("%w: transition %d", ErrUnknownTransition, t)
	}
	b.events.Subscribe(t, c)
	return nil
}

// Build validates arc/table arity and yields the immutable Net plus
// its EventManager.
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
	net := &Net{places: b.places, transitions: b.transitions}
	return net, b.events, nil
}
