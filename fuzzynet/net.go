package fuzzynet

import (
	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

type place struct {
	isInput bool
	initial fuzzy.Token
	after   []int // transitions consuming this place
}

type transition struct {
	delay    int
	isOutput bool
	table    tables.FuzzyTable
	before   []int // places feeding this transition
	after    []int // places this transition deposits into
}

// Net is the immutable, read-only fuzzy-token net graph produced by
// Builder.Build. Places and transitions are addressed by contiguous
// 0-based integer ids assigned in registration order.
type Net struct {
	places      []place
	transitions []transition
	weights     map[[2]int]float64 // (place, transition) -> arc weight
}

// PlaceCount returns the number of places in the net.
func (n *Net) PlaceCount() int { return len(n.places) }

// TransitionCount returns the number of transitions in the net.
func (n *Net) TransitionCount() int { return len(n.transitions) }

// IsInputPlace reports whether place p is externally fed.
func (n *Net) IsInputPlace(p int) bool { return n.places[p].isInput }

// IsOutputTransition reports whether transition t dispatches to
// subscribers instead of depositing into places.
func (n *Net) IsOutputTransition(t int) bool { return n.transitions[t].isOutput }

// Delay returns the tick delay of transition t.
func (n *Net) Delay(t int) int { return n.transitions[t].delay }

// Table returns the rule table of transition t.
func (n *Net) Table(t int) tables.FuzzyTable { return n.transitions[t].table }

// InitialMarking returns the initial token of place p.
func (n *Net) InitialMarking(p int) fuzzy.Token { return n.places[p].initial }

// PlacesBefore returns the places feeding transition t, in arc
// insertion order.
func (n *Net) PlacesBefore(t int) []int { return n.transitions[t].before }

// PlacesAfter returns the places transition t deposits into, in arc
// insertion order.
func (n *Net) PlacesAfter(t int) []int { return n.transitions[t].after }

// TransitionsAfter returns the transitions fed by place p.
func (n *Net) TransitionsAfter(p int) []int { return n.places[p].after }

// ArcWeight returns the weight of the place->transition arc (p, t);
// 1.0 if the arc does not exist (callers only query arcs that were
// connected, per PlacesBefore).
func (n *Net) ArcWeight(p, t int) float64 {
	if w, ok := n.weights[[2]int{p, t}]; ok {
		return w
	}
	return 1.0
}
