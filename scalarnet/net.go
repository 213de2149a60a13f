package scalarnet

import (
	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scaler"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

type place struct {
	isInput bool
	scale   scaler.Triangle
	initial fuzzy.Scalar
	after   []int
}

type transition struct {
	delay    int
	isOutput bool
	table    tables.ScalarTable
	before   []int
	after    []int
}

// Net is the immutable, read-only scalar-token net graph produced by
// Builder.Build.
type Net struct {
	places      []place
	transitions []transition
}

func (n *Net) PlaceCount() int      { return len(n.places) }
func (n *Net) TransitionCount() int { return len(n.transitions) }

func (n *Net) IsInputPlace(p int) bool      { return n.places[p].isInput }
func (n *Net) IsOutputTransition(t int) bool { return n.transitions[t].isOutput }
func (n *Net) Delay(t int) int              { return n.transitions[t].delay }
func (n *Net) Table(t int) tables.ScalarTable { return n.transitions[t].table }
func (n *Net) InitialMarking(p int) fuzzy.Scalar { return n.places[p].initial }
func (n *Net) Scale(p int) scaler.Triangle  { return n.places[p].scale }

func (n *Net) PlacesBefore(t int) []int     { return n.transitions[t].before }
func (n *Net) PlacesAfter(t int) []int      { return n.transitions[t].after }
func (n *Net) TransitionsAfter(p int) []int { return n.places[p].after }

// Scalers returns the per-place scaler.Triangle for each place id in
// places, in order — a convenience for the engine's Execute/IsExecutable
// calls which take a slice of scalers matching a slice of tokens.
func (n *Net) Scalers(places []int) []scaler.Triangle {
	out := make([]scaler.Triangle, len(places))
	for i, p := range places {
		out[i] = n.places[p].scale
	}
	return out
}
