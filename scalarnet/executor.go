package scalarnet

import (
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scaler"
)

// defaultMaxIterations is the bounded fixed-point loop's iteration cap
// per tick; exceeding it is not an error, it simply defers any
// remaining cascade to the next tick.
const defaultMaxIterations = 40

// Option configures an Executor at construction.
type Option func(*Executor)

// WithMaxIterations overrides the fixed-point loop's iteration cap.
func WithMaxIterations(n int) Option {
	return func(e *Executor) { e.maxIterations = n }
}

// Executor owns the mutable per-tick state of a scalar-token net: place
// markings, transition delay counters, pending firing outputs, a
// precomputed firing order, and a candidate cache keyed by the coarse
// marking. It is not safe for concurrent use.
type Executor struct {
	net           *Net
	events        *EventManager
	placeState    []fuzzy.Scalar
	transState    []int
	transHolds    [][]fuzzy.Scalar
	order         []int
	cache         map[string][]int
	maxIterations int
}

// NewExecutor builds an Executor over net, initializing every place to
// its initial marking and precomputing the firing order.
func NewExecutor(net *Net, events *EventManager, opts ...Option) *Executor {
	e := &Executor{
		net:           net,
		events:        events,
		placeState:    make([]fuzzy.Scalar, net.PlaceCount()),
		transState:    make([]int, net.TransitionCount()),
		transHolds:    make([][]fuzzy.Scalar, net.TransitionCount()),
		cache:         make(map[string][]int),
		maxIterations: defaultMaxIterations,
	}
	for p := 0; p < net.PlaceCount(); p++ {
		e.placeState[p] = net.InitialMarking(p)
	}
	e.order = orderOfTransitions(net)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Marking returns the current scalar of place p, for inspection between
// ticks.
func (e *Executor) Marking(p int) fuzzy.Scalar { return e.placeState[p] }

// RunTick executes one tick: injects external inputs, advances delay
// counters (completing any firing whose counter reaches zero), then
// drives the fixed-point firing loop to quiescence or the iteration
// cap.
func (e *Executor) RunTick(inputs map[int]fuzzy.Scalar) {
	for p, val := range inputs {
		st := e.placeState[p]
		st.Unite(val)
		e.placeState[p] = st
	}
	e.advanceDelays()
	e.fireToFixedPoint()
}

func (e *Executor) advanceDelays() {
	for t := 0; t < e.net.TransitionCount(); t++ {
		if e.transState[t] == 0 {
			continue
		}
		if e.transState[t] == 1 {
			e.finishFire(t)
		}
		e.transState[t]--
	}
}

func (e *Executor) fireToFixedPoint() {
	for iter := 0; iter < e.maxIterations; iter++ {
		progressed := false
		for _, t := range e.candidates() {
			inputs, ok := e.fireable(t)
			if !ok {
				continue
			}
			e.startFire(t, inputs)
			progressed = true
			break
		}
		if !progressed {
			return
		}
	}
}

func bitmapKey(state []fuzzy.Scalar) string {
	buf := make([]byte, len(state))
	for i, val := range state {
		if !val.IsPhi() {
			buf[i] = 1
		}
	}
	return string(buf)
}

func (e *Executor) candidates() []int {
	key := bitmapKey(e.placeState)
	if cached, ok := e.cache[key]; ok {
		return cached
	}
	marking := make([]bool, len(e.placeState))
	for i, val := range e.placeState {
		marking[i] = !val.IsPhi()
	}
	var out []int
	for _, t := range e.order {
		before := e.net.PlacesBefore(t)
		present := make([]bool, len(before))
		for i, p := range before {
			present[i] = marking[p]
		}
		if e.net.Table(t).PossiblyExecutable(present) {
			out = append(out, t)
		}
	}
	e.cache[key] = out
	return out
}

func (e *Executor) fireable(t int) ([]fuzzy.Scalar, bool) {
	if e.transState[t] != 0 {
		return nil, false
	}
	inputs := e.inputValues(t)
	inScalers := e.net.Scalers(e.net.PlacesBefore(t))
	if !e.net.Table(t).IsExecutable(inputs, inScalers) {
		return nil, false
	}
	return inputs, true
}

// inputValues gathers the current scalars of t's input places. Unlike
// fuzzynet, scalar-net arcs are unweighted: each place carries its own
// scale, so no arc-weight attenuation is applied here.
func (e *Executor) inputValues(t int) []fuzzy.Scalar {
	places := e.net.PlacesBefore(t)
	out := make([]fuzzy.Scalar, len(places))
	for i, p := range places {
		out[i] = e.placeState[p]
	}
	return out
}

func (e *Executor) startFire(t int, inputs []fuzzy.Scalar) {
	inScalers := e.net.Scalers(e.net.PlacesBefore(t))
	e.clearInputs(t)
	e.transHolds[t] = e.net.Table(t).Execute(inputs, inScalers, e.outputScalersFor(t))
	delay := e.net.Delay(t)
	if delay == 0 {
		e.finishFire(t)
	} else {
		e.transState[t] = delay
	}
}

// outputScalersFor resolves the output-side scalers for transition t:
// its wired out-places' scales for an internal transition, or its own
// input places' scales for an output transition, which has no out
// places of its own to scale by and instead dispatches on the same
// scale its single input was fuzzified against.
func (e *Executor) outputScalersFor(t int) []scaler.Triangle {
	if e.net.IsOutputTransition(t) {
		return e.net.Scalers(e.net.PlacesBefore(t))
	}
	return e.net.Scalers(e.net.PlacesAfter(t))
}

func (e *Executor) clearInputs(t int) {
	for _, p := range e.net.PlacesBefore(t) {
		e.placeState[p] = fuzzy.ScalarPhi()
	}
}

func (e *Executor) finishFire(t int) {
	outputs := e.transHolds[t]
	e.transHolds[t] = nil
	if e.net.IsOutputTransition(t) {
		e.events.Dispatch(t, outputs[0])
		return
	}
	places := e.net.PlacesAfter(t)
	if len(outputs) != len(places) {
		panic(fmt.Sprintf("scalarnet: transition %d produced %d outputs but has %d out places", t, len(outputs), len(places)))
	}
	for i, p := range places {
		st := e.placeState[p]
		st.Unite(outputs[i])
		e.placeState[p] = st
	}
}

// orderOfTransitions partitions transitions into four groups and
// concatenates them: those touching an input place, output transitions
// that do not, non-delayed internal transitions, then delayed ones.
// Ties preserve insertion order. Every transition is classified into
// exactly one group (no early exit once a group is decided).
func orderOfTransitions(net *Net) []int {
	var touchesInput, outputsOnly, nonDelayed, delayed []int
	for t := 0; t < net.TransitionCount(); t++ {
		found := false
		for _, p := range net.PlacesBefore(t) {
			if net.IsInputPlace(p) {
				touchesInput = append(touchesInput, t)
				found = true
				break
			}
		}
		if found {
			continue
		}
		if net.IsOutputTransition(t) {
			outputsOnly = append(outputsOnly, t)
			continue
		}
		if net.Delay(t) == 0 {
			nonDelayed = append(nonDelayed, t)
		} else {
			delayed = append(delayed, t)
		}
	}
	order := make([]int, 0, net.TransitionCount())
	order = append(order, touchesInput...)
	order = append(order, outputsOnly...)
	order = append(order, nonDelayed...)
	order = append(order, delayed...)
	return order
}
