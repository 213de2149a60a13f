package fuzzynet

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

// Executor owns the mutable per-tick state of a fuzzy-token net: place
// markings, transition delay counters, pending firing outputs, a
// precomputed firing order, and a candidate cache keyed by the coarse
// marking. It is not safe for concurrent use.
type Executor struct {
	net           *Net
	events        *EventManager
	placeState    []fuzzy.Token
	transState    []int
	transHolds    [][]fuzzy.Token
	order         []int
	cache         map[string][]int
	defaultScaler scaler.Triangle
	maxIterations int
}

// NewExecutor builds an Executor over net, initializing every place to
// its initial marking and precomputing the firing order.
func NewExecutor(net *Net, events *EventManager, opts ...Option) *Executor {
	e := &Executor{
		net:           net,
		events:        events,
		placeState:    make([]fuzzy.Token, net.PlaceCount()),
		transState:    make([]int, net.TransitionCount()),
		transHolds:    make([][]fuzzy.Token, net.TransitionCount()),
		cache:         make(map[string][]int),
		defaultScaler: scaler.Default(),
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

// Marking returns the current token of place p, for inspection between
// ticks.
func (e *Executor) Marking(p int) fuzzy.Token { return e.placeState[p] }

// RunTick executes one tick: injects external inputs, advances delay
// counters (completing any firing whose counter reaches zero), then
// drives the fixed-point firing loop to quiescence or the iteration
// cap.
func (e *Executor) RunTick(inputs map[int]fuzzy.Token) {
	for p, tok := range inputs {
		st := e.placeState[p]
		st.Unite(tok)
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

func bitmapKey(state []fuzzy.Token) string {
	buf := make([]byte, len(state))
	for i, tok := range state {
		if !tok.IsPhi() {
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
	for i, tok := range e.placeState {
		marking[i] = !tok.IsPhi()
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

func (e *Executor) fireable(t int) ([]fuzzy.Token, bool) {
	if e.transState[t] != 0 {
		return nil, false
	}
	inputs := e.inputTokens(t)
	if !e.net.Table(t).IsExecutable(inputs) {
		return nil, false
	}
	return inputs, true
}

// inputTokens gathers the current tokens of t's input places, each
// attenuated by its arc weight via the default [-1, 1] scaler (a
// non-Phi token is defuzzified, scaled by the arc weight, then
// refuzzified).
func (e *Executor) inputTokens(t int) []fuzzy.Token {
	places := e.net.PlacesBefore(t)
	out := make([]fuzzy.Token, len(places))
	for i, p := range places {
		tok := e.placeState[p]
		if tok.IsPhi() {
			out[i] = tok
			continue
		}
		weight := e.net.ArcWeight(p, t)
		val, ok := e.defaultScaler.Defuzzify(tok).Value()
		if !ok {
			panic(fmt.Sprintf("fuzzynet: place %d holds a non-Phi token that defuzzified to Phi", p))
		}
		out[i] = e.defaultScaler.Fuzzify(fuzzy.MustScalar(val * weight))
	}
	return out
}

func (e *Executor) startFire(t int, inputs []fuzzy.Token) {
	e.clearInputs(t)
	e.transHolds[t] = e.net.Table(t).Execute(inputs)
	delay := e.net.Delay(t)
	if delay == 0 {
		e.finishFire(t)
	} else {
		e.transState[t] = delay
	}
}

func (e *Executor) clearInputs(t int) {
	for _, p := range e.net.PlacesBefore(t) {
		e.placeState[p] = fuzzy.Phi()
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
		panic(fmt.Sprintf("fuzzynet: transition %d produced %d outputs but has %d out places", t, len(outputs), len(places)))
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
