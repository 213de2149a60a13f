package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// Operator is the optional arithmetic operator a two-input scalar table
// may apply directly to its two scalar inputs, independent of the
// wrapped fuzzy table's conclusion.
type Operator uint8

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
)

// divEPS is the minimum divisor magnitude for OpDiv; below it, EPS is
// used in place of the true divisor instead of producing infinity.
const divEPS = 1e-5

// Exists reports whether op is an actual arithmetic operator (as
// opposed to OpNone, meaning "fuzzy path only").
func (op Operator) Exists() bool { return op != OpNone }

// Apply applies op to a and b. It is phi-tolerant: if exactly one
// input is Phi, the other passes through unchanged; if both are Phi,
// ok is false and no arithmetic result exists.
func (op Operator) Apply(a, b fuzzy.Scalar) (result float64, ok bool) {
	av, aok := a.Value()
	bv, bok := b.Value()
	switch {
	case !aok && !bok:
		return 0, false
	case !aok:
		return bv, true
	case !bok:
		return av, true
	}
	switch op {
	case OpPlus:
		return av + bv, true
	case OpMinus:
		return av - bv, true
	case OpMult:
		return av * bv, true
	case OpDiv:
		if bv > divEPS || bv < -divEPS {
			return av / bv, true
		}
		return av / divEPS, true
	default:
		panic("tables: Apply called with OpNone")
	}
}
