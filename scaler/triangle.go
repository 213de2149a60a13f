package scaler

import (
	"errors"
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
)

// ErrBadBorders is returned when the five border values are not
// strictly increasing.
var ErrBadBorders = errors.New("scaler: borders must be strictly increasing")

// Triangle is a triangular membership function parameterized by five
// strictly increasing border values (nl, nm, zr, pm, pl), one per
// fuzzy.Value. Each fuzzy value's membership triangle peaks at its own
// border and falls to zero at the neighboring borders; NL and PL
// saturate to 1 outside their outermost border.
type Triangle struct {
	borders [5]float64
}

// NewFromBorders builds a Triangle from five explicit border values.
// It fails unless nl < nm < zr < pm < pl.
func NewFromBorders(nl, nm, zr, pm, pl float64) (Triangle, error) {
	if !(nl < nm && nm < zr && zr < pm && pm < pl) {
		return Triangle{}, fmt.Errorf("%w: got %v %v %v %v %v", ErrBadBorders, nl, nm, zr, pm, pl)
	}
	return Triangle{borders: [5]float64{nl, nm, zr, pm, pl}}, nil
}

// NewFromMinMax builds a Triangle spanning [min, max], with the three
// interior borders spaced evenly across quarters of the range.
func NewFromMinMax(min, max float64) (Triangle, error) {
	step := (max - min) / 4
	return NewFromBorders(min, min+step, min+2*step, min+3*step, max)
}

// Default returns the [-1, 1] triangle used as the canonical scaler
// for arc-weight attenuation and arithmetic-table conclusion driving.
func Default() Triangle {
	t, err := NewFromMinMax(-1, 1)
	if err != nil {
		panic(err) // unreachable: -1 < 1 always satisfies NewFromBorders
	}
	return t
}

func (t Triangle) border(v fuzzy.Value) float64 { return t.borders[v] }

// Fuzzify converts a present scalar into a fuzzy.Token. A Phi scalar
// yields fuzzy.Phi().
func (t Triangle) Fuzzify(s fuzzy.Scalar) fuzzy.Token {
	val, ok := s.Value()
	if !ok {
		return fuzzy.Phi()
	}
	nl, nm, zr, pm, pl := t.borders[0], t.borders[1], t.borders[2], t.borders[3], t.borders[4]
	var tok fuzzy.Token

	switch {
	case val < nl:
		tok.Add(fuzzy.NL, 1)
	case val <= nm:
		tok.Add(fuzzy.NL, (nm-val)/(nm-nl))
	default:
		tok.Add(fuzzy.NL, 0)
	}
	tok.Add(fuzzy.NM, calcInMiddle(nl, nm, zr, val))
	tok.Add(fuzzy.ZR, calcInMiddle(nm, zr, pm, val))
	tok.Add(fuzzy.PM, calcInMiddle(zr, pm, pl, val))
	switch {
	case val > pl:
		tok.Add(fuzzy.PL, 1)
	case val >= pm:
		tok.Add(fuzzy.PL, (val-pm)/(pl-pm))
	default:
		tok.Add(fuzzy.PL, 0)
	}

	tok.Normalize()
	return tok
}

// calcInMiddle computes the triangular membership of a value whose
// peak is at center, with neighbors at left and right: zero outside
// (left, right), 1 exactly at center, linear in between.
func calcInMiddle(left, center, right, val float64) float64 {
	switch {
	case val <= left || val >= right:
		return 0
	case val == center:
		return 1
	case val < center:
		return (val - left) / (center - left)
	default:
		return (right - val) / (right - center)
	}
}

// Defuzzify converts a fuzzy.Token into a scalar: the weighted average
// of each fuzzy value's border by its slot. A Phi token yields
// fuzzy.ScalarPhi().
func (t Triangle) Defuzzify(tok fuzzy.Token) fuzzy.Scalar {
	if tok.IsPhi() {
		return fuzzy.ScalarPhi()
	}
	var weighted, sum float64
	for _, v := range fuzzy.Values() {
		slot := tok.Get(v)
		weighted += t.border(v) * slot
		sum += slot
	}
	return fuzzy.MustScalar(weighted / sum)
}

// Clamp restricts v to [nm, pm] — the first and last *inner* borders —
// per the scalar rule-table contract that a final arithmetic result is
// bounded by the output place's inner range rather than its full
// fuzzy domain [nl, pl].
func (t Triangle) Clamp(v float64) float64 {
	nm, pm := t.borders[1], t.borders[3]
	switch {
	case v < nm:
		return nm
	case v > pm:
		return pm
	default:
		return v
	}
}
