package fuzzy

import (
	"errors"
	"fmt"
	"math"
)

// ErrNaNScalar is returned when a Scalar is constructed from a NaN
// value; NaN is forbidden as an invariant of the scalar token.
var ErrNaNScalar = errors.New("fuzzy: NaN scalar value")

// Scalar is either Phi (absent) or Exist, carrying a single finite
// real. The zero Scalar is Phi.
type Scalar struct {
	present bool
	value   float64
}

// ScalarPhi returns the absent scalar token.
func ScalarPhi() Scalar { return Scalar{} }

// NewScalar constructs a present scalar token. It fails if v is NaN.
func NewScalar(v float64) (Scalar, error) {
	if math.IsNaN(v) {
		return Scalar{}, fmt.Errorf("%w: %v", ErrNaNScalar, v)
	}
	return Scalar{present: true, value: v}, nil
}

// MustScalar is like NewScalar but panics on error; used where the
// caller has already established v cannot be NaN (e.g. engine-internal
// arithmetic on well-formed nets).
func MustScalar(v float64) Scalar {
	s, err := NewScalar(v)
	if err != nil {
		panic(err)
	}
	return s
}

// IsPhi reports whether the scalar carries no information.
func (s Scalar) IsPhi() bool { return !s.present }

// Value returns the underlying float and whether it is present.
func (s Scalar) Value() (float64, bool) { return s.value, s.present }

// Unite merges other into s: if other is Phi, s is unchanged; if s is
// Phi, s becomes other; otherwise the result is the arithmetic mean of
// the two values.
func (s *Scalar) Unite(other Scalar) {
	if other.IsPhi() {
		return
	}
	if !s.present {
		*s = other
		return
	}
	s.value = (s.value + other.value) / 2
}
