package scaler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scaler"
)

func MustNoError(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

func assertVec(t *testing.T, tok fuzzy.Token, nl, nm, zr, pm, pl float64) {
	t.Helper()
	assert.InDelta(t, nl, tok.Get(fuzzy.NL), 1e-9)
	assert.InDelta(t, nm, tok.Get(fuzzy.NM), 1e-9)
	assert.InDelta(t, zr, tok.Get(fuzzy.ZR), 1e-9)
	assert.InDelta(t, pm, tok.Get(fuzzy.PM), 1e-9)
	assert.InDelta(t, pl, tok.Get(fuzzy.PL), 1e-9)
}

func newTestTriangle(t *testing.T) scaler.Triangle {
	t.Helper()
	tri, err := scaler.NewFromBorders(-1, -0.5, 0, 0.5, 1)
	MustNoError(t, err)
	return tri
}

func TestTriangle_BadBordersRejected(t *testing.T) {
	_, err := scaler.NewFromBorders(0, -1, 0, 0.5, 1)
	require.ErrorIs(t, err, scaler.ErrBadBorders)
}

func TestTriangle_FuzzifySaturatesOutsideDomain(t *testing.T) {
	tri := newTestTriangle(t)
	assertVec(t, tri.Fuzzify(fuzzy.MustScalar(-1.2)), 1, 0, 0, 0, 0)
	assertVec(t, tri.Fuzzify(fuzzy.MustScalar(1.2)), 0, 0, 0, 0, 1)
}

func TestTriangle_FuzzifyInterior(t *testing.T) {
	tri := newTestTriangle(t)
	assertVec(t, tri.Fuzzify(fuzzy.MustScalar(0.75)), 0, 0, 0, 0.5, 0.5)
	assertVec(t, tri.Fuzzify(fuzzy.MustScalar(-0.25)), 0, 0.5, 0.5, 0, 0)
}

func TestTriangle_FuzzifyPhiIsPhi(t *testing.T) {
	tri := newTestTriangle(t)
	require.True(t, tri.Fuzzify(fuzzy.ScalarPhi()).IsPhi())
}

func TestTriangle_DefuzzifyIdentityAtZero(t *testing.T) {
	d := scaler.Default()
	s := d.Defuzzify(fuzzy.Zero())
	v, ok := s.Value()
	require.True(t, ok)
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestTriangle_DefuzzifyRoundTrip(t *testing.T) {
	tri := newTestTriangle(t)
	for _, x := range []float64{-0.9, -0.3, 0.1, 0.6, 0.95} {
		tok := tri.Fuzzify(fuzzy.MustScalar(x))
		back := tri.Defuzzify(tok)
		v, ok := back.Value()
		require.True(t, ok)
		assert.InDelta(t, x, v, 1e-9)
	}
}

func TestTriangle_ClampBoundsToInnerBorders(t *testing.T) {
	tri := newTestTriangle(t)
	assert.Equal(t, -0.5, tri.Clamp(-5))
	assert.Equal(t, 0.5, tri.Clamp(5))
	assert.Equal(t, 0.2, tri.Clamp(0.2))
}
