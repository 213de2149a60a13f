package fuzzynet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

// TestExecutor_CandidateCacheCoherence grounds spec.md §8 scenario 6:
// any two ticks that end with the same per-place phi/non-phi bitmap
// must see the scheduler produce an identical candidate list, served
// from the same cache entry rather than recomputed. Internal to the
// package (not fuzzynet_test) so it can reach the unexported cache and
// candidates().
func TestExecutor_CandidateCacheCoherence(t *testing.T) {
	b := NewBuilder()
	pIn := b.AddInputPlace()
	pOut := b.AddPlace()
	t0 := b.AddTransition(0, tables.DefaultOneByOne())
	require.NoError(t, b.Connect(pIn, t0, 1.0))
	require.NoError(t, b.ConnectOut(t0, pOut))

	net, events, err := b.Build()
	require.NoError(t, err)
	ex := NewExecutor(net, events)

	ex.RunTick(map[int]fuzzy.Token{pIn: fuzzy.Zero()})
	key := bitmapKey(ex.placeState)
	want, ok := ex.cache[key]
	require.True(t, ok, "expected the ending bitmap to have a cache entry from the tick's own candidate lookups")

	ex.RunTick(nil)
	ex.RunTick(map[int]fuzzy.Token{pIn: fuzzy.Zero()})
	require.Equal(t, key, bitmapKey(ex.placeState), "second tick must end on the same bitmap as the first")

	got := ex.candidates()
	require.Equal(t, want, got)
}
