package dotwriter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzzpetri/fuzzpetri/dotwriter"
	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scalarnet"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

// Grounded on unified_petri_net/dot_string_builder.rs's dot_builder_test
// fixture.
func TestWriteScalar(t *testing.T) {
	b := scalarnet.NewBuilder()
	iP0, err := b.AddInputPlace(1.0)
	require.NoError(t, err)
	t0 := b.AddTransition(0, tables.NewScalarOneByOne(tables.DefaultOneByOne()))
	p1, err := b.AddPlace(2.0)
	require.NoError(t, err)
	require.NoError(t, b.SetInitialMarking(p1, fuzzy.MustScalar(0)))
	require.NoError(t, b.Connect(iP0, t0))
	require.NoError(t, b.ConnectOut(t0, p1))
	t1 := b.AddTransition(2, tables.NewScalarOneByOne(tables.DefaultOneByOne()))
	require.NoError(t, b.Connect(p1, t1))
	require.NoError(t, b.ConnectOut(t1, iP0))
	oT2, err := b.AddOutputTransition(tables.NewScalarOneByOne(tables.DefaultOneByOne()))
	require.NoError(t, err)
	require.NoError(t, b.Connect(p1, oT2))

	net, _, err := b.Build()
	require.NoError(t, err)

	dot := dotwriter.WriteScalar(net)
	require.Contains(t, dot, "iP0")
	require.Contains(t, dot, "P1●")
	require.Contains(t, dot, "T0")
	require.Contains(t, dot, "T1[2]")
	require.Contains(t, dot, "oT2")
	require.Contains(t, dot, `"iP0"->t0`)
	require.Contains(t, dot, `"P1●"->t1`)
	require.Contains(t, dot, `"P1●"->t2`)
	require.Contains(t, dot, `t0->"P1●"`)
	require.Contains(t, dot, `t1->"iP0"`)
}
