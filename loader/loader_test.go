package loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/fuzzynet"
	"github.com/fuzzpetri/fuzzpetri/loader"
	"github.com/fuzzpetri/fuzzpetri/scalarnet"
)

// fuzzyIdentityJSON describes a single input place feeding a single
// output transition through an identity 1x1 table — the smallest
// descriptor exercising every required key of the fuzzy dialect.
const fuzzyIdentityJSON = `{
	"transitionCntr": 1,
	"placeCntr": 1,
	"isInputPlaces": [true],
	"isOutputTransition": [true],
	"initialMarkingOfThePlaces": [{"phi": true, "fuzzyValues": [0,0,0,0,0]}],
	"fromTransToPlace": [[]],
	"fromPlaceToTrans": [[0]],
	"weights": {"0": {"0": 1.0}},
	"tableForTransition": [
		{"type": "1x1", "data": {"valTable": {"ZR": "ZR", "PM": "PM"}}}
	]
}`

func TestLoadFuzzy_IdentityDescriptor(t *testing.T) {
	net, events, err := loader.LoadFuzzy([]byte(fuzzyIdentityJSON))
	require.NoError(t, err)
	require.Equal(t, 1, net.PlaceCount())
	require.Equal(t, 1, net.TransitionCount())
	require.True(t, net.IsInputPlace(0))
	require.True(t, net.IsOutputTransition(0))

	var out fuzzy.Token
	events.Subscribe(0, recorderFuncFuzzy(func(tok fuzzy.Token) { out = tok }))

	ex := fuzzynet.NewExecutor(net, events)
	ex.RunTick(map[int]fuzzy.Token{0: fuzzy.Zero()})
	require.False(t, out.IsPhi())
	require.Equal(t, 1.0, out.Get(fuzzy.ZR))
}

func TestLoadFuzzy_RejectsBadSchema(t *testing.T) {
	_, _, err := loader.LoadFuzzy([]byte(`{"placeCntr": 1}`))
	require.ErrorIs(t, err, loader.ErrKeyNotFound)
}

func TestLoadFuzzy_RejectsWrongTypedKey(t *testing.T) {
	bad := `{
		"transitionCntr": 1,
		"placeCntr": "one",
		"isInputPlaces": [true],
		"isOutputTransition": [true],
		"initialMarkingOfThePlaces": [{"phi": true, "fuzzyValues": [0,0,0,0,0]}],
		"fromTransToPlace": [[]],
		"fromPlaceToTrans": [[0]],
		"weights": {"0": {"0": 1.0}},
		"tableForTransition": [
			{"type": "1x1", "data": {"valTable": {"ZR": "ZR", "PM": "PM"}}}
		]
	}`
	_, _, err := loader.LoadFuzzy([]byte(bad))
	require.ErrorIs(t, err, loader.ErrWrongJSONValue)
}

func TestLoadFuzzy_RejectsCardinalityMismatch(t *testing.T) {
	bad := `{
		"transitionCntr": 1,
		"placeCntr": 2,
		"isInputPlaces": [true],
		"isOutputTransition": [true],
		"initialMarkingOfThePlaces": [{"phi": true, "fuzzyValues": [0,0,0,0,0]}],
		"fromTransToPlace": [[]],
		"fromPlaceToTrans": [[0]],
		"weights": {},
		"tableForTransition": [
			{"type": "1x1", "data": {"valTable": {"ZR": "ZR"}}}
		]
	}`
	_, _, err := loader.LoadFuzzy([]byte(bad))
	require.ErrorIs(t, err, loader.ErrWrongNumberOfThings)
}

// scalarIdentityJSON mirrors fuzzyIdentityJSON for the scalar dialect,
// additionally carrying scaleForPlace and delayForTransition.
const scalarIdentityJSON = `{
	"transitionCntr": 1,
	"placeCntr": 1,
	"isInputPlaces": [true],
	"isOutputTransition": [true],
	"initialMarkingOfThePlaces": [{"isPhi": true, "val": 0}],
	"fromTransToPlace": [[]],
	"fromPlaceToTrans": [[0]],
	"scaleForPlace": [10.0],
	"delayForTransition": [0],
	"tableForTransition": [
		{"unfiedType": "u1x1", "unifiedData": {"table": {"valTable": {"ZR": "ZR", "PM": "PM"}}}}
	]
}`

func TestLoadScalar_IdentityDescriptor(t *testing.T) {
	net, events, err := loader.LoadScalar([]byte(scalarIdentityJSON))
	require.NoError(t, err)
	require.Equal(t, 1, net.PlaceCount())
	require.Equal(t, 1, net.TransitionCount())

	var out fuzzy.Scalar
	events.Subscribe(0, recorderFuncScalar(func(v fuzzy.Scalar) { out = v }))

	ex := scalarnet.NewExecutor(net, events)
	ex.RunTick(map[int]fuzzy.Scalar{0: fuzzy.MustScalar(5)})
	val, ok := out.Value()
	require.True(t, ok)
	require.InDelta(t, 5.0, val, 1e-6)
}

type recorderFuncFuzzy func(fuzzy.Token)

func (f recorderFuncFuzzy) Consume(tok fuzzy.Token) { f(tok) }

type recorderFuncScalar func(fuzzy.Scalar)

func (f recorderFuncScalar) Consume(v fuzzy.Scalar) { f(v) }
