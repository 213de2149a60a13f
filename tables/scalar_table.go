package tables

import (
	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scaler"
)

// ScalarTable is the capability set a scalar ("unified") rule table
// implements: fuzzify via the caller-supplied per-place scalers, run
// the wrapped fuzzy table, defuzzify the conclusion.
type ScalarTable interface {
	Shape() Shape
	IsExecutable(inputs []fuzzy.Scalar, inScalers []scaler.Triangle) bool
	Execute(inputs []fuzzy.Scalar, inScalers, outScalers []scaler.Triangle) []fuzzy.Scalar
	PossiblyExecutable(present []bool) bool
}

func fuzzifyAll(inputs []fuzzy.Scalar, scalers []scaler.Triangle) []fuzzy.Token {
	toks := make([]fuzzy.Token, len(inputs))
	for i, in := range inputs {
		toks[i] = scalers[i].Fuzzify(in)
	}
	return toks
}

// ScalarOneByOne wraps a OneByOne fuzzy table; never carries an
// operator (one-input shapes are fuzzy-path only).
type ScalarOneByOne struct{ fuzzy *OneByOne }

func NewScalarOneByOne(t *OneByOne) *ScalarOneByOne { return &ScalarOneByOne{fuzzy: t} }

func (t *ScalarOneByOne) Shape() Shape { return ShapeOneByOne }

func (t *ScalarOneByOne) IsExecutable(inputs []fuzzy.Scalar, inScalers []scaler.Triangle) bool {
	return t.fuzzy.IsExecutable(fuzzifyAll(inputs, inScalers))
}

func (t *ScalarOneByOne) Execute(inputs []fuzzy.Scalar, inScalers, outScalers []scaler.Triangle) []fuzzy.Scalar {
	out := t.fuzzy.Execute(fuzzifyAll(inputs, inScalers))
	return []fuzzy.Scalar{outScalers[0].Defuzzify(out[0])}
}

func (t *ScalarOneByOne) PossiblyExecutable(present []bool) bool { return t.fuzzy.PossiblyExecutable(present) }

// ScalarOneByTwo wraps a OneByTwo fuzzy table.
type ScalarOneByTwo struct{ fuzzy *OneByTwo }

func NewScalarOneByTwo(t *OneByTwo) *ScalarOneByTwo { return &ScalarOneByTwo{fuzzy: t} }

func (t *ScalarOneByTwo) Shape() Shape { return ShapeOneByTwo }

func (t *ScalarOneByTwo) IsExecutable(inputs []fuzzy.Scalar, inScalers []scaler.Triangle) bool {
	return t.fuzzy.IsExecutable(fuzzifyAll(inputs, inScalers))
}

func (t *ScalarOneByTwo) Execute(inputs []fuzzy.Scalar, inScalers, outScalers []scaler.Triangle) []fuzzy.Scalar {
	out := t.fuzzy.Execute(fuzzifyAll(inputs, inScalers))
	return []fuzzy.Scalar{outScalers[0].Defuzzify(out[0]), outScalers[1].Defuzzify(out[1])}
}

func (t *ScalarOneByTwo) PossiblyExecutable(present []bool) bool { return t.fuzzy.PossiblyExecutable(present) }

// ScalarTwoByOne wraps a TwoByOne fuzzy table with an optional
// arithmetic Operator driving the final scalar result.
type ScalarTwoByOne struct {
	fuzzy *TwoByOne
	op    Operator
}

func NewScalarTwoByOne(t *TwoByOne, op Operator) *ScalarTwoByOne {
	return &ScalarTwoByOne{fuzzy: t, op: op}
}

func (t *ScalarTwoByOne) Shape() Shape { return ShapeTwoByOne }

func (t *ScalarTwoByOne) IsExecutable(inputs []fuzzy.Scalar, inScalers []scaler.Triangle) bool {
	return t.fuzzy.IsExecutable(fuzzifyAll(inputs, inScalers))
}

func (t *ScalarTwoByOne) Execute(inputs []fuzzy.Scalar, inScalers, outScalers []scaler.Triangle) []fuzzy.Scalar {
	conclusion := t.fuzzy.Execute(fuzzifyAll(inputs, inScalers))[0]
	if !t.op.Exists() {
		return []fuzzy.Scalar{outScalers[0].Defuzzify(conclusion)}
	}
	opResult, ok := t.op.Apply(inputs[0], inputs[1])
	if !ok {
		return []fuzzy.Scalar{outScalers[0].Defuzzify(conclusion)}
	}
	driver := scaler.Default()
	dv, dok := driver.Defuzzify(conclusion).Value()
	if !dok {
		panic("tables: arithmetic table produced a Phi conclusion under fireable inputs")
	}
	final := outScalers[0].Clamp(opResult * dv)
	return []fuzzy.Scalar{fuzzy.MustScalar(final)}
}

func (t *ScalarTwoByOne) PossiblyExecutable(present []bool) bool { return t.fuzzy.PossiblyExecutable(present) }

// ScalarTwoByTwo wraps a TwoByTwo fuzzy table with an optional
// arithmetic Operator, applied independently to each output.
type ScalarTwoByTwo struct {
	fuzzy *TwoByTwo
	op    Operator
}

func NewScalarTwoByTwo(t *TwoByTwo, op Operator) *ScalarTwoByTwo {
	return &ScalarTwoByTwo{fuzzy: t, op: op}
}

func (t *ScalarTwoByTwo) Shape() Shape { return ShapeTwoByTwo }

func (t *ScalarTwoByTwo) IsExecutable(inputs []fuzzy.Scalar, inScalers []scaler.Triangle) bool {
	return t.fuzzy.IsExecutable(fuzzifyAll(inputs, inScalers))
}

func (t *ScalarTwoByTwo) Execute(inputs []fuzzy.Scalar, inScalers, outScalers []scaler.Triangle) []fuzzy.Scalar {
	conclusions := t.fuzzy.Execute(fuzzifyAll(inputs, inScalers))
	if !t.op.Exists() {
		return []fuzzy.Scalar{outScalers[0].Defuzzify(conclusions[0]), outScalers[1].Defuzzify(conclusions[1])}
	}
	opResult, ok := t.op.Apply(inputs[0], inputs[1])
	if !ok {
		return []fuzzy.Scalar{outScalers[0].Defuzzify(conclusions[0]), outScalers[1].Defuzzify(conclusions[1])}
	}
	driver := scaler.Default()
	out := make([]fuzzy.Scalar, 2)
	for i, conclusion := range conclusions {
		dv, dok := driver.Defuzzify(conclusion).Value()
		if !dok {
			panic("tables: arithmetic table produced a Phi conclusion under fireable inputs")
		}
		out[i] = fuzzy.MustScalar(outScalers[i].Clamp(opResult * dv))
	}
	return out
}

func (t *ScalarTwoByTwo) PossiblyExecutable(present []bool) bool { return t.fuzzy.PossiblyExecutable(present) }
