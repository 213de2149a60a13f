package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// OneByTwo is a 1-input, 2-output fuzzy rule table: each input axis
// value addresses an independent pair of conclusion cells, one per
// output slot.
type OneByTwo struct {
	out1 [numCells]Cell
	out2 [numCells]Cell
}

// NewOneByTwo builds a OneByTwo from two six-cell columns, one per
// output.
func NewOneByTwo(out1, out2 [numCells]Cell) *OneByTwo {
	return &OneByTwo{out1: out1, out2: out2}
}

// DefaultOneByTwo maps every input value to itself on both outputs.
func DefaultOneByTwo() *OneByTwo {
	identity := [numCells]Cell{CellNL, CellNM, CellZR, CellPM, CellPL, CellPhi}
	return NewOneByTwo(identity, identity)
}

func (t *OneByTwo) Shape() Shape { return ShapeOneByTwo }

func (t *OneByTwo) IsExecutable(inputs []fuzzy.Token) bool {
	in := inputs[0]
	if in.IsPhi() {
		return !t.out1[phiAxisIndex].IsPhi() || !t.out2[phiAxisIndex].IsPhi()
	}
	for _, v := range in.NonzeroValues() {
		i := axisIndexForValue(v)
		if !t.out1[i].IsPhi() || !t.out2[i].IsPhi() {
			return true
		}
	}
	return false
}

func (t *OneByTwo) Execute(inputs []fuzzy.Token) []fuzzy.Token {
	in := inputs[0]
	if in.IsPhi() {
		return []fuzzy.Token{singleCellToken(t.out1[phiAxisIndex]), singleCellToken(t.out2[phiAxisIndex])}
	}
	var o1, o2 fuzzy.Token
	for _, v := range in.NonzeroValues() {
		i := axisIndexForValue(v)
		if cv, ok := t.out1[i].Value(); ok {
			o1.Add(cv, in.Get(v))
		}
		if cv, ok := t.out2[i].Value(); ok {
			o2.Add(cv, in.Get(v))
		}
	}
	o1.Normalize()
	o2.Normalize()
	return []fuzzy.Token{o1, o2}
}

func (t *OneByTwo) PossiblyExecutable(present []bool) bool {
	return axisPossiblyExecutable(t.out1[:], present[0]) || axisPossiblyExecutable(t.out2[:], present[0])
}

// singleCellToken renders a single cell as the 1x1/1x2 Phi-input
// conclusion: Phi if the cell is Phi, else a unit token at that value.
func singleCellToken(cell Cell) fuzzy.Token {
	v, ok := cell.Value()
	if !ok {
		return fuzzy.Phi()
	}
	var out fuzzy.Token
	out.Add(v, 1)
	return out
}
