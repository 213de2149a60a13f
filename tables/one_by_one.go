package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// OneByOne is a 1-input, 1-output fuzzy rule table: six cells, one per
// input fuzzy value plus Phi.
type OneByOne struct {
	cells [numCells]Cell
}

// NewOneByOne builds a OneByOne from six cells ordered NL, NM, ZR, PM,
// PL, Phi (i.e. indexed by Cell itself).
func NewOneByOne(cells [numCells]Cell) *OneByOne {
	return &OneByOne{cells: cells}
}

// DefaultOneByOne returns the identity table: every value (including
// Phi) maps to itself.
func DefaultOneByOne() *OneByOne {
	return NewOneByOne([numCells]Cell{CellNL, CellNM, CellZR, CellPM, CellPL, CellPhi})
}

func (t *OneByOne) Shape() Shape { return ShapeOneByOne }

func (t *OneByOne) IsExecutable(inputs []fuzzy.Token) bool {
	in := inputs[0]
	if in.IsPhi() {
		return !t.cells[phiAxisIndex].IsPhi()
	}
	for _, v := range in.NonzeroValues() {
		if !t.cells[axisIndexForValue(v)].IsPhi() {
			return true
		}
	}
	return false
}

func (t *OneByOne) Execute(inputs []fuzzy.Token) []fuzzy.Token {
	in := inputs[0]
	if in.IsPhi() {
		cell := t.cells[phiAxisIndex]
		if cell.IsPhi() {
			return []fuzzy.Token{fuzzy.Phi()}
		}
		v, _ := cell.Value()
		var out fuzzy.Token
		out.Add(v, 1)
		return []fuzzy.Token{out}
	}
	var out fuzzy.Token
	for _, v := range in.NonzeroValues() {
		cell := t.cells[axisIndexForValue(v)]
		if cv, ok := cell.Value(); ok {
			out.Add(cv, in.Get(v))
		}
	}
	out.Normalize()
	return []fuzzy.Token{out}
}

func (t *OneByOne) PossiblyExecutable(present []bool) bool {
	return axisPossiblyExecutable(t.cells[:], present[0])
}

// axisPossiblyExecutable reports whether, given a single axis is
// present (non-Phi) or not, any addressable cell is non-Phi.
func axisPossiblyExecutable(cells []Cell, present bool) bool {
	if !present {
		return !cells[phiAxisIndex].IsPhi()
	}
	for i := 0; i < 5; i++ {
		if !cells[i].IsPhi() {
			return true
		}
	}
	return false
}
