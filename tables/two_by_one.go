package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// TwoByOne is a 2-input, 1-output fuzzy rule table: 36 cells (6x6),
// indexed [input1][input2], row-major by the first input.
type TwoByOne struct {
	cells [numCells][numCells]Cell
}

// NewTwoByOne builds a TwoByOne from a 6x6 cell grid.
func NewTwoByOne(cells [numCells][numCells]Cell) *TwoByOne {
	return &TwoByOne{cells: cells}
}

// DefaultTwoByOne requires a zero (ZR) token on both inputs to fire,
// producing ZR; every other combination is Phi. This mirrors the
// minimal default used by delay-scenario fixtures.
func DefaultTwoByOne() *TwoByOne {
	var cells [numCells][numCells]Cell
	for i := range cells {
		for j := range cells[i] {
			cells[i][j] = CellPhi
		}
	}
	cells[int(CellZR)][int(CellZR)] = CellZR
	return NewTwoByOne(cells)
}

func (t *TwoByOne) Shape() Shape { return ShapeTwoByOne }

func (t *TwoByOne) IsExecutable(inputs []fuzzy.Token) bool {
	t1 := axisTerms(inputs[0])
	t2 := axisTerms(inputs[1])
	for _, a := range t1 {
		for _, b := range t2 {
			if !t.cells[a.index][b.index].IsPhi() {
				return true
			}
		}
	}
	return false
}

func (t *TwoByOne) Execute(inputs []fuzzy.Token) []fuzzy.Token {
	t1 := axisTerms(inputs[0])
	t2 := axisTerms(inputs[1])
	var out fuzzy.Token
	for _, a := range t1 {
		for _, b := range t2 {
			cell := t.cells[a.index][b.index]
			if cv, ok := cell.Value(); ok {
				out.Add(cv, a.weight*b.weight)
			}
		}
	}
	out.Normalize()
	return []fuzzy.Token{out}
}

func (t *TwoByOne) PossiblyExecutable(present []bool) bool {
	for _, i := range axisRange(present[0]) {
		for _, j := range axisRange(present[1]) {
			if !t.cells[i][j].IsPhi() {
				return true
			}
		}
	}
	return false
}
