package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// TwoByTwo is a 2-input, 2-output fuzzy rule table: 72 cells, indexed
// [input1][input2] into a pair of conclusions, one per output.
type TwoByTwo struct {
	cells1 [numCells][numCells]Cell
	cells2 [numCells][numCells]Cell
}

// NewTwoByTwo builds a TwoByTwo from two 6x6 cell grids, one per
// output.
func NewTwoByTwo(cells1, cells2 [numCells][numCells]Cell) *TwoByTwo {
	return &TwoByTwo{cells1: cells1, cells2: cells2}
}

func (t *TwoByTwo) Shape() Shape { return ShapeTwoByTwo }

func (t *TwoByTwo) IsExecutable(inputs []fuzzy.Token) bool {
	t1 := axisTerms(inputs[0])
	t2 := axisTerms(inputs[1])
	for _, a := range t1 {
		for _, b := range t2 {
			if !t.cells1[a.index][b.index].IsPhi() || !t.cells2[a.index][b.index].IsPhi() {
				return true
			}
		}
	}
	return false
}

func (t *TwoByTwo) Execute(inputs []fuzzy.Token) []fuzzy.Token {
	t1 := axisTerms(inputs[0])
	t2 := axisTerms(inputs[1])
	var o1, o2 fuzzy.Token
	for _, a := range t1 {
		for _, b := range t2 {
			if cv, ok := t.cells1[a.index][b.index].Value(); ok {
				o1.Add(cv, a.weight*b.weight)
			}
			if cv, ok := t.cells2[a.index][b.index].Value(); ok {
				o2.Add(cv, a.weight*b.weight)
			}
		}
	}
	o1.Normalize()
	o2.Normalize()
	return []fuzzy.Token{o1, o2}
}

func (t *TwoByTwo) PossiblyExecutable(present []bool) bool {
	for _, i := range axisRange(present[0]) {
		for _, j := range axisRange(present[1]) {
			if !t.cells1[i][j].IsPhi() || !t.cells2[i][j].IsPhi() {
				return true
			}
		}
	}
	return false
}
