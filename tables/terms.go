package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// axisTerm is one contributing (cell-index, weight) pair for an input
// axis of a two-input table.
type axisTerm struct {
	index  int
	weight float64
}

// axisTerms enumerates the contributing terms for a token: a single
// Phi term with weight 1 for an absent token, or one term per nonzero
// slot (weighted by that slot) for a present token.
func axisTerms(tok fuzzy.Token) []axisTerm {
	if tok.IsPhi() {
		return []axisTerm{{index: phiAxisIndex, weight: 1}}
	}
	vs := tok.NonzeroValues()
	terms := make([]axisTerm, len(vs))
	for i, v := range vs {
		terms[i] = axisTerm{index: axisIndexForValue(v), weight: tok.Get(v)}
	}
	return terms
}

// axisRange enumerates the cell indices an axis can address given only
// its phi/non-phi coarse state, for PossiblyExecutable's upper bound.
func axisRange(present bool) []int {
	if !present {
		return []int{phiAxisIndex}
	}
	return []int{0, 1, 2, 3, 4}
}
