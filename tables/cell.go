package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// Cell is a table entry: one of the five fuzzy values, or CellPhi. It
// doubles as the row/column index into a dense cell array — index 5 is
// reserved for Phi, matching fuzzy.Value's own 0..4 range.
type Cell uint8

const (
	CellNL Cell = iota
	CellNM
	CellZR
	CellPM
	CellPL
	CellPhi
)

// numCells is the addressable width of one axis of a table (five fuzzy
// values plus Phi).
const numCells = 6

// CellFor converts a present fuzzy.Value into its Cell encoding.
func CellFor(v fuzzy.Value) Cell { return Cell(v) }

// IsPhi reports whether the cell is the Phi sentinel.
func (c Cell) IsPhi() bool { return c == CellPhi }

// Value returns the fuzzy.Value for a non-Phi cell, and false if c is
// CellPhi.
func (c Cell) Value() (fuzzy.Value, bool) {
	if c.IsPhi() {
		return 0, false
	}
	return fuzzy.Value(c), true
}

// axisIndexForValue returns the 0..4 index used to look up a table
// row/column for a present token's value v (callers iterate
// NonzeroValues and call this per value). A Phi token is looked up at
// phiAxisIndex instead.
func axisIndexForValue(v fuzzy.Value) int { return int(v) }

const phiAxisIndex = int(CellPhi)
