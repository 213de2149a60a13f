package tables

import "github.com/fuzzpetri/fuzzpetri/fuzzy"

// Shape identifies one of the four table geometries by input/output
// arity.
type Shape int

const (
	ShapeOneByOne Shape = iota
	ShapeOneByTwo
	ShapeTwoByOne
	ShapeTwoByTwo
)

// Arity returns the number of inputs and outputs for s.
func (s Shape) Arity() (ins, outs int) {
	switch s {
	case ShapeOneByOne:
		return 1, 1
	case ShapeOneByTwo:
		return 1, 2
	case ShapeTwoByOne:
		return 2, 1
	case ShapeTwoByTwo:
		return 2, 2
	default:
		panic("tables: unknown shape")
	}
}

// String names the shape the way net descriptors spell it.
func (s Shape) String() string {
	switch s {
	case ShapeOneByOne:
		return "1x1"
	case ShapeOneByTwo:
		return "1x2"
	case ShapeTwoByOne:
		return "2x1"
	case ShapeTwoByTwo:
		return "2x2"
	default:
		return "?"
	}
}

// FuzzyTable is the capability set every fuzzy rule table implements.
type FuzzyTable interface {
	Shape() Shape
	IsExecutable(inputs []fuzzy.Token) bool
	Execute(inputs []fuzzy.Token) []fuzzy.Token
	PossiblyExecutable(present []bool) bool
}
