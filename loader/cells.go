package loader

import (
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/tables"
)

// cellForName maps a descriptor's fuzzy-value string to a tables.Cell;
// "FF" denotes Phi, matching the original readers' convention.
func cellForName(name string) (tables.Cell, error) {
	switch name {
	case "NL":
		return tables.CellNL, nil
	case "NM":
		return tables.CellNM, nil
	case "ZR":
		return tables.CellZR, nil
	case "PM":
		return tables.CellPM, nil
	case "PL":
		return tables.CellPL, nil
	case "FF":
		return tables.CellPhi, nil
	default:
		return 0, fmt.Errorf("%w: fuzzy value %q", ErrWrongJSONValue, name)
	}
}

func cellIndex(name string) (int, error) {
	c, err := cellForName(name)
	if err != nil {
		return 0, err
	}
	return int(c), nil
}

func operatorForName(name string) (tables.Operator, error) {
	switch name {
	case "None":
		return tables.OpNone, nil
	case "PLUS":
		return tables.OpPlus, nil
	case "MINUS":
		return tables.OpMinus, nil
	case "MULT":
		return tables.OpMult, nil
	case "DIV":
		return tables.OpDiv, nil
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrWrongJSONValue, name)
	}
}

// decodeOneByOne reads a flat {fromValue: toValue} map ("valTable")
// into a OneByOne table.
func decodeOneByOne(valTable obj) (*tables.OneByOne, error) {
	var cells [6]tables.Cell
	for i := range cells {
		cells[i] = tables.CellPhi
	}
	for key, v := range valTable {
		toName, err := asString(v, "valTable")
		if err != nil {
			return nil, err
		}
		ki, err := cellIndex(key)
		if err != nil {
			return nil, err
		}
		tv, err := cellForName(toName)
		if err != nil {
			return nil, err
		}
		cells[ki] = tv
	}
	return tables.NewOneByOne(cells), nil
}

// decodeOneByTwo reads two flat {fromValue: toValue} maps ("valTable1",
// "valTable2") into a OneByTwo table.
func decodeOneByTwo(valTable1, valTable2 obj) (*tables.OneByTwo, error) {
	var out1, out2 [6]tables.Cell
	for i := range out1 {
		out1[i] = tables.CellPhi
		out2[i] = tables.CellPhi
	}
	for key, v := range valTable1 {
		toName, err := asString(v, "valTable1")
		if err != nil {
			return nil, err
		}
		ki, err := cellIndex(key)
		if err != nil {
			return nil, err
		}
		tv, err := cellForName(toName)
		if err != nil {
			return nil, err
		}
		out1[ki] = tv
	}
	for key, v := range valTable2 {
		toName, err := asString(v, "valTable2")
		if err != nil {
			return nil, err
		}
		ki, err := cellIndex(key)
		if err != nil {
			return nil, err
		}
		tv, err := cellForName(toName)
		if err != nil {
			return nil, err
		}
		out2[ki] = tv
	}
	return tables.NewOneByTwo(out1, out2), nil
}

// decodeRuleTable reads a nested {fromValue: {fromValue2: toValue}}
// map ("ruleTable") into a 6x6 cell grid.
func decodeRuleTable(ruleTable obj) ([6][6]tables.Cell, error) {
	var grid [6][6]tables.Cell
	for i := range grid {
		for j := range grid[i] {
			grid[i][j] = tables.CellPhi
		}
	}
	for bigKey, v := range ruleTable {
		bi, err := cellIndex(bigKey)
		if err != nil {
			return grid, err
		}
		inner, err := asObject(v, "ruleTable")
		if err != nil {
			return grid, err
		}
		for smallKey, finalV := range inner {
			si, err := cellIndex(smallKey)
			if err != nil {
				return grid, err
			}
			finalName, err := asString(finalV, "ruleTable")
			if err != nil {
				return grid, err
			}
			fv, err := cellForName(finalName)
			if err != nil {
				return grid, err
			}
			grid[bi][si] = fv
		}
	}
	return grid, nil
}

// decodeTwoByOne reads a "ruleTable" into a TwoByOne table.
func decodeTwoByOne(ruleTable obj) (*tables.TwoByOne, error) {
	grid, err := decodeRuleTable(ruleTable)
	if err != nil {
		return nil, err
	}
	return tables.NewTwoByOne(grid), nil
}

// decodeTwoByTwo reads "ruleTable1" and "ruleTable2" into a TwoByTwo
// table.
func decodeTwoByTwo(ruleTable1, ruleTable2 obj) (*tables.TwoByTwo, error) {
	grid1, err := decodeRuleTable(ruleTable1)
	if err != nil {
		return nil, err
	}
	grid2, err := decodeRuleTable(ruleTable2)
	if err != nil {
		return nil, err
	}
	return tables.NewTwoByTwo(grid1, grid2), nil
}
