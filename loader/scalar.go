package loader

import (
	"encoding/json"
	"fmt"

	"github.com/fuzzpetri/fuzzpetri/fuzzy"
	"github.com/fuzzpetri/fuzzpetri/scalarnet"
	"github.com/fuzzpetri/fuzzpetri/tables"
)

// LoadScalar decodes a scalar-token ("unified") net descriptor and
// builds the corresponding scalarnet.Net and EventManager.
//
// Grounded on
// original_source/src/read_petri/unified_petr_json_reader.rs's
// deseralize. Unlike the fuzzy dialect, every transition carries an
// explicit delay entry and every place its own scale.
func LoadScalar(data []byte) (*scalarnet.Net, *scalarnet.EventManager, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("loader: invalid json: %w", err)
	}
	if err := validateAgainst(scalarSchemaCompiled, raw); err != nil {
		return nil, nil, err
	}
	root, err := asObject(raw, "root")
	if err != nil {
		return nil, nil, err
	}

	trNr, plNr, err := counts(root)
	if err != nil {
		return nil, nil, err
	}

	inpPl, err := boolArray(root, "isInputPlaces")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(inpPl), plNr, "isInputPlaces"); err != nil {
		return nil, nil, err
	}

	outTr, err := boolArray(root, "isOutputTransition")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(outTr), trNr, "isOutputTransition"); err != nil {
		return nil, nil, err
	}

	initMarking, err := scalarInitialMarkings(root)
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(initMarking), plNr, "initialMarkingOfThePlaces"); err != nil {
		return nil, nil, err
	}

	trToPl, err := arcLists(root, "fromTransToPlace")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(trToPl), trNr, "fromTransToPlace"); err != nil {
		return nil, nil, err
	}

	plToTr, err := arcLists(root, "fromPlaceToTrans")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(plToTr), plNr, "fromPlaceToTrans"); err != nil {
		return nil, nil, err
	}

	scales, err := floatArray(root, "scaleForPlace")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(scales), plNr, "scaleForPlace"); err != nil {
		return nil, nil, err
	}

	delays, err := intArray(root, "delayForTransition")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(delays), trNr, "delayForTransition"); err != nil {
		return nil, nil, err
	}

	tableJSONs, err := root.getArray("tableForTransition")
	if err != nil {
		return nil, nil, err
	}
	if err := assertLength(len(tableJSONs), trNr, "tableForTransition"); err != nil {
		return nil, nil, err
	}
	scalarTables := make([]tables.ScalarTable, len(tableJSONs))
	for i, tj := range tableJSONs {
		st, err := decodeScalarTable(tj)
		if err != nil {
			return nil, nil, err
		}
		scalarTables[i] = st
	}

	b := scalarnet.NewBuilder()
	for t := 0; t < trNr; t++ {
		if outTr[t] {
			if _, err := b.AddOutputTransition(scalarTables[t]); err != nil {
				return nil, nil, err
			}
		} else {
			b.AddTransition(delays[t], scalarTables[t])
		}
	}
	for p := 0; p < plNr; p++ {
		var pid int
		var err error
		if inpPl[p] {
			pid, err = b.AddInputPlace(scales[p])
		} else {
			pid, err = b.AddPlace(scales[p])
		}
		if err != nil {
			return nil, nil, err
		}
		if err := b.SetInitialMarking(pid, initMarking[p]); err != nil {
			return nil, nil, err
		}
	}
	for t, places := range trToPl {
		for _, p := range places {
			if err := b.ConnectOut(t, p); err != nil {
				return nil, nil, err
			}
		}
	}
	for p, trans := range plToTr {
		for _, t := range trans {
			if err := b.Connect(p, t); err != nil {
				return nil, nil, err
			}
		}
	}

	return b.Build()
}

func floatArray(root obj, key string) ([]float64, error) {
	arr, err := root.getArray(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(arr))
	for i, v := range arr {
		f, err := asFloat(v, key)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func intArray(root obj, key string) ([]int, error) {
	fs, err := floatArray(root, key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(f)
	}
	return out, nil
}

// scalarInitialMarkings decodes "initialMarkingOfThePlaces": an array
// of {"isPhi": bool, "val": float} objects.
func scalarInitialMarkings(root obj) ([]fuzzy.Scalar, error) {
	arr, err := root.getArray("initialMarkingOfThePlaces")
	if err != nil {
		return nil, err
	}
	out := make([]fuzzy.Scalar, len(arr))
	for i, v := range arr {
		entry, err := asObject(v, "initialMarkingOfThePlaces")
		if err != nil {
			return nil, err
		}
		isPhi, err := entry.getBool("isPhi")
		if err != nil {
			return nil, err
		}
		if isPhi {
			out[i] = fuzzy.ScalarPhi()
			continue
		}
		val, err := entry.getFloat("val")
		if err != nil {
			return nil, err
		}
		sc, err := fuzzy.NewScalar(val)
		if err != nil {
			return nil, err
		}
		out[i] = sc
	}
	return out, nil
}

// decodeScalarTable reads one "tableForTransition" entry: {"unfiedType":
// "u1x1"|"u2x1"|"u1x2"|"u2x2", "unifiedData": {...}}. Two-input shapes
// nest their cell data under "table" alongside a sibling "op" operator
// name; one-input shapes have no operator.
func decodeScalarTable(v interface{}) (tables.ScalarTable, error) {
	entry, err := asObject(v, "tableForTransition")
	if err != nil {
		return nil, err
	}
	kind, err := entry.getString("unfiedType")
	if err != nil {
		return nil, err
	}
	data, err := entry.getObject("unifiedData")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "u1x1":
		table, err := data.getObject("table")
		if err != nil {
			return nil, err
		}
		vt, err := table.getObject("valTable")
		if err != nil {
			return nil, err
		}
		oxo, err := decodeOneByOne(vt)
		if err != nil {
			return nil, err
		}
		return tables.NewScalarOneByOne(oxo), nil
	case "u1x2":
		table, err := data.getObject("table")
		if err != nil {
			return nil, err
		}
		vt1, err := table.getObject("valTable1")
		if err != nil {
			return nil, err
		}
		vt2, err := table.getObject("valTable2")
		if err != nil {
			return nil, err
		}
		oxt, err := decodeOneByTwo(vt1, vt2)
		if err != nil {
			return nil, err
		}
		return tables.NewScalarOneByTwo(oxt), nil
	case "u2x1":
		table, err := data.getObject("table")
		if err != nil {
			return nil, err
		}
		rt, err := table.getObject("ruleTable")
		if err != nil {
			return nil, err
		}
		txo, err := decodeTwoByOne(rt)
		if err != nil {
			return nil, err
		}
		opName, err := data.getString("op")
		if err != nil {
			return nil, err
		}
		op, err := operatorForName(opName)
		if err != nil {
			return nil, err
		}
		return tables.NewScalarTwoByOne(txo, op), nil
	case "u2x2":
		table, err := data.getObject("table")
		if err != nil {
			return nil, err
		}
		rt1, err := table.getObject("ruleTable1")
		if err != nil {
			return nil, err
		}
		rt2, err := table.getObject("ruleTable2")
		if err != nil {
			return nil, err
		}
		txt, err := decodeTwoByTwo(rt1, rt2)
		if err != nil {
			return nil, err
		}
		opName, err := data.getString("op")
		if err != nil {
			return nil, err
		}
		op, err := operatorForName(opName)
		if err != nil {
			return nil, err
		}
		return tables.NewScalarTwoByTwo(txt, op), nil
	default:
		return nil, fmt.Errorf("%w: table type %q", ErrWrongJSONValue, kind)
	}
}
