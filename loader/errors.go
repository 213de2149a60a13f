package loader

import "errors"

// Sentinel errors mirroring the original Rust readers' three failure
// kinds, wrapped with the offending JSON key via fmt.Errorf("%w: ...").
var (
	// ErrKeyNotFound indicates a required JSON key is missing.
	ErrKeyNotFound = errors.New("loader: json key not found")

	// ErrWrongJSONValue indicates a key held a value of the wrong JSON
	// type, or an unrecognized enum string (a fuzzy value, table type,
	// or operator name).
	ErrWrongJSONValue = errors.New("loader: wrong json value")

	// ErrWrongNumberOfThings indicates a declared cardinality
	// (placeCntr, transitionCntr) does not match an array's actual
	// length.
	ErrWrongNumberOfThings = errors.New("loader: wrong number of things")
)
