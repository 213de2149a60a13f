package loader

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fuzzySchema and scalarSchema check only the gross shape of a
// descriptor — top-level key presence and JSON type — before the
// key-by-key structural decode runs. They deliberately do not validate
// nested table/rule contents, which the structural decode covers with
// its own sentinel errors.
const fuzzySchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": [
		"transitionCntr", "placeCntr", "isInputPlaces", "isOutputTransition",
		"initialMarkingOfThePlaces", "fromTransToPlace", "fromPlaceToTrans",
		"weights", "tableForTransition"
	],
	"properties": {
		"transitionCntr": {"type": "integer", "minimum": 0},
		"placeCntr": {"type": "integer", "minimum": 0},
		"isInputPlaces": {"type": "array", "items": {"type": "boolean"}},
		"isOutputTransition": {"type": "array", "items": {"type": "boolean"}},
		"initialMarkingOfThePlaces": {"type": "array"},
		"fromTransToPlace": {"type": "array"},
		"fromPlaceToTrans": {"type": "array"},
		"weights": {"type": "object"},
		"tableForTransition": {"type": "array"}
	}
}`

const scalarSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": [
		"transitionCntr", "placeCntr", "isInputPlaces", "isOutputTransition",
		"initialMarkingOfThePlaces", "fromTransToPlace", "fromPlaceToTrans",
		"scaleForPlace", "delayForTransition", "tableForTransition"
	],
	"properties": {
		"transitionCntr": {"type": "integer", "minimum": 0},
		"placeCntr": {"type": "integer", "minimum": 0},
		"isInputPlaces": {"type": "array", "items": {"type": "boolean"}},
		"isOutputTransition": {"type": "array", "items": {"type": "boolean"}},
		"initialMarkingOfThePlaces": {"type": "array"},
		"fromTransToPlace": {"type": "array"},
		"fromPlaceToTrans": {"type": "array"},
		"scaleForPlace": {"type": "array", "items": {"type": "number"}},
		"delayForTransition": {"type": "array", "items": {"type": "integer"}},
		"tableForTransition": {"type": "array"}
	}
}`

// Both schemas are compiled once, at package init, rather than per
// call: the schema text is fixed and baked into the binary, so there
// is nothing to recompile on a hot path.
var (
	fuzzySchemaCompiled  = jsonschema.MustCompileString("schema://fuzzynet.json", fuzzySchema)
	scalarSchemaCompiled = jsonschema.MustCompileString("schema://scalarnet.json", scalarSchema)
)

// validateAgainst runs doc through schema and classifies any failure
// into the same configuration-error taxonomy the hand-written
// structural decode uses: a violated "required" keyword means a
// top-level key is missing (ErrKeyNotFound); anything else (wrong
// type, failed enum/minimum/items constraint) is ErrWrongJSONValue.
func validateAgainst(schema *jsonschema.Schema, doc interface{}) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("%w: %s", ErrWrongJSONValue, err)
	}
	if cause := firstRequiredFailure(ve); cause != nil {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, cause.Message)
	}
	return fmt.Errorf("%w: %s", ErrWrongJSONValue, ve.Message)
}

// firstRequiredFailure walks a jsonschema.ValidationError's cause tree
// for a node whose violated keyword is "required", identifying a
// missing top-level key rather than a wrong-typed one.
func firstRequiredFailure(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	if strings.HasSuffix(ve.KeywordLocation, "/required") {
		return ve
	}
	for _, cause := range ve.Causes {
		if found := firstRequiredFailure(cause); found != nil {
			return found
		}
	}
	return nil
}
