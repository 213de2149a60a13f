// Package loader decodes the two JSON net descriptor dialects —
// fuzzy-token and scalar-token — into fuzzynet.Net/scalarnet.Net graphs
// via their respective Builders. Each descriptor is first checked
// against a JSON Schema for gross shape errors, then walked key by key
// the way the original Rust readers did, surfacing the same three
// error kinds: an absent key, a key holding the wrong JSON value type,
// and a count mismatch between a declared cardinality and an actual
// array/object length.
package loader
