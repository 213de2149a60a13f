// Package fuzzy implements the token algebra shared by both net
// dialects: a 5-valued fuzzy membership vector (Token) and a single
// scalar with a missing sentinel (Scalar).
//
// Both token kinds carry an explicit "absent" state (Phi) distinct from
// any present value; union (Unite) and renormalization are the only
// mutation operations a net ever needs.
package fuzzy
