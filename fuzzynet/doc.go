// Package fuzzynet implements the fuzzy-token net dialect: places and
// transitions carrying fuzzy.Token markings, a stepwise Builder that
// yields an immutable Net plus a mutable EventManager, and an Executor
// that drives the per-tick fixed-point firing loop.
//
// Arcs from a place into a transition carry a real weight (default
// 1.0); the weight attenuates the fuzzy token's strength when the
// transition fires (see Executor).
package fuzzynet
