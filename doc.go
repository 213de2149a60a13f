// Package petri (fuzzpetri) is your in-memory runtime for building,
// loading, and ticking fuzzy and unified Petri nets in Go.
//
// 🚀 What is fuzzpetri?
//
//	A small, dependency-lean interpreter that brings together:
//
//	  • Fuzzy token algebra: 5-valued membership vectors (NL/NM/ZR/PM/PL)
//	    plus a Phi (absent) sentinel, union and normalization
//	  • Triangular scaling: fuzzify/defuzzify between scalars and tokens
//	  • Rule tables: 1x1, 1x2, 2x1 and 2x2 fuzzy-logic + arithmetic cells
//	  • Net model: places, transitions, arcs, delays and an event manager
//	  • Execution engine: tick-based fixed-point scheduler with candidate
//	    caching and deterministic transition ordering
//
// ✨ Why choose fuzzpetri?
//
//   - Deterministic    — a fixed tick protocol and transition order
//   - Two dialects     — fuzzy-vector nets and scalar ("unified") nets
//     share one engine shape but never mix tokens
//   - External-facing  — JSON descriptors in, DOT graphs out
//   - Pure Go          — no cgo
//
// Under the hood, everything is organized under subpackages:
//
//	fuzzy/     — token algebra shared by both net dialects
//	scaler/    — triangular fuzzifier/defuzzifier
//	tables/    — fuzzy and scalar rule tables
//	fuzzynet/  — fuzzy-token net model, builder and executor
//	scalarnet/ — scalar-token ("unified") net model, builder and executor
//	loader/    — JSON descriptor loader for both dialects
//	dotwriter/ — Graphviz DOT export for both dialects
//	cmd/petrisim/ — thin CLI driver (load, tick, dump)
//
// Quick usage sketch:
//
//	b := fuzzynet.NewBuilder()
//	in := b.AddInputPlace()
//	out, _ := b.AddOutputTransition(tables.DefaultOneByOne())
//	b.Connect(in, out, 1.0)
//	net, events, _ := b.Build()
//	ex := fuzzynet.NewExecutor(net, events)
//	ex.RunTick(map[int]fuzzy.Token{in: fuzzy.Zero()})
//
// Dive into DESIGN.md and SPEC_FULL.md for the full component breakdown.
//
//	go get github.com/fuzzpetri/fuzzpetri
package petri
