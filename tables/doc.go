// Package tables implements the four fuzzy rule-table shapes (1x1,
// 1x2, 2x1, 2x2) and their scalar ("unified") wrappers, which fuzzify
// inputs, delegate to a fuzzy table, and defuzzify outputs, optionally
// driving a two-input table with an arithmetic Operator.
//
// Every table answers three questions: IsExecutable (is there a
// matching non-Phi conclusion for the current inputs), Execute (the
// conclusion), and PossiblyExecutable (a coarse phi/non-phi upper bound
// used by the scheduler's candidate cache).
package tables
