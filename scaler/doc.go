// Package scaler implements the triangular membership function that
// bridges fuzzy.Scalar and fuzzy.Token: Fuzzify maps a scalar into the
// five-dimensional fuzzy simplex, Defuzzify maps it back, and Clamp
// restricts a scalar to the scaler's inner border interval.
package scaler
