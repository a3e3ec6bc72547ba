// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package rootfind

// Func evaluates a scalar function at x. It is supplied by the caller and
// held by reference by the estimators; an estimator never mutates it.
// Evaluation may fail (domain error, numerical blow-up in the caller's
// code); such failures are propagated wrapped in ErrEvaluation, distinct
// from the estimator's own failure modes.
//
// Derivatives share the same shape: derivative-based estimators take a
// second Func evaluating f'.
type Func func(x float64) (float64, error)

// Defaults shared by the estimator constructors. Each estimator documents
// which of these it uses; all of them can be overridden per instance.
const (
	// DefaultBracketLo and DefaultBracketHi form the starting bracket of a
	// freshly constructed estimator.
	DefaultBracketLo = 0.0
	DefaultBracketHi = 1.0

	// DefaultTolerance is the convergence threshold used when the caller
	// does not set one.
	DefaultTolerance = 1e-9
)
