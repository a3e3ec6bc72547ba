// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package rootfind

import "errors"

// Error taxonomy shared by all estimators. Raise sites wrap these with
// fmt.Errorf("%w: ...") so callers can test categories with errors.Is.
var (
	// ErrIllegalArgument reports a structurally invalid configuration
	// value: a non-positive tolerance, a malformed coefficient slice, a
	// polynomial that is not of the expected degree.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrInvalidRange reports a (lo, hi) pair with lo > hi. It is distinct
	// from ErrIllegalArgument so callers can tell a bad interval apart
	// from other configuration mistakes. lo == hi is a degenerate but
	// valid range.
	ErrInvalidRange = errors.New("invalid range: lo > hi")

	// ErrNotReady reports an operation invoked before the configuration it
	// needs (function, derivative, coefficients) is complete.
	ErrNotReady = errors.New("estimator is not ready")

	// ErrNotAvailable reports a read of a result that has not been
	// produced yet.
	ErrNotAvailable = errors.New("result is not available")

	// ErrLocked reports a mutation or reentrant operation while an
	// estimate is in progress on the same instance.
	ErrLocked = errors.New("estimator is locked")

	// ErrNoConvergence is the root-estimation failure: the iteration
	// budget ran out, no sign change exists in the explored region, or a
	// structural precondition (sign-changing bracket, non-degenerate
	// denominator) broke mid-iteration. For functions with no real root
	// nearby this is the expected outcome, not a bug.
	ErrNoConvergence = errors.New("root estimation failed")

	// ErrEvaluation wraps a failure returned by a caller-supplied Func.
	ErrEvaluation = errors.New("function evaluation failed")
)
