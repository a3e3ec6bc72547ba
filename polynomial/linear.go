// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// Linear solves c1*x + c0 = 0 in closed form. Only real coefficients are
// accepted for this degree.
type Linear struct {
	coeffs Polynomial
	tol    float64
	root   float64

	configured bool
	locked     bool
	hasRoot    bool
}

// NewLinear returns an unconfigured first-degree estimator with the
// default tolerance.
func NewLinear() *Linear {
	return &Linear{tol: rootfind.DefaultTolerance}
}

// NewLinearFromCoefficients returns a first-degree estimator configured
// with coeffs.
func NewLinearFromCoefficients(coeffs []float64) (*Linear, error) {
	l := NewLinear()
	if err := l.SetCoefficients(coeffs); err != nil {
		return nil, err
	}
	return l, nil
}

// SetTolerance sets the estimator's tolerance. tol must be > 0. The
// degree-1 root is computed in closed form, so the value does not
// influence the result; the setter keeps the configuration surface
// uniform across the estimator types.
func (l *Linear) SetTolerance(tol float64) error {
	if l.locked {
		return fmt.Errorf("%w: linear: operation in progress", rootfind.ErrLocked)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: linear: tolerance must be positive, got %v", rootfind.ErrIllegalArgument, tol)
	}
	l.tol = tol
	return nil
}

// Tolerance returns the current tolerance.
func (l *Linear) Tolerance() float64 { return l.tol }

// SetCoefficients sets (c0, c1). coeffs must be exactly of degree 1:
// length 2 with c1 != 0.
func (l *Linear) SetCoefficients(coeffs []float64) error {
	if l.locked {
		return fmt.Errorf("%w: linear: operation in progress", rootfind.ErrLocked)
	}
	if !IsDegree(coeffs, 1) {
		return fmt.Errorf("%w: linear: not a first-degree polynomial", rootfind.ErrIllegalArgument)
	}
	l.coeffs = Polynomial(coeffs).Clone()
	l.configured = true
	return nil
}

// SetComplexCoefficients always fails: the first-degree estimator accepts
// real coefficients only.
func (l *Linear) SetComplexCoefficients([]complex128) error {
	return fmt.Errorf("%w: linear: complex coefficients are not accepted for degree 1", rootfind.ErrIllegalArgument)
}

// Coefficients returns the configured coefficients. It fails with
// ErrNotAvailable before SetCoefficients.
func (l *Linear) Coefficients() (Polynomial, error) {
	if !l.configured {
		return nil, fmt.Errorf("%w: linear: coefficients not set", rootfind.ErrNotAvailable)
	}
	return l.coeffs.Clone(), nil
}

// IsReady reports whether coefficients have been set.
func (l *Linear) IsReady() bool { return l.configured }

// IsLocked reports whether an Estimate is in progress.
func (l *Linear) IsLocked() bool { return l.locked }

// IsRootAvailable reports whether a root has been successfully estimated.
func (l *Linear) IsRootAvailable() bool { return l.hasRoot }

// Estimate computes the single root -c0/c1.
func (l *Linear) Estimate() error {
	if l.locked {
		return fmt.Errorf("%w: linear: operation in progress", rootfind.ErrLocked)
	}
	if !l.configured {
		return fmt.Errorf("%w: linear: coefficients not set", rootfind.ErrNotReady)
	}
	l.locked = true
	defer func() { l.locked = false }()

	// reduce to the monic form x + c0': the root is -c0'
	l.root = -l.coeffs.Monic()[0]
	l.hasRoot = true
	return nil
}

// Root returns the estimated root. It fails with ErrNotAvailable before a
// successful Estimate.
func (l *Linear) Root() (float64, error) {
	if !l.hasRoot {
		return 0, fmt.Errorf("%w: linear: no root estimated", rootfind.ErrNotAvailable)
	}
	return l.root, nil
}
