// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/consensys/rootfind"
	"github.com/consensys/rootfind/debug"
)

// rootClass is the three-way discriminant classification of a quadratic.
// classNone covers complex-coefficient polynomials whose root pair fits
// none of the three real-coefficient classes.
type rootClass uint8

const (
	classNone rootClass = iota
	classTwoDistinctReal
	classDoubleRoot
	classConjugatePair
)

// Quadratic solves c2*x² + c1*x + c0 = 0 in closed form, for real or
// complex coefficients. The discriminant classification is available as
// soon as coefficients are set, independently of Estimate; the roots are
// readable only after a successful Estimate.
type Quadratic struct {
	coeffs Complex // c0, c1, c2; the real input path stores zero imaginary parts
	tol    float64

	class rootClass
	roots [2]complex128

	configured bool
	locked     bool
	hasRoots   bool
}

// NewQuadratic returns an unconfigured second-degree estimator with the
// default tolerance.
func NewQuadratic() *Quadratic {
	return &Quadratic{tol: rootfind.DefaultTolerance, coeffs: make(Complex, 3)}
}

// NewQuadraticFromCoefficients returns a second-degree estimator
// configured with real coefficients.
func NewQuadraticFromCoefficients(coeffs []float64) (*Quadratic, error) {
	q := NewQuadratic()
	if err := q.SetCoefficients(coeffs); err != nil {
		return nil, err
	}
	return q, nil
}

// SetTolerance sets the threshold under which the discriminant is
// considered zero (double root). tol must be > 0.
func (q *Quadratic) SetTolerance(tol float64) error {
	if q.locked {
		return fmt.Errorf("%w: quadratic: operation in progress", rootfind.ErrLocked)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: quadratic: tolerance must be positive, got %v", rootfind.ErrIllegalArgument, tol)
	}
	q.tol = tol
	if q.configured {
		q.classify()
	}
	return nil
}

// Tolerance returns the current classification tolerance.
func (q *Quadratic) Tolerance() float64 { return q.tol }

// SetCoefficients sets real coefficients (c0, c1, c2). coeffs must be
// exactly of degree 2: length 3 with c2 != 0.
func (q *Quadratic) SetCoefficients(coeffs []float64) error {
	if q.locked {
		return fmt.Errorf("%w: quadratic: operation in progress", rootfind.ErrLocked)
	}
	if !IsDegree(coeffs, 2) {
		return fmt.Errorf("%w: quadratic: not a second-degree polynomial", rootfind.ErrIllegalArgument)
	}
	for i, c := range coeffs {
		q.coeffs[i] = complex(c, 0)
	}
	q.configured = true
	q.classify()
	return nil
}

// SetComplexCoefficients sets complex coefficients (c0, c1, c2). coeffs
// must be exactly of degree 2: length 3 with c2 != 0.
func (q *Quadratic) SetComplexCoefficients(coeffs []complex128) error {
	if q.locked {
		return fmt.Errorf("%w: quadratic: operation in progress", rootfind.ErrLocked)
	}
	if !IsDegreeComplex(coeffs, 2) {
		return fmt.Errorf("%w: quadratic: not a second-degree polynomial", rootfind.ErrIllegalArgument)
	}
	copy(q.coeffs[:], coeffs)
	q.configured = true
	q.classify()
	return nil
}

// Coefficients returns the configured coefficients. It fails with
// ErrNotAvailable before coefficients are set.
func (q *Quadratic) Coefficients() (Complex, error) {
	if !q.configured {
		return nil, fmt.Errorf("%w: quadratic: coefficients not set", rootfind.ErrNotAvailable)
	}
	res := make(Complex, 3)
	copy(res, q.coeffs[:])
	return res, nil
}

// HasTwoDistinctRealRoots reports whether the discriminant is positive
// (two distinct real roots). It fails with ErrNotReady before
// coefficients are set. The three classification queries are mutually
// exclusive.
func (q *Quadratic) HasTwoDistinctRealRoots() (bool, error) {
	if !q.configured {
		return false, fmt.Errorf("%w: quadratic: coefficients not set", rootfind.ErrNotReady)
	}
	return q.class == classTwoDistinctReal, nil
}

// HasDoubleRoot reports whether the discriminant is zero within tolerance
// (one real double root, reported as two identical values).
func (q *Quadratic) HasDoubleRoot() (bool, error) {
	if !q.configured {
		return false, fmt.Errorf("%w: quadratic: coefficients not set", rootfind.ErrNotReady)
	}
	return q.class == classDoubleRoot, nil
}

// HasTwoComplexConjugateRoots reports whether the discriminant is
// negative (two complex conjugate roots).
func (q *Quadratic) HasTwoComplexConjugateRoots() (bool, error) {
	if !q.configured {
		return false, fmt.Errorf("%w: quadratic: coefficients not set", rootfind.ErrNotReady)
	}
	return q.class == classConjugatePair, nil
}

// IsReady reports whether coefficients have been set.
func (q *Quadratic) IsReady() bool { return q.configured }

// IsLocked reports whether an Estimate is in progress.
func (q *Quadratic) IsLocked() bool { return q.locked }

// IsRootAvailable reports whether roots have been successfully estimated.
func (q *Quadratic) IsRootAvailable() bool { return q.hasRoots }

// Estimate makes the roots computed from the current coefficients
// readable through Roots.
func (q *Quadratic) Estimate() error {
	if q.locked {
		return fmt.Errorf("%w: quadratic: operation in progress", rootfind.ErrLocked)
	}
	if !q.configured {
		return fmt.Errorf("%w: quadratic: coefficients not set", rootfind.ErrNotReady)
	}
	q.locked = true
	defer func() { q.locked = false }()

	q.hasRoots = true
	return nil
}

// Roots returns the two roots, counted with multiplicity, in no
// particular order. It fails with ErrNotAvailable before a successful
// Estimate.
func (q *Quadratic) Roots() ([]complex128, error) {
	if !q.hasRoots {
		return nil, fmt.Errorf("%w: quadratic: no roots estimated", rootfind.ErrNotAvailable)
	}
	return []complex128{q.roots[0], q.roots[1]}, nil
}

// isRealInput reports whether all coefficients have zero imaginary part.
func (q *Quadratic) isRealInput() bool {
	return imag(q.coeffs[0]) == 0 && imag(q.coeffs[1]) == 0 && imag(q.coeffs[2]) == 0
}

// classify computes the root pair and its three-way classification. The
// roots are derived via the quadratic formula, picking the sign of the
// square root that avoids cancellation in the numerator.
func (q *Quadratic) classify() {
	if q.isRealInput() {
		c, b, a := real(q.coeffs[0]), real(q.coeffs[1]), real(q.coeffs[2])
		d := b*b - 4*a*c
		switch {
		case math.Abs(d) <= q.tol:
			q.class = classDoubleRoot
			r := complex(-b/(2*a), 0)
			q.roots = [2]complex128{r, r}
		case d > 0:
			q.class = classTwoDistinctReal
			// |b + copysign(sqrt(d), b)| = |b| + sqrt(d) > 0 for d > 0
			t := -0.5 * (b + math.Copysign(math.Sqrt(d), b))
			debug.Assert(t != 0, "quadratic: vanished numerator with positive discriminant %v", d)
			q.roots = [2]complex128{complex(t/a, 0), complex(c/t, 0)}
		default:
			q.class = classConjugatePair
			re := -b / (2 * a)
			im := math.Sqrt(-d) / (2 * a)
			q.roots = [2]complex128{complex(re, im), complex(re, -im)}
		}
		return
	}

	c0, c1, c2 := q.coeffs[0], q.coeffs[1], q.coeffs[2]
	d := c1*c1 - 4*c2*c0

	if cmplx.Abs(d) <= q.tol {
		r := -c1 / (2 * c2)
		q.roots = [2]complex128{r, r}
		if math.Abs(imag(r)) <= q.tol {
			q.class = classDoubleRoot
		} else {
			q.class = classNone
		}
		return
	}

	// orient sq along c1 so the sum cannot cancel; with |d| > tol the
	// square root is non-zero even when c1 is
	sq := cmplx.Sqrt(d)
	if real(cmplx.Conj(c1)*sq) < 0 {
		sq = -sq
	}
	t := -0.5 * (c1 + sq)
	debug.Assert(t != 0, "quadratic: vanished numerator with discriminant %v", d)
	q.roots = [2]complex128{t / c2, c0 / t}

	r1, r2 := q.roots[0], q.roots[1]
	realish := math.Abs(imag(r1)) <= q.tol && math.Abs(imag(r2)) <= q.tol
	switch {
	case realish:
		q.class = classTwoDistinctReal
	case cmplx.Abs(r1-cmplx.Conj(r2)) <= q.tol:
		q.class = classConjugatePair
	default:
		q.class = classNone
	}
}
