// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package polynomial provides polynomial value types and root estimators:
// closed-form solvers for degree 1 and 2, and a general-degree Laguerre
// solver for complex coefficients.
//
// Coefficients are stored in ascending powers of x: index i is the
// coefficient of xⁱ. The value types are immutable in style; methods
// deriving a new polynomial return a fresh slice.
package polynomial

import (
	"github.com/consensys/rootfind/internal/linalg"
)

// Polynomial is a real-coefficient polynomial, index = power of x.
type Polynomial []float64

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	if len(p) == 0 {
		return 0
	}
	res := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		res = res*x + p[i]
	}
	return res
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	res := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		res[i-1] = float64(i) * p[i]
	}
	return res
}

// Clone returns a copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	res := make(Polynomial, len(p))
	copy(res, p)
	return res
}

// Monic returns p scaled so its leading coefficient is 1. The zero
// polynomial is returned unchanged.
func (p Polynomial) Monic() Polynomial {
	d := p.Degree()
	if d < 0 {
		return p.Clone()
	}
	res := p.Clone()
	linalg.ScaleInPlace(1/p[d], res)
	return res
}

// Func returns p.Eval as a rootfind evaluator closure.
func (p Polynomial) Func() func(float64) (float64, error) {
	return func(x float64) (float64, error) { return p.Eval(x), nil }
}

// IsDegree reports whether coeffs is structurally a polynomial of exactly
// degree n: length n+1 with a non-zero leading coefficient.
func IsDegree(coeffs []float64, n int) bool {
	return n >= 0 && len(coeffs) == n+1 && coeffs[n] != 0
}

// Complex is a complex-coefficient polynomial, index = power of x.
type Complex []complex128

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Complex) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x by Horner's rule.
func (p Complex) Eval(x complex128) complex128 {
	if len(p) == 0 {
		return 0
	}
	res := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		res = res*x + p[i]
	}
	return res
}

// EvalDerivatives evaluates p, p' and p'' at x in a single Horner pass.
func (p Complex) EvalDerivatives(x complex128) (f, df, d2f complex128) {
	f = p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		d2f = d2f*x + df
		df = df*x + f
		f = f*x + p[i]
	}
	d2f *= 2
	return f, df, d2f
}

// Clone returns a copy of the polynomial.
func (p Complex) Clone() Complex {
	res := make(Complex, len(p))
	copy(res, p)
	return res
}

// Deflate divides p by (x - root), dropping the remainder, and returns
// the quotient of degree len(p)-2. Used by the Laguerre estimator after
// each root is found; the remainder is the residual of the root and is
// discarded.
func (p Complex) Deflate(root complex128) Complex {
	n := len(p) - 1
	res := make(Complex, n)
	b := p[n]
	for i := n - 1; i >= 0; i-- {
		res[i] = b
		b = root*b + p[i]
	}
	return res
}

// IsDegreeComplex reports whether coeffs is structurally a polynomial of
// exactly degree n: length n+1 with a non-zero leading coefficient.
func IsDegreeComplex(coeffs []complex128, n int) bool {
	return n >= 0 && len(coeffs) == n+1 && coeffs[n] != 0
}
