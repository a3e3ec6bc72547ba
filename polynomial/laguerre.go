// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/consensys/rootfind"
	"github.com/consensys/rootfind/debug"
	"github.com/consensys/rootfind/logger"
)

const (
	// laguerreStepsPerBreak is the number of plain Laguerre steps taken
	// before a fractional step breaks a potential limit cycle, and
	// laguerreBreaks the number of such breaks attempted. Their product
	// bounds the iterations spent on a single root.
	laguerreStepsPerBreak = 10
	laguerreBreaks        = 8

	// laguerreRoundoff estimates the relative roundoff of the Horner
	// evaluation; when |f(x)| falls under the accumulated roundoff bound
	// the iterate is on a root to machine precision.
	laguerreRoundoff = 1e-14
)

// fractions used to break limit cycles, applied every
// laguerreStepsPerBreak-th step.
var cycleBreakFractions = [...]float64{0.0, 0.5, 0.25, 0.75, 0.13, 0.38, 0.62, 0.88, 1.0}

// Laguerre finds all roots, counted with multiplicity, of a complex
// polynomial of any degree >= 1 using Laguerre's iteration with
// sequential deflation. Each root found is divided out of the working
// polynomial before searching for the next; with polishing enabled (the
// default) every root is then refined against the original, non-deflated
// polynomial to undo the numeric drift deflation accumulates.
//
// Roots are emitted in the order the deflation sequence finds them, not
// sorted; callers needing a canonical order must sort. Iterates whose
// imaginary part is negligible relative to the tolerance are snapped to
// the real axis; conjugate pairs are not specially paired and may carry
// independent residual imaginary parts.
type Laguerre struct {
	coeffs Complex
	tol    float64
	polish bool

	roots []complex128

	configured bool
	locked     bool
	hasRoots   bool
}

// NewLaguerre returns an unconfigured Laguerre estimator with the default
// tolerance and polishing enabled.
func NewLaguerre() *Laguerre {
	return &Laguerre{tol: rootfind.DefaultTolerance, polish: true}
}

// NewLaguerreFromCoefficients returns a Laguerre estimator configured
// with coeffs.
func NewLaguerreFromCoefficients(coeffs []complex128) (*Laguerre, error) {
	l := NewLaguerre()
	if err := l.SetCoefficients(coeffs); err != nil {
		return nil, err
	}
	return l, nil
}

// SetCoefficients sets the polynomial, in ascending powers of x. coeffs
// must have length >= 2 and a non-zero leading coefficient.
func (l *Laguerre) SetCoefficients(coeffs []complex128) error {
	if l.locked {
		return fmt.Errorf("%w: laguerre: operation in progress", rootfind.ErrLocked)
	}
	if len(coeffs) < 2 {
		return fmt.Errorf("%w: laguerre: need at least 2 coefficients, got %d", rootfind.ErrIllegalArgument, len(coeffs))
	}
	if coeffs[len(coeffs)-1] == 0 {
		return fmt.Errorf("%w: laguerre: zero leading coefficient", rootfind.ErrIllegalArgument)
	}
	l.coeffs = Complex(coeffs).Clone()
	l.configured = true
	return nil
}

// SetPolish toggles the final refinement of every root against the
// original polynomial. Default is on.
func (l *Laguerre) SetPolish(polish bool) error {
	if l.locked {
		return fmt.Errorf("%w: laguerre: operation in progress", rootfind.ErrLocked)
	}
	l.polish = polish
	return nil
}

// Polish reports whether root polishing is enabled.
func (l *Laguerre) Polish() bool { return l.polish }

// SetTolerance sets the relative step size under which a Laguerre
// iterate is accepted as converged. tol must be > 0.
func (l *Laguerre) SetTolerance(tol float64) error {
	if l.locked {
		return fmt.Errorf("%w: laguerre: operation in progress", rootfind.ErrLocked)
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: laguerre: tolerance must be positive, got %v", rootfind.ErrIllegalArgument, tol)
	}
	l.tol = tol
	return nil
}

// Tolerance returns the current convergence tolerance.
func (l *Laguerre) Tolerance() float64 { return l.tol }

// Coefficients returns the configured polynomial. It fails with
// ErrNotAvailable before SetCoefficients.
func (l *Laguerre) Coefficients() (Complex, error) {
	if !l.configured {
		return nil, fmt.Errorf("%w: laguerre: coefficients not set", rootfind.ErrNotAvailable)
	}
	return l.coeffs.Clone(), nil
}

// Degree returns the degree of the configured polynomial.
func (l *Laguerre) Degree() (int, error) {
	if !l.configured {
		return 0, fmt.Errorf("%w: laguerre: coefficients not set", rootfind.ErrNotAvailable)
	}
	return len(l.coeffs) - 1, nil
}

// IsReady reports whether coefficients have been set.
func (l *Laguerre) IsReady() bool { return l.configured }

// IsLocked reports whether an Estimate is in progress.
func (l *Laguerre) IsLocked() bool { return l.locked }

// IsRootAvailable reports whether roots have been successfully estimated.
func (l *Laguerre) IsRootAvailable() bool { return l.hasRoots }

// Estimate finds all roots of the polynomial. Non-convergence on any
// single root fails the whole call and discards partial results; a
// previously estimated root set stays readable.
func (l *Laguerre) Estimate() error {
	if l.locked {
		return fmt.Errorf("%w: laguerre: operation in progress", rootfind.ErrLocked)
	}
	if !l.configured {
		return fmt.Errorf("%w: laguerre: coefficients not set", rootfind.ErrNotReady)
	}
	l.locked = true
	defer func() { l.locked = false }()

	n := len(l.coeffs) - 1
	roots := make([]complex128, 0, n)
	work := l.coeffs.Clone()

	for j := n; j >= 1; j-- {
		debug.Assert(len(work) == j+1, "deflation dropped %d coefficients, want degree %d", len(l.coeffs)-len(work), j)
		x, err := laguerreConverge(work, 0, l.tol)
		if err != nil {
			return fmt.Errorf("%w (root %d of %d)", err, n-j+1, n)
		}
		x = snapToReal(x, l.tol)
		roots = append(roots, x)
		work = work.Deflate(x)
	}

	if l.polish {
		for i, r := range roots {
			x, err := laguerreConverge(l.coeffs, r, l.tol)
			if err != nil {
				return fmt.Errorf("%w (polishing root %d of %d)", err, i+1, n)
			}
			roots[i] = snapToReal(x, l.tol)
		}
	}

	l.roots = roots
	l.hasRoots = true

	log := logger.Logger()
	log.Debug().Int("degree", n).Bool("polished", l.polish).Msg("laguerre converged")
	return nil
}

// Roots returns the root set, length equal to the polynomial degree,
// counted with multiplicity, in deflation order. It fails with
// ErrNotAvailable before a successful Estimate.
func (l *Laguerre) Roots() ([]complex128, error) {
	if !l.hasRoots {
		return nil, fmt.Errorf("%w: laguerre: no roots estimated", rootfind.ErrNotAvailable)
	}
	res := make([]complex128, len(l.roots))
	copy(res, l.roots)
	return res, nil
}

// snapToReal drops a negligible imaginary part.
func snapToReal(x complex128, tol float64) complex128 {
	if math.Abs(imag(x)) <= 2*tol*math.Abs(real(x)) {
		return complex(real(x), 0)
	}
	return x
}

// laguerreConverge runs Laguerre's iteration on p from the starting guess
// x. At each step it evaluates p, p' and p'' by Horner, forms the two
// candidate denominators G ± sqrt((m-1)(mH - G²)) and steps with the
// larger-magnitude one, which is the numerically stable branch. Every
// laguerreStepsPerBreak steps the step length is scaled by a fixed
// fraction to break limit cycles.
func laguerreConverge(p Complex, x complex128, tol float64) (complex128, error) {
	m := len(p) - 1
	mc := complex(float64(m), 0)

	maxIter := laguerreStepsPerBreak * laguerreBreaks
	for iter := 1; iter <= maxIter; iter++ {
		f, df, d2f := p.EvalDerivatives(x)

		// accumulated roundoff bound on |f(x)|: if the residual is below
		// it, x is a root to machine precision
		abx := cmplx.Abs(x)
		bound := cmplx.Abs(p[m])
		for j := m - 1; j >= 0; j-- {
			bound = cmplx.Abs(p[j]) + abx*bound
		}
		if cmplx.Abs(f) <= laguerreRoundoff*bound {
			return x, nil
		}

		g := df / f
		g2 := g * g
		h := g2 - d2f/f
		sq := cmplx.Sqrt(complex(float64(m-1), 0) * (mc*h - g2))
		gp := g + sq
		gm := g - sq
		if cmplx.Abs(gp) < cmplx.Abs(gm) {
			gp = gm
		}

		var dx complex128
		if cmplx.Abs(gp) > 0 {
			dx = mc / gp
		} else {
			// both denominators vanished: kick the iterate off the
			// stationary point
			dx = complex(1+abx, 0) * complex(math.Cos(float64(iter)), math.Sin(float64(iter)))
		}

		x1 := x - dx
		if x == x1 || cmplx.Abs(dx) <= tol*cmplx.Abs(x1) {
			return x1, nil
		}

		if iter%laguerreStepsPerBreak != 0 {
			x = x1
		} else {
			x = x - complex(cycleBreakFractions[iter/laguerreStepsPerBreak], 0)*dx
		}

		if debug.Debug {
			log := logger.Logger()
			log.Trace().Int("iteration", iter).
				Float64("re", real(x)).Float64("im", imag(x)).
				Msg("laguerre step")
		}
	}

	return 0, fmt.Errorf("%w: laguerre: no convergence within %d iterations", rootfind.ErrNoConvergence, maxIter)
}
