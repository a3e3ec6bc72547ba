// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
	"github.com/consensys/rootfind/debug"
	"github.com/consensys/rootfind/logger"
)

// Brent combines inverse quadratic interpolation, the secant step and
// bisection over a sign-changing bracket. At every step it attempts the
// interpolated estimate and falls back to bisection whenever the
// interpolant would leave the bracket or fails to shrink it fast enough
// versus the previous step. It is the most robust and fastest-converging
// of the bracket-based methods and the recommended default.
//
// The iteration maintains three abscissae: b, the current best estimate;
// a, the previous one; and c, an earlier estimate such that f(b) and f(c)
// have opposite signs and |f(b)| <= |f(c)|, so b and c always confine the
// root.
type Brent struct {
	estimator
}

// NewBrent builds a Brent estimator.
func NewBrent(opts ...Option) (*Brent, error) {
	b := &Brent{}
	b.init("brent", false)
	if err := b.applyOptions(opts); err != nil {
		return nil, err
	}
	return b, nil
}

// Estimate runs the Brent iteration. The current bracket must show a
// strict sign change.
func (br *Brent) Estimate() error {
	if err := br.beginEstimate(); err != nil {
		return err
	}
	defer br.unlock()

	a, b := br.bracket.Lo, br.bracket.Hi
	fa, fb, err := br.evalEndpoints()
	if err != nil {
		return err
	}

	c, fc := a, fa
	eps := math.Nextafter(1.0, 2.0) - 1.0

	for i := 0; i < br.maxIter; i++ {
		prevStep := b - a

		// keep b as the best approximation: |f(b)| <= |f(c)|
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tolAct := 2*eps*math.Abs(b) + 0.5*br.tol
		newStep := 0.5 * (c - b)

		if math.Abs(newStep) <= tolAct || fb == 0 {
			br.setRoot(b, i)
			return nil
		}

		// try interpolation when the previous step was large enough and
		// f(b) is the smallest value seen
		if math.Abs(prevStep) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			cb := c - b
			if a == c {
				// two distinct points only: secant (linear) step
				t1 := fb / fa
				p = cb * t1
				q = 1.0 - t1
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				t1 := fb / fc
				t2 := fb / fa
				p = t2 * (cb*q*(q-t1) - (b-a)*(t1-1.0))
				q = (q - 1.0) * (t1 - 1.0) * (t2 - 1.0)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			// accept only if the step stays within [b, c] with margin
			// and shrinks faster than the previous one
			if p < 0.75*cb*q-0.5*math.Abs(tolAct*q) && p < math.Abs(0.5*prevStep*q) {
				newStep = p / q
			}
		}

		if math.Abs(newStep) < tolAct {
			newStep = math.Copysign(tolAct, newStep)
		}

		a, fa = b, fb
		b += newStep
		if fb, err = br.eval(b); err != nil {
			return err
		}
		if debug.Debug {
			log := logger.Logger()
			log.Trace().Int("iteration", i).Float64("b", b).Float64("fb", fb).Msg("brent step")
		}
		// preserve the sign change across (b, c)
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
		}
	}

	return fmt.Errorf("%w: brent: no convergence within %d iterations", rootfind.ErrNoConvergence, br.maxIter)
}
