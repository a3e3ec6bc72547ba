// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// SafeNewtonRaphson is a Newton/bisection hybrid: it takes the Newton
// step when it stays inside the current bracket and at least roughly
// halves the previous step, and falls back to a bisection step otherwise.
// The bracket endpoints are updated each iteration like bisection, so it
// converges even where plain Newton diverges, at the cost of needing both
// a sign-changing bracket and a derivative.
type SafeNewtonRaphson struct {
	estimator
}

// NewSafeNewtonRaphson builds a safeguarded Newton-Raphson estimator.
func NewSafeNewtonRaphson(opts ...Option) (*SafeNewtonRaphson, error) {
	s := &SafeNewtonRaphson{}
	s.init("safe-newton-raphson", true)
	if err := s.applyOptions(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDerivFunc sets the derivative evaluator.
func (s *SafeNewtonRaphson) SetDerivFunc(df rootfind.Func) error {
	return s.setDeriv(df)
}

// Estimate runs the hybrid iteration. The current bracket must show a
// strict sign change.
func (s *SafeNewtonRaphson) Estimate() error {
	if err := s.beginEstimate(); err != nil {
		return err
	}
	defer s.unlock()

	lo, hi := s.bracket.Lo, s.bracket.Hi
	flo, _, err := s.evalEndpoints()
	if err != nil {
		return err
	}

	// orient so that f(xl) < 0 < f(xh)
	xl, xh := lo, hi
	if flo > 0 {
		xl, xh = hi, lo
	}

	rts := 0.5 * (lo + hi)
	dxold := math.Abs(hi - lo)
	dx := dxold

	f, err := s.eval(rts)
	if err != nil {
		return err
	}
	df, err := s.evalDeriv(rts)
	if err != nil {
		return err
	}

	for i := 0; i < s.maxIter; i++ {
		if ((rts-xh)*df-f)*((rts-xl)*df-f) > 0 || math.Abs(2*f) > math.Abs(dxold*df) {
			// Newton step would leave the bracket or is not shrinking
			// fast enough: bisect
			dxold = dx
			dx = 0.5 * (xh - xl)
			rts = xl + dx
			if xl == rts {
				s.setRoot(rts, i+1)
				return nil
			}
		} else {
			dxold = dx
			dx = f / df
			prev := rts
			rts -= dx
			if prev == rts {
				s.setRoot(rts, i+1)
				return nil
			}
		}
		if math.Abs(dx) <= s.tol {
			s.setRoot(rts, i+1)
			return nil
		}

		if f, err = s.eval(rts); err != nil {
			return err
		}
		if df, err = s.evalDeriv(rts); err != nil {
			return err
		}
		if f < 0 {
			xl = rts
		} else {
			xh = rts
		}
	}

	return fmt.Errorf("%w: safe-newton-raphson: no convergence within %d iterations", rootfind.ErrNoConvergence, s.maxIter)
}
