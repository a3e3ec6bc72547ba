// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// Secant estimates a root with the secant update
//
//	x_{n+1} = x_n - f(x_n) * (x_n - x_{n-1}) / (f(x_n) - f(x_{n-1}))
//
// seeded from the two bracket endpoints. Unlike bisection it does not
// require a sign change over the bracket, and the iterates may leave it.
type Secant struct {
	estimator
}

// NewSecant builds a secant estimator.
func NewSecant(opts ...Option) (*Secant, error) {
	s := &Secant{}
	s.init("secant", false)
	if err := s.applyOptions(opts); err != nil {
		return nil, err
	}
	return s, nil
}

// Estimate runs the secant iteration. It fails when the two most recent
// evaluations coincide (degenerate denominator) or the iteration budget
// runs out.
func (s *Secant) Estimate() error {
	if err := s.beginEstimate(); err != nil {
		return err
	}
	defer s.unlock()

	x0, x1 := s.bracket.Lo, s.bracket.Hi
	f0, err := s.eval(x0)
	if err != nil {
		return err
	}
	f1, err := s.eval(x1)
	if err != nil {
		return err
	}

	for i := 0; i < s.maxIter; i++ {
		den := f1 - f0
		if den == 0 {
			return fmt.Errorf("%w: secant: degenerate denominator at x=%v", rootfind.ErrNoConvergence, x1)
		}
		x2 := x1 - f1*(x1-x0)/den
		f2, err := s.eval(x2)
		if err != nil {
			return err
		}
		if math.Abs(x2-x1) <= s.tol || math.Abs(f2) <= s.tol {
			s.setRoot(x2, i+1)
			return nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return fmt.Errorf("%w: secant: no convergence within %d iterations", rootfind.ErrNoConvergence, s.maxIter)
}
