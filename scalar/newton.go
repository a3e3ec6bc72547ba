// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// NewtonRaphson estimates a root with the Newton iteration
//
//	x_{n+1} = x_n - f(x_n)/f'(x_n)
//
// starting from the bracket midpoint. There is no bracket safety net: the
// iterates may diverge outside the bracket, which is accepted behaviour.
// Use SafeNewtonRaphson for a guaranteed-convergent hybrid.
type NewtonRaphson struct {
	estimator
}

// NewNewtonRaphson builds a Newton-Raphson estimator. It requires both a
// function and a derivative before Estimate.
func NewNewtonRaphson(opts ...Option) (*NewtonRaphson, error) {
	n := &NewtonRaphson{}
	n.init("newton-raphson", true)
	if err := n.applyOptions(opts); err != nil {
		return nil, err
	}
	return n, nil
}

// SetDerivFunc sets the derivative evaluator.
func (n *NewtonRaphson) SetDerivFunc(df rootfind.Func) error {
	return n.setDeriv(df)
}

// Estimate runs the Newton iteration. It fails on a vanishing derivative
// or iteration exhaustion.
func (n *NewtonRaphson) Estimate() error {
	if err := n.beginEstimate(); err != nil {
		return err
	}
	defer n.unlock()

	x := n.bracket.Midpoint()
	for i := 0; i < n.maxIter; i++ {
		fx, err := n.eval(x)
		if err != nil {
			return err
		}
		if math.Abs(fx) <= n.tol {
			n.setRoot(x, i)
			return nil
		}
		dfx, err := n.evalDeriv(x)
		if err != nil {
			return err
		}
		if dfx == 0 {
			return fmt.Errorf("%w: newton-raphson: derivative vanished at x=%v", rootfind.ErrNoConvergence, x)
		}
		step := fx / dfx
		x -= step
		if math.Abs(step) <= n.tol {
			n.setRoot(x, i+1)
			return nil
		}
	}

	return fmt.Errorf("%w: newton-raphson: no convergence within %d iterations", rootfind.ErrNoConvergence, n.maxIter)
}
