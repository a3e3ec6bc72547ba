// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// Bisection estimates a root by repeatedly halving a sign-changing
// bracket. It converges linearly and unconditionally when the starting
// bracket is valid; the iteration budget only guards pathological inputs.
type Bisection struct {
	estimator
}

// NewBisection builds a bisection estimator. Without options it carries
// the package defaults and needs at least a function before Estimate.
func NewBisection(opts ...Option) (*Bisection, error) {
	b := &Bisection{}
	b.init("bisection", false)
	if err := b.applyOptions(opts); err != nil {
		return nil, err
	}
	return b, nil
}

// Estimate runs the bisection iteration. The current bracket must show a
// strict sign change (f(lo)*f(hi) < 0); the root is the final midpoint.
func (b *Bisection) Estimate() error {
	if err := b.beginEstimate(); err != nil {
		return err
	}
	defer b.unlock()

	lo, hi := b.bracket.Lo, b.bracket.Hi
	flo, _, err := b.evalEndpoints()
	if err != nil {
		return err
	}

	for i := 0; i < b.maxIter; i++ {
		mid := 0.5 * (lo + hi)
		fmid, err := b.eval(mid)
		if err != nil {
			return err
		}
		if math.Abs(fmid) <= b.tol || hi-lo <= b.tol {
			b.setRoot(mid, i+1)
			return nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return fmt.Errorf("%w: bisection: no convergence within %d iterations", rootfind.ErrNoConvergence, b.maxIter)
}
