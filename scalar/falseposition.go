// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
)

// FalsePosition (regula falsi) estimates a root by replacing a bracket
// endpoint with the zero of the chord between the two endpoint values.
// It usually converges faster than bisection but can stagnate on one side
// for asymmetric curvature; that is expected behaviour, not an error, as
// long as the tolerance is met within the iteration budget.
type FalsePosition struct {
	estimator
}

// NewFalsePosition builds a false-position estimator.
func NewFalsePosition(opts ...Option) (*FalsePosition, error) {
	fp := &FalsePosition{}
	fp.init("false-position", false)
	if err := fp.applyOptions(opts); err != nil {
		return nil, err
	}
	return fp, nil
}

// Estimate runs the false-position iteration. The current bracket must
// show a strict sign change.
func (fp *FalsePosition) Estimate() error {
	if err := fp.beginEstimate(); err != nil {
		return err
	}
	defer fp.unlock()

	lo, hi := fp.bracket.Lo, fp.bracket.Hi
	flo, fhi, err := fp.evalEndpoints()
	if err != nil {
		return err
	}

	prev := math.Inf(1)
	for i := 0; i < fp.maxIter; i++ {
		// chord zero; the denominator cannot vanish while the sign
		// change holds
		x := hi - fhi*(hi-lo)/(fhi-flo)
		fx, err := fp.eval(x)
		if err != nil {
			return err
		}
		if math.Abs(fx) <= fp.tol || math.Abs(x-prev) <= fp.tol {
			fp.setRoot(x, i+1)
			return nil
		}
		if (fx < 0) == (flo < 0) {
			lo, flo = x, fx
		} else {
			hi, fhi = x, fx
		}
		prev = x
	}

	return fmt.Errorf("%w: false-position: no convergence within %d iterations", rootfind.ErrNoConvergence, fp.maxIter)
}
