// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"math"
	"testing"

	"github.com/consensys/rootfind/internal/randpoly"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBrentRecoversBracketedRoot(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("brent finds the only root inside the bracket", prop.ForAll(
		func(root, halfWidth float64) bool {
			f := func(x float64) (float64, error) { return x - root, nil }
			b, err := NewBrent(WithFunc(f), WithBracket(root-halfWidth, root+halfWidth))
			if err != nil {
				return false
			}
			if err := b.Estimate(); err != nil {
				return false
			}
			got, err := b.Root()
			if err != nil {
				return false
			}
			return math.Abs(got-root) <= 1e-6
		},
		gen.Float64Range(-100, 100),
		gen.Float64Range(0.5, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBracketBasedEstimatorsIsolateCubicRoots(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	builders := map[string]func(opts ...Option) (Estimator, error){
		"bisection":      func(opts ...Option) (Estimator, error) { return NewBisection(opts...) },
		"false-position": func(opts ...Option) (Estimator, error) { return NewFalsePosition(opts...) },
		"brent":          func(opts ...Option) (Estimator, error) { return NewBrent(opts...) },
	}

	properties := gopter.NewProperties(parameters)
	properties.Property("each isolating sub-interval yields its root", prop.ForAll(
		func(seed int64) bool {
			src := randpoly.New(uint64(seed))
			roots := src.RealRoots(3, -50, 50, 2.0)
			coeffs := randpoly.FromRealRoots(roots)

			f := func(x float64) (float64, error) {
				res := coeffs[len(coeffs)-1]
				for i := len(coeffs) - 2; i >= 0; i-- {
					res = res*x + coeffs[i]
				}
				return res, nil
			}

			for _, r := range roots {
				for _, build := range builders {
					e, err := build(WithFunc(f), WithBracket(r-0.9, r+0.9), WithMaxIterations(1000))
					if err != nil {
						return false
					}
					if err := e.Estimate(); err != nil {
						return false
					}
					got, err := e.Root()
					if err != nil {
						return false
					}
					if math.Abs(got-r) > 1e-5 {
						return false
					}
				}
			}
			return true
		},
		gen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
