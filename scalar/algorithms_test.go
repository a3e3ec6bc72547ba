// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"math"
	"testing"

	"github.com/consensys/rootfind"
	"github.com/stretchr/testify/require"
)

// cubic with roots -3, 1, 7
func cubic(x float64) (float64, error) {
	return (x + 3) * (x - 1) * (x - 7), nil
}

func cubicDeriv(x float64) (float64, error) {
	// d/dx (x+3)(x-1)(x-7) = 3x² - 10x - 17
	return 3*x*x - 10*x - 17, nil
}

// brackets isolating one sign change each
var cubicBrackets = []struct {
	lo, hi, root float64
}{
	{-4, -2.5, -3},
	{0, 2.5, 1},
	{6, 8.5, 7},
}

func constructors() map[string]func(opts ...Option) (Estimator, error) {
	return map[string]func(opts ...Option) (Estimator, error){
		"bisection": func(opts ...Option) (Estimator, error) { return NewBisection(opts...) },
		"false-position": func(opts ...Option) (Estimator, error) {
			return NewFalsePosition(opts...)
		},
		"secant": func(opts ...Option) (Estimator, error) { return NewSecant(opts...) },
		"newton-raphson": func(opts ...Option) (Estimator, error) {
			return NewNewtonRaphson(append(opts, WithDerivative(cubicDeriv))...)
		},
		"safe-newton-raphson": func(opts ...Option) (Estimator, error) {
			return NewSafeNewtonRaphson(append(opts, WithDerivative(cubicDeriv))...)
		},
		"brent": func(opts ...Option) (Estimator, error) { return NewBrent(opts...) },
	}
}

func TestEstimateCubicRoots(t *testing.T) {
	for name, build := range constructors() {
		t.Run(name, func(t *testing.T) {
			for _, bc := range cubicBrackets {
				e, err := build(WithFunc(cubic), WithBracket(bc.lo, bc.hi))
				require.NoError(t, err)

				require.NoError(t, e.Estimate())
				require.True(t, e.IsRootAvailable())
				root, err := e.Root()
				require.NoError(t, err)
				require.InDelta(t, bc.root, root, 1e-7, "bracket [%v, %v]", bc.lo, bc.hi)
			}
		})
	}
}

func TestBracketBasedRequireSignChange(t *testing.T) {
	// x² + 1 has no real root anywhere
	noRoot := func(x float64) (float64, error) { return x*x + 1, nil }

	for _, name := range []string{"bisection", "false-position", "safe-newton-raphson", "brent"} {
		t.Run(name, func(t *testing.T) {
			build := constructors()[name]
			e, err := build(WithFunc(noRoot), WithBracket(-1, 1))
			require.NoError(t, err)

			require.ErrorIs(t, e.Estimate(), rootfind.ErrNoConvergence)
			require.False(t, e.IsRootAvailable())
		})
	}
}

func TestSecantDegenerateDenominator(t *testing.T) {
	s, err := NewSecant(
		WithFunc(func(x float64) (float64, error) { return 5, nil }),
		WithBracket(0, 1),
	)
	require.NoError(t, err)
	require.ErrorIs(t, s.Estimate(), rootfind.ErrNoConvergence)
	require.False(t, s.IsRootAvailable())
}

func TestNewtonVanishingDerivative(t *testing.T) {
	n, err := NewNewtonRaphson(
		WithFunc(func(x float64) (float64, error) { return x*x + 1, nil }),
		WithDerivative(func(x float64) (float64, error) { return 2 * x, nil }),
		WithBracket(-1, 1), // midpoint 0, where f' vanishes
	)
	require.NoError(t, err)
	require.ErrorIs(t, n.Estimate(), rootfind.ErrNoConvergence)
}

func TestSafeNewtonConvergesWherePlainNewtonStruggles(t *testing.T) {
	// x^9 is violently flat around its root at 0; the hybrid falls back
	// to bisection whenever the Newton step stops shrinking the bracket
	// fast enough.
	f := func(x float64) (float64, error) { return math.Pow(x, 9), nil }
	df := func(x float64) (float64, error) { return 9 * math.Pow(x, 8), nil }

	s, err := NewSafeNewtonRaphson(
		WithFunc(f), WithDerivative(df),
		WithBracket(-1, 1.5), WithTolerance(1e-6),
	)
	require.NoError(t, err)
	require.NoError(t, s.Estimate())
	root, err := s.Root()
	require.NoError(t, err)
	require.InDelta(t, 0.0, root, 1e-2)
}

func TestBrentHighPrecision(t *testing.T) {
	// cos(x) = x near 0.739
	f := func(x float64) (float64, error) { return math.Cos(x) - x, nil }
	b, err := NewBrent(WithFunc(f), WithBracket(0, 1), WithTolerance(1e-12))
	require.NoError(t, err)
	require.NoError(t, b.Estimate())
	root, err := b.Root()
	require.NoError(t, err)
	require.InDelta(t, 0.7390851332151607, root, 1e-10)
}

func TestComputeBracketExpandsToSignChange(t *testing.T) {
	f := func(x float64) (float64, error) { return x - 10, nil }
	e, err := NewBrent(WithFunc(f))
	require.NoError(t, err)

	// seed far from the root on one side
	require.NoError(t, e.ComputeBracket(0, 1))
	b := e.Bracket()
	require.True(t, (b.Lo-10)*(b.Hi-10) < 0, "bracket %v must straddle the root", b)

	require.NoError(t, e.Estimate())
	root, err := e.Root()
	require.NoError(t, err)
	require.InDelta(t, 10.0, root, 1e-8)
}

func TestComputeBracketImmediateSignChange(t *testing.T) {
	e, err := NewBisection(WithFunc(cubic))
	require.NoError(t, err)
	require.NoError(t, e.ComputeBracket(0, 2))
	require.Equal(t, rootfind.Bracket{Lo: 0, Hi: 2}, e.Bracket())
}

func TestComputeBracketFailsOnConstantFunction(t *testing.T) {
	e, err := NewBisection(WithFunc(func(x float64) (float64, error) { return 5, nil }))
	require.NoError(t, err)

	prior := e.Bracket()
	require.ErrorIs(t, e.ComputeBracket(0, 1), rootfind.ErrNoConvergence)
	// failure leaves the stored bracket untouched
	require.Equal(t, prior, e.Bracket())
	require.False(t, e.IsRootAvailable())
}

func TestComputeBracketValidation(t *testing.T) {
	e, err := NewBisection()
	require.NoError(t, err)

	// function must be set first
	require.ErrorIs(t, e.ComputeBracket(0, 1), rootfind.ErrNotReady)

	require.NoError(t, e.SetFunc(cubic))
	// seed must satisfy lo < hi, equality included
	require.ErrorIs(t, e.ComputeBracket(1, 1), rootfind.ErrInvalidRange)
	require.ErrorIs(t, e.ComputeBracket(2, 1), rootfind.ErrInvalidRange)
}
