// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import (
	"math"
	"testing"

	"github.com/consensys/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearEstimate(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	l, err := NewLinearFromCoefficients([]float64{6, -3}) // -3x + 6
	require.NoError(err)
	assert.True(l.IsReady())
	assert.False(l.IsRootAvailable())

	require.NoError(l.Estimate())
	assert.True(l.IsRootAvailable())

	root, err := l.Root()
	require.NoError(err)
	assert.Equal(2.0, root)

	coeffs, err := l.Coefficients()
	require.NoError(err)
	assert.Equal(Polynomial{6, -3}, coeffs)
}

func TestLinearTolerance(t *testing.T) {
	assert := assert.New(t)

	l := NewLinear()
	assert.Equal(rootfind.DefaultTolerance, l.Tolerance())

	assert.ErrorIs(l.SetTolerance(0), rootfind.ErrIllegalArgument)
	assert.ErrorIs(l.SetTolerance(-1e-9), rootfind.ErrIllegalArgument)
	assert.ErrorIs(l.SetTolerance(math.Inf(1)), rootfind.ErrIllegalArgument)
	assert.Equal(rootfind.DefaultTolerance, l.Tolerance(), "rejected values must not stick")

	assert.NoError(l.SetTolerance(1e-6))
	assert.Equal(1e-6, l.Tolerance())
}

func TestLinearNonDyadicRoot(t *testing.T) {
	require := require.New(t)

	l, err := NewLinearFromCoefficients([]float64{1, 3}) // 3x + 1
	require.NoError(err)
	require.NoError(l.Estimate())

	root, err := l.Root()
	require.NoError(err)
	require.InDelta(-1.0/3.0, root, 1e-15)
}

func TestLinearRejectsBadCoefficients(t *testing.T) {
	assert := assert.New(t)

	l := NewLinear()
	assert.ErrorIs(l.SetCoefficients([]float64{1}), rootfind.ErrIllegalArgument)
	assert.ErrorIs(l.SetCoefficients([]float64{1, 2, 3}), rootfind.ErrIllegalArgument)
	assert.ErrorIs(l.SetCoefficients([]float64{1, 0}), rootfind.ErrIllegalArgument)
	assert.False(l.IsReady())

	_, err := NewLinearFromCoefficients([]float64{1, 0})
	assert.ErrorIs(err, rootfind.ErrIllegalArgument)
}

func TestLinearRejectsComplexCoefficients(t *testing.T) {
	l := NewLinear()
	assert.ErrorIs(t, l.SetComplexCoefficients([]complex128{1, 2}), rootfind.ErrIllegalArgument)
	assert.False(t, l.IsReady())
}

func TestLinearLifecycleErrors(t *testing.T) {
	assert := assert.New(t)

	l := NewLinear()
	assert.ErrorIs(l.Estimate(), rootfind.ErrNotReady)

	_, err := l.Root()
	assert.ErrorIs(err, rootfind.ErrNotAvailable)

	_, err = l.Coefficients()
	assert.ErrorIs(err, rootfind.ErrNotAvailable)
}

func TestLinearReconfigure(t *testing.T) {
	require := require.New(t)

	l, err := NewLinearFromCoefficients([]float64{-1, 1}) // x - 1
	require.NoError(err)
	require.NoError(l.Estimate())

	require.NoError(l.SetCoefficients([]float64{-8, 2})) // 2x - 8
	require.NoError(l.Estimate())

	root, err := l.Root()
	require.NoError(err)
	assert.Equal(t, 4.0, root)
}
