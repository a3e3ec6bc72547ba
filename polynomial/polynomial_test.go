// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialEval(t *testing.T) {
	assert := assert.New(t)

	p := Polynomial{1, -2, 3} // 3x² - 2x + 1
	assert.Equal(9.0, p.Eval(2))
	assert.Equal(1.0, p.Eval(0))

	assert.Equal(0.0, Polynomial{}.Eval(7))
	assert.Equal(5.0, Polynomial{5}.Eval(-3))
}

func TestPolynomialDegree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, Polynomial{}.Degree())
	assert.Equal(-1, Polynomial{0, 0}.Degree())
	assert.Equal(0, Polynomial{4}.Degree())
	assert.Equal(1, Polynomial{0, 1, 0, 0}.Degree()) // trailing zeros do not count
	assert.Equal(2, Polynomial{1, -2, 3}.Degree())
}

func TestPolynomialDerivative(t *testing.T) {
	p := Polynomial{1, -2, 3}
	if diff := cmp.Diff(Polynomial{-2, 6}, p.Derivative()); diff != "" {
		t.Errorf("derivative mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Polynomial{5}.Derivative())
	assert.Empty(t, Polynomial{}.Derivative())
}

func TestPolynomialMonic(t *testing.T) {
	p := Polynomial{2, 4, 2}
	if diff := cmp.Diff(Polynomial{1, 2, 1}, p.Monic()); diff != "" {
		t.Errorf("monic mismatch (-want +got):\n%s", diff)
	}
	// original untouched
	assert.Equal(t, Polynomial{2, 4, 2}, p)

	zero := Polynomial{0, 0}
	assert.Equal(t, zero, zero.Monic())
}

func TestPolynomialCloneIsIndependent(t *testing.T) {
	p := Polynomial{1, 2, 3}
	q := p.Clone()
	q[0] = 42
	assert.Equal(t, 1.0, p[0])
}

func TestPolynomialFunc(t *testing.T) {
	f := Polynomial{-4, 0, 1}.Func() // x² - 4
	y, err := f(3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, y)
}

func TestIsDegree(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsDegree([]float64{1, 2}, 1))
	assert.False(IsDegree([]float64{1, 0}, 1))    // zero leading coefficient
	assert.False(IsDegree([]float64{1, 2, 3}, 1)) // too long
	assert.False(IsDegree([]float64{1}, 1))       // too short
	assert.False(IsDegree(nil, -1))

	assert.True(IsDegreeComplex([]complex128{1, 2i, 3}, 2))
	assert.False(IsDegreeComplex([]complex128{1, 2i, 0}, 2))
}

func TestComplexEval(t *testing.T) {
	p := Complex{-2, 0, 1} // x² - 2
	assert.Equal(t, complex(-1, 0), p.Eval(1))
	assert.Equal(t, complex(-3, 0), p.Eval(1i))
}

func TestComplexEvalDerivatives(t *testing.T) {
	p := Complex{0, 0, 0, 1} // x³
	f, df, d2f := p.EvalDerivatives(2)
	assert.Equal(t, complex(8, 0), f)
	assert.Equal(t, complex(12, 0), df)
	assert.Equal(t, complex(12, 0), d2f)
}

func TestComplexDeflate(t *testing.T) {
	// (x - 1)(x - 2i) = x² - (1+2i)x + 2i
	p := Complex{2i, complex(-1, -2), 1}
	q := p.Deflate(1)
	require.Len(t, q, 2)
	assert.Equal(t, Complex{-2i, 1}, q) // x - 2i
}
