// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package randpoly builds random polynomials with known roots. It is a
// test harness helper; nothing outside _test.go files should depend on
// the distribution of its output.
package randpoly

import (
	"sort"

	"golang.org/x/exp/rand"
)

// Source is a seeded uniform generator.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed, so test runs are reproducible.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Uniform draws from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// RealRoots draws n roots from [lo, hi), sorted ascending, pairwise
// separated by at least minGap.
func (s *Source) RealRoots(n int, lo, hi, minGap float64) []float64 {
	roots := make([]float64, n)
	for {
		for i := range roots {
			roots[i] = s.Uniform(lo, hi)
		}
		sort.Float64s(roots)
		ok := true
		for i := 1; i < n; i++ {
			if roots[i]-roots[i-1] < minGap {
				ok = false
				break
			}
		}
		if ok {
			return roots
		}
	}
}

// FromRoots expands the monic polynomial with the given roots,
//
//	p(x) = Π (x - rᵢ)
//
// returning its coefficients in ascending powers of x.
func FromRoots(roots []complex128) []complex128 {
	coeffs := make([]complex128, 1, len(roots)+1)
	coeffs[0] = 1
	for _, r := range roots {
		coeffs = append(coeffs, 0)
		for i := len(coeffs) - 1; i >= 1; i-- {
			coeffs[i] = coeffs[i-1] - r*coeffs[i]
		}
		coeffs[0] *= -r
	}
	return coeffs
}

// FromRealRoots is FromRoots for real roots and real coefficients.
func FromRealRoots(roots []float64) []float64 {
	rs := make([]complex128, len(roots))
	for i, r := range roots {
		rs[i] = complex(r, 0)
	}
	cs := FromRoots(rs)
	res := make([]float64, len(cs))
	for i, c := range cs {
		res[i] = real(c)
	}
	return res
}
