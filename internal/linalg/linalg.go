// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package linalg provides the small vector utilities the estimators rely
// on: scaling, Euclidean norm and normalization.
package linalg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scale returns c*v as a new slice.
func Scale[T constraints.Float](c T, v []T) []T {
	res := make([]T, len(v))
	for i := range v {
		res[i] = c * v[i]
	}
	return res
}

// ScaleInPlace multiplies v by c, modifying v.
func ScaleInPlace[T constraints.Float](c T, v []T) {
	for i := range v {
		v[i] *= c
	}
}

// Norm returns the Euclidean norm of v.
func Norm[T constraints.Float](v []T) float64 {
	var s float64
	for i := range v {
		s += float64(v[i]) * float64(v[i])
	}
	return math.Sqrt(s)
}

// Normalize returns v/‖v‖ as a new slice. A zero vector is returned
// unchanged (as a copy).
func Normalize[T constraints.Float](v []T) []T {
	n := Norm(v)
	if n == 0 {
		res := make([]T, len(v))
		copy(res, v)
		return res
	}
	return Scale(T(1/n), v)
}
