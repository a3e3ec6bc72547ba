// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package rootfind estimates roots of scalar functions and polynomials.
//
// The library is split in two families:
//   - package scalar: six single-root estimators for an arbitrary real
//     function (Bisection, FalsePosition, Secant, NewtonRaphson,
//     SafeNewtonRaphson, Brent), plus automatic bracket expansion.
//   - package polynomial: closed-form solvers for degree 1 and 2, and a
//     general-degree complex-coefficient solver (Laguerre's method with
//     deflation and polishing).
//
// Callers supply the function (and, for derivative-based methods, its
// derivative) as a Func closure; the estimators never evaluate anything
// else. Estimators are single-owner mutable objects with an explicit
// configure / estimate / read lifecycle; they are not safe for concurrent
// use, and a reentrancy guard rejects mutation while an estimate is in
// progress.
//
// For general use on a bracketed real root, Brent is the recommended
// default: it is the fastest converging of the methods that cannot escape
// a valid bracket.
package rootfind
