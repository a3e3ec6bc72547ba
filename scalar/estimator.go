// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package scalar provides single-root estimators for real scalar functions.
//
// All six estimators share the same configuration surface: a function (and
// for the derivative-based methods a derivative), a bracket, a tolerance
// and an iteration budget. They differ only in the iteration strategy run
// by Estimate.
package scalar

import (
	"fmt"
	"math"

	"github.com/consensys/rootfind"
	"github.com/consensys/rootfind/logger"
)

// DefaultMaxIterations bounds the iteration count of every estimator in
// this package unless overridden with SetMaxIterations.
const DefaultMaxIterations = 100

// Estimator is the contract shared by the six single-root estimators.
type Estimator interface {
	SetFunc(f rootfind.Func) error
	SetBracket(lo, hi float64) error
	SetTolerance(tol float64) error
	SetMaxIterations(n int) error

	// ComputeBracket searches outward from the seed interval for a sign
	// change of f and replaces the stored bracket on success.
	ComputeBracket(seedLo, seedHi float64) error

	// Estimate runs the iteration and stores the root on success.
	Estimate() error

	Root() (float64, error)
	Bracket() rootfind.Bracket
	Tolerance() float64

	IsReady() bool
	IsLocked() bool
	IsRootAvailable() bool
}

// lifecycle of an estimator instance. Estimating doubles as the lock: it
// is not a mutex, only a reentrancy guard (estimators are single-owner).
type state uint8

const (
	stateUnconfigured state = iota
	stateReady
	stateEstimating
	stateRootAvailable
)

// estimator holds the configuration and state shared by all algorithms.
// A failed Estimate restores the pre-call state, so a previously computed
// root stays readable.
type estimator struct {
	name string

	f          rootfind.Func
	df         rootfind.Func
	needsDeriv bool

	bracket rootfind.Bracket
	tol     float64
	maxIter int

	state  state
	resume state // state to restore on unlock
	root   float64
}

func (e *estimator) init(name string, needsDeriv bool) {
	e.name = name
	e.needsDeriv = needsDeriv
	e.bracket = rootfind.Bracket{Lo: rootfind.DefaultBracketLo, Hi: rootfind.DefaultBracketHi}
	e.tol = rootfind.DefaultTolerance
	e.maxIter = DefaultMaxIterations
	e.state = stateUnconfigured
}

// Option configures an estimator at construction time.
type Option func(*estimator) error

// WithFunc sets the function to estimate a root of.
func WithFunc(f rootfind.Func) Option {
	return func(e *estimator) error { return e.SetFunc(f) }
}

// WithDerivative sets the derivative evaluator. It fails on estimators
// that do not consume a derivative.
func WithDerivative(df rootfind.Func) Option {
	return func(e *estimator) error { return e.setDeriv(df) }
}

// WithBracket sets the starting bracket [lo, hi].
func WithBracket(lo, hi float64) Option {
	return func(e *estimator) error { return e.SetBracket(lo, hi) }
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(e *estimator) error { return e.SetTolerance(tol) }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(e *estimator) error { return e.SetMaxIterations(n) }
}

func (e *estimator) applyOptions(opts []Option) error {
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return err
		}
	}
	return nil
}

// SetFunc sets the function to estimate a root of.
func (e *estimator) SetFunc(f rootfind.Func) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: %s: nil function", rootfind.ErrIllegalArgument, e.name)
	}
	e.f = f
	e.refresh()
	return nil
}

func (e *estimator) setDeriv(df rootfind.Func) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if !e.needsDeriv {
		return fmt.Errorf("%w: %s does not consume a derivative", rootfind.ErrIllegalArgument, e.name)
	}
	if df == nil {
		return fmt.Errorf("%w: %s: nil derivative", rootfind.ErrIllegalArgument, e.name)
	}
	e.df = df
	e.refresh()
	return nil
}

// SetBracket replaces the stored bracket with [lo, hi]. A zero-width
// bracket is accepted; lo > hi fails with ErrInvalidRange.
func (e *estimator) SetBracket(lo, hi float64) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	b, err := rootfind.NewBracket(lo, hi)
	if err != nil {
		return err
	}
	e.bracket = b
	return nil
}

// SetTolerance sets the convergence tolerance. tol must be > 0.
func (e *estimator) SetTolerance(tol float64) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("%w: %s: tolerance must be positive, got %v", rootfind.ErrIllegalArgument, e.name, tol)
	}
	e.tol = tol
	return nil
}

// SetMaxIterations sets the iteration budget. n must be > 0.
func (e *estimator) SetMaxIterations(n int) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("%w: %s: iteration budget must be positive, got %d", rootfind.ErrIllegalArgument, e.name, n)
	}
	e.maxIter = n
	return nil
}

// Bracket returns the current bracket.
func (e *estimator) Bracket() rootfind.Bracket { return e.bracket }

// Tolerance returns the current convergence tolerance.
func (e *estimator) Tolerance() float64 { return e.tol }

// MaxIterations returns the current iteration budget.
func (e *estimator) MaxIterations() int { return e.maxIter }

// IsReady reports whether the estimator has all the configuration its
// algorithm needs to run Estimate.
func (e *estimator) IsReady() bool {
	return e.f != nil && (!e.needsDeriv || e.df != nil)
}

// IsLocked reports whether an Estimate or ComputeBracket is in progress
// on this instance.
func (e *estimator) IsLocked() bool { return e.state == stateEstimating }

// IsRootAvailable reports whether a root has been successfully estimated.
func (e *estimator) IsRootAvailable() bool { return e.state == stateRootAvailable }

// Root returns the estimated root. It fails with ErrNotAvailable before a
// successful Estimate.
func (e *estimator) Root() (float64, error) {
	if e.state != stateRootAvailable {
		return 0, fmt.Errorf("%w: %s: no root estimated", rootfind.ErrNotAvailable, e.name)
	}
	return e.root, nil
}

func (e *estimator) checkUnlocked() error {
	if e.state == stateEstimating {
		return fmt.Errorf("%w: %s: operation in progress", rootfind.ErrLocked, e.name)
	}
	return nil
}

func (e *estimator) refresh() {
	if e.state == stateUnconfigured && e.IsReady() {
		e.state = stateReady
	}
}

// beginEstimate validates readiness and locks the instance. Callers must
// pair it with a deferred unlock.
func (e *estimator) beginEstimate() error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if !e.IsReady() {
		if e.needsDeriv && e.f != nil {
			return fmt.Errorf("%w: %s: derivative not set", rootfind.ErrNotReady, e.name)
		}
		return fmt.Errorf("%w: %s: function not set", rootfind.ErrNotReady, e.name)
	}
	e.resume = e.state
	e.state = stateEstimating
	return nil
}

// unlock restores the pre-lock state. setRoot redirects the restore to
// stateRootAvailable, so unlock is correct on both success and failure.
func (e *estimator) unlock() {
	e.state = e.resume
}

func (e *estimator) setRoot(root float64, iterations int) {
	e.root = root
	e.resume = stateRootAvailable

	log := logger.Logger()
	log.Debug().
		Str("algorithm", e.name).
		Float64("root", root).
		Int("iterations", iterations).
		Msg("converged")
}

// eval evaluates f at x, wrapping caller failures in ErrEvaluation.
func (e *estimator) eval(x float64) (float64, error) {
	y, err := e.f(x)
	if err != nil {
		return 0, fmt.Errorf("%w: f(%v): %w", rootfind.ErrEvaluation, x, err)
	}
	return y, nil
}

// evalDeriv evaluates f' at x, wrapping caller failures in ErrEvaluation.
func (e *estimator) evalDeriv(x float64) (float64, error) {
	y, err := e.df(x)
	if err != nil {
		return 0, fmt.Errorf("%w: f'(%v): %w", rootfind.ErrEvaluation, x, err)
	}
	return y, nil
}

// evalEndpoints evaluates f at both bracket endpoints and verifies the
// sign change required by the bracket-based algorithms.
func (e *estimator) evalEndpoints() (flo, fhi float64, err error) {
	if flo, err = e.eval(e.bracket.Lo); err != nil {
		return 0, 0, err
	}
	if fhi, err = e.eval(e.bracket.Hi); err != nil {
		return 0, 0, err
	}
	if flo*fhi >= 0 {
		return 0, 0, fmt.Errorf("%w: %s: no sign change over %v", rootfind.ErrNoConvergence, e.name, e.bracket)
	}
	return flo, fhi, nil
}
