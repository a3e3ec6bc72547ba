// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package scalar

import (
	"fmt"

	"github.com/consensys/rootfind"
	"github.com/consensys/rootfind/logger"
)

const (
	// bracketGrowth is the geometric expansion factor applied to the
	// interval at each search step.
	bracketGrowth = 1.6

	// maxBracketIterations bounds the expansion. Past this the interval
	// has grown by a factor of roughly 4^60 and a sign change, if any,
	// is out of floating-point reach anyway.
	maxBracketIterations = 60
)

// ComputeBracket searches for a sign change of f starting from the seed
// interval (seedLo, seedHi), expanding it geometrically outward. Each step
// tries extending the low end first, then the high end; the first sign
// change found fixes the new bracket. On success the estimator's stored
// bracket is replaced; on failure it is left untouched.
//
// The seed must satisfy seedLo < seedHi (rejected with ErrInvalidRange
// otherwise, a zero-width seed cannot grow). The function must already be
// set. The estimator is locked for the duration of the search.
func (e *estimator) ComputeBracket(seedLo, seedHi float64) error {
	if err := e.checkUnlocked(); err != nil {
		return err
	}
	if e.f == nil {
		return fmt.Errorf("%w: %s: function not set", rootfind.ErrNotReady, e.name)
	}
	if seedLo >= seedHi {
		return fmt.Errorf("%w: seed [%v, %v]", rootfind.ErrInvalidRange, seedLo, seedHi)
	}

	e.resume = e.state
	e.state = stateEstimating
	defer e.unlock()

	lo, hi := seedLo, seedHi
	flo, err := e.eval(lo)
	if err != nil {
		return err
	}
	fhi, err := e.eval(hi)
	if err != nil {
		return err
	}

	for i := 0; i < maxBracketIterations; i++ {
		if flo*fhi < 0 {
			e.adoptBracket(lo, hi, i)
			return nil
		}

		w := hi - lo

		// low end
		nlo := lo - bracketGrowth*w
		fnlo, err := e.eval(nlo)
		if err != nil {
			return err
		}
		if fnlo*fhi < 0 {
			e.adoptBracket(nlo, hi, i+1)
			return nil
		}

		// high end
		nhi := hi + bracketGrowth*w
		fnhi, err := e.eval(nhi)
		if err != nil {
			return err
		}
		if flo*fnhi < 0 {
			e.adoptBracket(lo, nhi, i+1)
			return nil
		}

		lo, hi, flo, fhi = nlo, nhi, fnlo, fnhi
	}

	return fmt.Errorf("%w: %s: no sign change found within %d expansions of [%v, %v]",
		rootfind.ErrNoConvergence, e.name, maxBracketIterations, seedLo, seedHi)
}

func (e *estimator) adoptBracket(lo, hi float64, steps int) {
	e.bracket = rootfind.Bracket{Lo: lo, Hi: hi}

	log := logger.Logger()
	log.Debug().
		Str("algorithm", e.name).
		Float64("lo", lo).
		Float64("hi", hi).
		Int("expansions", steps).
		Msg("bracket found")
}
