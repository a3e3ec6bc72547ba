// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package rootfind

import "fmt"

// Bracket is an interval [Lo, Hi] known or hypothesized to contain a sign
// change of the target function. Lo <= Hi always holds for a Bracket built
// through NewBracket; a zero-width bracket is degenerate but valid.
type Bracket struct {
	Lo, Hi float64
}

// NewBracket returns the bracket [lo, hi]. It fails with ErrInvalidRange
// when lo > hi.
func NewBracket(lo, hi float64) (Bracket, error) {
	if lo > hi {
		return Bracket{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	return Bracket{Lo: lo, Hi: hi}, nil
}

// Width returns Hi - Lo.
func (b Bracket) Width() float64 {
	return b.Hi - b.Lo
}

// Midpoint returns the centre of the bracket.
func (b Bracket) Midpoint() float64 {
	return 0.5 * (b.Lo + b.Hi)
}

func (b Bracket) String() string {
	return fmt.Sprintf("[%v, %v]", b.Lo, b.Hi)
}
