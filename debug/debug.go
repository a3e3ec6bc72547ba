// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package debug gates the per-iteration tracing of the estimators behind
// the "debug" build tag, so that release builds pay nothing for it.
package debug

import "fmt"

// Assert panics with msg when the condition does not hold. It compiles to
// nothing unless the debug build tag is set.
func Assert(condition bool, msg string, args ...any) {
	if Debug && !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, args...))
	}
}
