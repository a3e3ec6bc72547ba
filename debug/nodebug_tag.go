// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

//go:build !debug

package debug

// Debug is true when the debug build tag is set.
const Debug = false
