// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// rootfind is a CLI front end to the root estimators: it solves
// polynomials given their coefficients.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rootfind",
	Short: "estimate roots of polynomials",
	Long: `rootfind estimates the roots of a polynomial given its coefficients
in ascending powers of x. Degrees 1 and 2 are solved in closed form,
higher degrees with Laguerre's method.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
