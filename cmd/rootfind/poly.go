// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/rootfind/polynomial"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var polyCmd = &cobra.Command{
	Use:   "poly c0 c1 ... cN",
	Short: "solve a polynomial with the given coefficients (ascending powers)",
	Long: `poly estimates all roots of the polynomial
	c0 + c1*x + ... + cN*x^N.

Coefficients are real by default; with --complex they are parsed with
strconv.ParseComplex (e.g. "1+2i"). With --stdin, one polynomial per
input line is read instead of positional arguments and the lines are
solved concurrently.`,
	RunE: cmdPoly,
}

var (
	fComplex   bool
	fJSON      bool
	fStdin     bool
	fNoPolish  bool
	fTolerance float64
)

func init() {
	rootCmd.AddCommand(polyCmd)
	polyCmd.Flags().BoolVar(&fComplex, "complex", false, "parse coefficients as complex numbers")
	polyCmd.Flags().BoolVar(&fJSON, "json", false, "emit roots as JSON")
	polyCmd.Flags().BoolVar(&fStdin, "stdin", false, "read one polynomial per line from stdin")
	polyCmd.Flags().BoolVar(&fNoPolish, "no-polish", false, "skip polishing Laguerre roots against the original polynomial")
	polyCmd.Flags().Float64Var(&fTolerance, "tolerance", 0, "convergence tolerance (0 uses the library default)")
}

func cmdPoly(cmd *cobra.Command, args []string) error {
	if !fStdin {
		roots, err := solve(args)
		if err != nil {
			return err
		}
		printRoots(os.Stdout, roots)
		return nil
	}

	var lines [][]string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			lines = append(lines, fields)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// each line gets its own estimator instance, so the instances'
	// single-owner contract holds across goroutines
	results := make([][]complex128, len(lines))
	var g errgroup.Group
	for i, fields := range lines {
		i, fields := i, fields
		g.Go(func() error {
			roots, err := solve(fields)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = roots
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, roots := range results {
		printRoots(os.Stdout, roots)
	}
	return nil
}

func solve(args []string) ([]complex128, error) {
	coeffs, err := parseCoefficients(args)
	if err != nil {
		return nil, err
	}

	realc := realCoefficients(coeffs)
	switch {
	case realc != nil && len(coeffs) == 2:
		l, err := polynomial.NewLinearFromCoefficients(realc)
		if err != nil {
			return nil, err
		}
		if err := l.Estimate(); err != nil {
			return nil, err
		}
		r, err := l.Root()
		if err != nil {
			return nil, err
		}
		return []complex128{complex(r, 0)}, nil

	case len(coeffs) == 3:
		q := polynomial.NewQuadratic()
		if realc != nil {
			err = q.SetCoefficients(realc)
		} else {
			err = q.SetComplexCoefficients(coeffs)
		}
		if err != nil {
			return nil, err
		}
		if fTolerance > 0 {
			if err := q.SetTolerance(fTolerance); err != nil {
				return nil, err
			}
		}
		if err := q.Estimate(); err != nil {
			return nil, err
		}
		return q.Roots()

	default:
		l, err := polynomial.NewLaguerreFromCoefficients(coeffs)
		if err != nil {
			return nil, err
		}
		if fTolerance > 0 {
			if err := l.SetTolerance(fTolerance); err != nil {
				return nil, err
			}
		}
		if err := l.SetPolish(!fNoPolish); err != nil {
			return nil, err
		}
		if err := l.Estimate(); err != nil {
			return nil, err
		}
		return l.Roots()
	}
}

func parseCoefficients(args []string) ([]complex128, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("need at least 2 coefficients, got %d -- rootfind poly -h for help", len(args))
	}
	coeffs := make([]complex128, len(args))
	for i, a := range args {
		if fComplex {
			c, err := strconv.ParseComplex(a, 128)
			if err != nil {
				return nil, fmt.Errorf("can't parse coefficient %q: %w", a, err)
			}
			coeffs[i] = c
			continue
		}
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("can't parse coefficient %q: %w", a, err)
		}
		coeffs[i] = complex(v, 0)
	}
	return coeffs, nil
}

// realCoefficients returns the coefficients as float64 when they are all
// real, nil otherwise.
func realCoefficients(coeffs []complex128) []float64 {
	res := make([]float64, len(coeffs))
	for i, c := range coeffs {
		if imag(c) != 0 {
			return nil
		}
		res[i] = real(c)
	}
	return res
}

type jsonRoot struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func printRoots(w *os.File, roots []complex128) {
	if fJSON {
		out := make([]jsonRoot, len(roots))
		for i, r := range roots {
			out[i] = jsonRoot{Re: real(r), Im: imag(r)}
		}
		enc := json.NewEncoder(w)
		_ = enc.Encode(struct {
			Roots []jsonRoot `json:"roots"`
		}{Roots: out})
		return
	}
	for i, r := range roots {
		if imag(r) == 0 {
			fmt.Fprintf(w, "x%d = %v\n", i, real(r))
			continue
		}
		fmt.Fprintf(w, "x%d = %v\n", i, r)
	}
}
