// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/floats"
)

// TestCGProperties verifies properties of the solver that must hold for any
// well-conditioned SPD system using property-based testing.
func TestCGProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("identical solves produce identical iterates", prop.ForAll(
		func(seed int64, n int) bool {
			rnd := rand.New(rand.NewSource(seed))
			A := randomSPD(n, float64(n), rnd)
			b := make([]float64, n)
			A.MatVec(b, ones(n))

			r1, err1 := LinearSolve(A, b, &CG{}, Settings{Tolerance: 1e-12})
			r2, err2 := LinearSolve(A, b, &CG{}, Settings{Tolerance: 1e-12})
			if err1 != nil || err2 != nil {
				return false
			}
			return r1.Stats.Iterations == r2.Stats.Iterations &&
				r1.Stats.MatVec == r2.Stats.MatVec &&
				floats.Equal(r1.X, r2.X)
		},
		gen.Int64(),
		gen.IntRange(1, 30),
	))

	properties.Property("residual norm is non-increasing", prop.ForAll(
		func(seed int64, n int) bool {
			rnd := rand.New(rand.NewSource(seed))
			// A strong diagonal shift keeps the condition number small,
			// the property is stated for well-conditioned systems only.
			A := randomSPD(n, 2*float64(n), rnd)
			b := make([]float64, n)
			A.MatVec(b, ones(n))

			// The method hands the current residual to the preconditioner
			// once per iteration, so an identity PSolve observes the whole
			// residual history.
			var norms []float64
			_, err := LinearSolve(A, b, &CG{}, Settings{
				Tolerance: 1e-12,
				PSolve: func(dst, rhs []float64) error {
					norms = append(norms, floats.Norm(rhs, 2))
					copy(dst, rhs)
					return nil
				},
			})
			if err != nil {
				return false
			}
			for i := 1; i < len(norms); i++ {
				if norms[i] > norms[i-1]*(1+1e-8) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}
