// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CG implements the preconditioned conjugate gradient iterative method for
// solving the system of linear equations
//  Ax = b,
// where A is a symmetric positive-definite matrix.
//
// CG needs MatVec and PSolve matrix operations.
//
// When CalcEigenvalues is set, every iteration additionally feeds the scalar
// coefficients of the CG recurrence into a small symmetric tridiagonal
// (Lanczos) matrix whose spectrum approximates the spectrum of the
// preconditioned operator M⁻¹A. The approximation is queried through
// ConditionNumber, Eigenvalues and Tridiagonal after the solve; it is
// available without ever forming A or M⁻¹A explicitly.
//
// A CG value owns its buffers for the duration of a solve and must not be
// shared by concurrent solves. Distinct CG values are independent.
type CG struct {
	// CalcEigenvalues enables the accumulation of the Lanczos matrix during
	// the solve. It is read by Init, so it must be set before the solve
	// starts to take effect. When it is set, Init discards spectral data
	// from any previous solve.
	CalcEigenvalues bool

	first  bool
	resume int

	rho, rhoPrev float64
	alpha        float64

	z []float64
	p []float64
	q []float64

	tridiag Tridiag
}

// Init implements the Method interface.
func (cg *CG) Init(dim int) {
	if dim <= 0 {
		panic("krylov: dimension not positive")
	}

	cg.z = reuse(cg.z, dim)
	cg.p = reuse(cg.p, dim)
	cg.q = reuse(cg.q, dim)

	cg.first = true
	cg.resume = 1
	if cg.CalcEigenvalues {
		// A third of the default iteration budget. Convergence long before
		// the limit is the normal case, so reserving for the full budget
		// would be wasted on every solve.
		cg.tridiag.reset(2 * dim / 3)
	}
}

// Iterate implements the Method interface.
func (cg *CG) Iterate(ctx *Context) (Operation, error) {
	switch cg.resume {
	case 1:
		ctx.Src = ctx.Residual
		ctx.Dst = cg.z
		cg.resume = 2
		return PSolve, nil
		// Solve M z = r_{i-1}.
	case 2:
		cg.rho = floats.Dot(ctx.Residual, cg.z) // ρ_i = r_{i-1} · z
		if math.Abs(cg.rho) < dlamchE*dlamchE {
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return NoOperation, &BreakdownError{Quantity: "rho"}
		}
		if cg.first {
			copy(cg.p, cg.z) // p_1 = z
		} else {
			beta := cg.rho / cg.rhoPrev // β = ρ_i / ρ_{i-1}
			if cg.CalcEigenvalues {
				cg.tridiag.pushBeta(cg.alpha, beta)
			}
			floats.AddScaled(cg.z, beta, cg.p) // z = z + β p_{i-1}
			copy(cg.p, cg.z)                   // p_i = z
		}
		ctx.Src = cg.p
		ctx.Dst = cg.q
		cg.resume = 3
		return MatVec, nil
		// Compute q <- Ap_i.
	case 3:
		pq := floats.Dot(cg.p, cg.q)
		if pq < dlamchE*dlamchE {
			// p·Ap is positive for any SPD matrix A and p != 0.
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return NoOperation, &BreakdownError{Quantity: "pAp"}
		}
		cg.alpha = cg.rho / pq // α = ρ_i / (p_i · Ap_i)
		if cg.CalcEigenvalues {
			cg.tridiag.pushAlpha(cg.alpha)
		}
		floats.AddScaled(ctx.X, cg.alpha, cg.p)         // x_i = x_{i-1} + α p_i
		floats.AddScaled(ctx.Residual, -cg.alpha, cg.q) // r_i = r_{i-1} - α q
		ctx.Src = nil
		ctx.Dst = nil
		ctx.ResidualNorm = floats.Norm(ctx.Residual, 2)
		ctx.Converged = false
		cg.resume = 4
		return CheckResidualNorm, nil
	case 4:
		if ctx.Converged {
			// The β and Lanczos pair of the converging iteration are never
			// computed, no further search direction is needed.
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return EndIteration, nil
		}
		cg.rhoPrev = cg.rho
		cg.first = false
		cg.resume = 1
		return EndIteration, nil

	default:
		panic("krylov: CG.Init not called")
	}
}

// ConditionNumber returns the estimated spectral condition number of the
// preconditioned operator M⁻¹A, the ratio of the largest to the smallest
// eigenvalue of the accumulated Lanczos matrix.
//
// If no solve with CalcEigenvalues set has completed at least one iteration,
// it returns -1 and ErrNoSpectralData.
func (cg *CG) ConditionNumber() (float64, error) {
	if cg.tridiag.Steps() == 0 {
		return -1, ErrNoSpectralData
	}
	ev := cg.tridiag.Eigenvalues(nil)
	return ev[len(ev)-1] / ev[0], nil
}

// Eigenvalues returns the estimated eigenvalues of the preconditioned
// operator M⁻¹A in ascending order. They are the eigenvalues of the
// accumulated Lanczos matrix, so their number equals the number of completed
// iterations of the last estimating solve, not the dimension of the system.
//
// If dst is not nil, its length must equal the number of completed
// iterations, and the eigenvalues will be stored into dst.
//
// If no solve with CalcEigenvalues set has completed at least one iteration,
// it returns nil and ErrNoSpectralData.
func (cg *CG) Eigenvalues(dst []float64) ([]float64, error) {
	if cg.tridiag.Steps() == 0 {
		return nil, ErrNoSpectralData
	}
	return cg.tridiag.Eigenvalues(dst), nil
}

// Tridiagonal returns the Lanczos matrix accumulated during the last solve
// with CalcEigenvalues set, or nil if no iteration of such a solve has
// completed. The returned matrix is owned by cg and is valid until the next
// call to Init.
func (cg *CG) Tridiagonal() *Tridiag {
	if cg.tridiag.Steps() == 0 {
		return nil
	}
	return &cg.tridiag
}
