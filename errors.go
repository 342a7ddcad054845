// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import "errors"

var (
	// ErrIterationLimit is returned by LinearSolve when the iteration limit
	// has been reached without meeting the tolerance. It is distinct from a
	// breakdown so that the caller can decide whether an inaccurate
	// solution is still usable.
	ErrIterationLimit = errors.New("krylov: iteration limit reached")

	// ErrNoSpectralData is returned by spectral queries on a CG value that
	// has not completed at least one iteration of a solve with
	// CalcEigenvalues set.
	ErrNoSpectralData = errors.New("krylov: no spectral data, set CG.CalcEigenvalues and run a solve first")
)

// BreakdownError signals that an iterative method encountered a denominator
// too close to zero in its recurrence. For CG this means that p·Ap or r·z
// vanished, which cannot happen when both the system matrix and the
// preconditioner are symmetric positive-definite, so a breakdown indicates
// that the input violates that requirement.
type BreakdownError struct {
	// Quantity names the vanishing denominator.
	Quantity string
}

func (e *BreakdownError) Error() string {
	return "krylov: " + e.Quantity + " breakdown"
}
