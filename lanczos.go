// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tridiag is the symmetric tridiagonal Lanczos matrix implied by the scalar
// coefficients of the CG recurrence. After k completed CG iterations its
// diagonal holds
//  delta_i = β_{i-1}/α_{i-1} + 1/α_i
// and its first off-diagonal holds
//  gamma_i = -sqrt(β_i)/α_i,
// with β_0/α_0 taken as zero. The eigenvalues of the k×k matrix approximate
// the extreme eigenvalues of the preconditioned operator M⁻¹A.
//
// The diagonal entry of iteration i couples two CG iterations: β_{i-1}/α_{i-1}
// is known at the end of iteration i-1, while 1/α_i becomes known only during
// iteration i. The half-built entry is held in pending and committed by
// pushAlpha, so delta always describes the consistent tridiagonal matrix of
// the completed iterations, regardless of whether the solve ended by
// convergence or at the iteration limit.
type Tridiag struct {
	delta   []float64 // diagonal
	gamma   []float64 // first off-diagonal
	pending float64   // partial next diagonal entry, β_i/α_i
}

func (t *Tridiag) reset(capacity int) {
	if cap(t.delta) < capacity {
		t.delta = make([]float64, 0, capacity)
		t.gamma = make([]float64, 0, capacity)
	} else {
		t.delta = t.delta[:0]
		t.gamma = t.gamma[:0]
	}
	t.pending = 0
}

// pushAlpha commits the diagonal entry of the current iteration.
func (t *Tridiag) pushAlpha(alpha float64) {
	t.delta = append(t.delta, t.pending+1/alpha)
	t.pending = 0
}

// pushBeta records the off-diagonal entry coupling the previous iteration to
// the current one and starts the next diagonal entry.
func (t *Tridiag) pushBeta(alpha, beta float64) {
	t.gamma = append(t.gamma, -math.Sqrt(beta)/alpha)
	t.pending = beta / alpha
}

// Steps returns the number of completed CG iterations, that is, the dimension
// of the matrix.
func (t *Tridiag) Steps() int {
	return len(t.delta)
}

// SymDense returns the matrix in explicit dense symmetric form. The dimension
// equals the iteration count of the solve that produced the coefficients, so
// it is small relative to the system dimension and a dense eigensolver on it
// is cheap.
//
// SymDense panics if no iteration has completed.
func (t *Tridiag) SymDense() *mat.SymDense {
	n := len(t.delta)
	if n == 0 {
		panic("krylov: empty Lanczos matrix")
	}
	s := mat.NewSymDense(n, nil)
	for i, d := range t.delta {
		s.SetSym(i, i, d)
	}
	for i, g := range t.gamma {
		s.SetSym(i, i+1, g)
	}
	return s
}

// Eigenvalues returns the eigenvalues of the matrix in ascending order. If
// dst is not nil, its length must equal Steps, and the eigenvalues will be
// stored into dst.
//
// Eigenvalues panics if no iteration has completed.
func (t *Tridiag) Eigenvalues(dst []float64) []float64 {
	var es mat.EigenSym
	if ok := es.Factorize(t.SymDense(), false); !ok {
		panic("krylov: Lanczos eigendecomposition failed")
	}
	return es.Values(dst)
}

// MinEigenvalue returns the smallest eigenvalue of the matrix.
//
// MinEigenvalue panics if no iteration has completed.
func (t *Tridiag) MinEigenvalue() float64 {
	ev := t.Eigenvalues(nil)
	return ev[0]
}

// MaxEigenvalue returns the largest eigenvalue of the matrix.
//
// MaxEigenvalue panics if no iteration has completed.
func (t *Tridiag) MaxEigenvalue() float64 {
	ev := t.Eigenvalues(nil)
	return ev[len(ev)-1]
}
