// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triplet provides a square sparse matrix in coordinate (triplet)
// format for assembling symmetric test operators.
package triplet

type triplet struct {
	i, j int
	v    float64
}

// Matrix is a square sparse matrix in coordinate format. Duplicate entries
// are allowed and accumulate in MulVec.
type Matrix struct {
	n    int
	data []triplet
}

// New returns an empty n×n matrix.
func New(n int) *Matrix {
	if n <= 0 {
		panic("triplet: dimension not positive")
	}
	return &Matrix{n: n}
}

// Dim returns the dimension of the matrix.
func (m *Matrix) Dim() int {
	return m.n
}

// Append adds v at position (i, j).
func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.n <= i {
		panic("triplet: row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("triplet: column index out of range")
	}
	m.data = append(m.data, triplet{i, j, v})
}

// AppendSym adds v at position (i, j) and, when i != j, also at (j, i),
// keeping the assembled matrix symmetric.
func (m *Matrix) AppendSym(i, j int, v float64) {
	m.Append(i, j, v)
	if i != j {
		m.Append(j, i, v)
	}
}

// MulVec computes m*x and stores the result into dst.
func (m *Matrix) MulVec(dst, x []float64) {
	if m.n != len(x) {
		panic("triplet: dimension mismatch")
	}
	if m.n != len(dst) {
		panic("triplet: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}
