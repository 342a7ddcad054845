// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dok provides a square sparse matrix in dictionary-of-keys format
// for assembling symmetric test operators and extracting diagonal (Jacobi)
// preconditioners.
package dok

type index struct {
	row, col int
}

// DOK is a square sparse matrix in dictionary-of-keys format.
type DOK struct {
	n    int
	data map[index]float64
}

// New returns an empty n×n matrix.
func New(n int) *DOK {
	if n <= 0 {
		panic("dok: dimension not positive")
	}
	return &DOK{
		n:    n,
		data: make(map[index]float64),
	}
}

// Dim returns the dimension of the matrix.
func (m *DOK) Dim() int {
	return m.n
}

// At returns the element at position (i, j).
func (m *DOK) At(i, j int) float64 {
	m.check(i, j)
	return m.data[index{i, j}]
}

// SetAt sets the element at position (i, j) to v.
func (m *DOK) SetAt(i, j int, v float64) {
	m.check(i, j)
	m.data[index{i, j}] = v
}

// AddAt accumulates v into the element at position (i, j).
func (m *DOK) AddAt(i, j int, v float64) {
	m.check(i, j)
	m.data[index{i, j}] += v
}

// SetSym sets the elements at positions (i, j) and (j, i) to v.
func (m *DOK) SetSym(i, j int, v float64) {
	m.SetAt(i, j, v)
	if i != j {
		m.SetAt(j, i, v)
	}
}

// Diagonal returns the main diagonal of the matrix as a newly allocated
// slice.
func (m *DOK) Diagonal() []float64 {
	d := make([]float64, m.n)
	for i := range d {
		d[i] = m.data[index{i, i}]
	}
	return d
}

// MulVec computes m*x and stores the result into dst.
func (m *DOK) MulVec(dst, x []float64) {
	if m.n != len(x) {
		panic("dok: dimension mismatch")
	}
	if m.n != len(dst) {
		panic("dok: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for ij, aij := range m.data {
		dst[ij.row] += aij * x[ij.col]
	}
}

func (m *DOK) check(i, j int) {
	if i < 0 || m.n <= i {
		panic("dok: row index out of range")
	}
	if j < 0 || m.n <= j {
		panic("dok: column index out of range")
	}
}
