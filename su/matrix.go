// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package su

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Identity returns the n×n identity colour matrix.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dagger returns the conjugate transpose of a, materialised as a new
// *mat.CDense, grounded on mat.CMatrix's H() implicit-conjugate-transpose
// convention (mat/cmatrix.go's Conjugate type).
func Dagger(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	d := mat.NewCDense(c, r, nil)
	d.Copy(a.H())
	return d
}

// Det2 returns the determinant of a 2×2 matrix.
func Det2(a mat.CMatrix) complex128 {
	return a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0)
}

// Det returns the determinant of a square matrix by Gaussian elimination
// with partial pivoting. gonum.org/v1/gonum/mat's LU/determinant
// machinery (lapack64.Getrf and friends) only covers real matrices, so
// this small complex determinant is hand-rolled; it is only ever used in
// tests (this package's and package gauge's), on small Nc×Nc colour
// matrices, never on a hot path.
func Det(a mat.CMatrix) complex128 {
	n, c := a.Dims()
	if n != c {
		panic("su: Det requires a square matrix")
	}
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			m[i][j] = a.At(i, j)
		}
	}
	det := complex(1, 0)
	for col := 0; col < n; col++ {
		piv := col
		best := cabs(m[col][col])
		for r := col + 1; r < n; r++ {
			if v := cabs(m[r][col]); v > best {
				piv, best = r, v
			}
		}
		if best == 0 {
			return 0
		}
		if piv != col {
			m[col], m[piv] = m[piv], m[col]
			det = -det
		}
		det *= m[col][col]
		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			for cc := col; cc < n; cc++ {
				m[r][cc] -= factor * m[col][cc]
			}
		}
	}
	return det
}

func cabs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// FrobeniusDistance returns the Frobenius norm of a-b, used by tests to
// check unitarity (‖X†X - I‖) and round-trip invariants.
func FrobeniusDistance(a, b mat.CMatrix) float64 {
	ra, ca := a.Dims()
	var sum float64
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			d := a.At(i, j) - b.At(i, j)
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}
