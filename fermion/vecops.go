// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import (
	"gonum.org/v1/gonum/blas/cblas128"

	"gonum.org/v1/lgt/lattice"
)

// asVector views a Field's contiguous backing storage as a
// gonum.org/v1/gonum/blas/cblas128.Vector, so that ConjugateGradient's
// whole-field arithmetic runs through the same level-1 complex BLAS
// calls (Dotc, Axpy) mat.CDense's own arithmetic is built on,
// rather than hand-rolled loops.
func asVector(f *lattice.Field) cblas128.Vector {
	return cblas128.Vector{Inc: 1, Data: f.Raw()}
}

// dot returns ⟨a,b⟩ = conj(a)·b summed over every component of a and b:
// inner products are always conjugate-linear in the first argument.
func dot(a, b *lattice.Field) complex128 {
	return cblas128.Dotc(len(a.Raw()), asVector(a), asVector(b))
}

// normSq returns ⟨a,a⟩, which is real for any a.
func normSq(a *lattice.Field) float64 {
	return real(dot(a, a))
}

// axpy computes y ← y + alpha·x in place.
func axpy(alpha complex128, x, y *lattice.Field) {
	cblas128.Axpy(len(x.Raw()), alpha, asVector(x), asVector(y))
}
