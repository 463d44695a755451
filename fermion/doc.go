// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fermion implements the nearest-neighbour hopping stencil of a
// Wilson-type lattice fermion discretisation, the associated fermion
// action contract, and a conjugate-gradient solver for the resulting
// normal equations M†M x = M† b.
//
// A Hopping precomputes, once per link field, a scattered copy of the
// gauge links together with a neighbour table, and then applies the
// stencil to a spinor Field using caller-supplied spin-projector
// matrices. Wilson wraps a Hopping with the mass term and the γ₅
// hermiticity pairing to expose the polymorphic Action contract that
// ConjugateGradient consumes.
package fermion // import "gonum.org/v1/lgt/fermion"
