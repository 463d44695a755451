// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/lgt/lattice"
	"gonum.org/v1/lgt/su"
)

// scaledIdentity is a minimal Action used to test CG against a known
// closed-form solution: M = c·I, self-adjoint under the trivial
// (identity) hermiticity pairing.
type scaledIdentity struct{ c complex128 }

func (a scaledIdentity) ApplyFull(out, in *lattice.Field) {
	od, id := out.Raw(), in.Raw()
	for i := range od {
		od[i] = a.c * id[i]
	}
}
func (a scaledIdentity) ApplyHermiticity(x *lattice.Field)  {}
func (a scaledIdentity) RemoveHermiticity(x *lattice.Field) {}

func pointSource(l *lattice.Layout, ns, nc int) *lattice.Field {
	f := lattice.NewField(l, ns, nc, 1)
	f.Raw()[0] = 1
	return f
}

// TestConjugateGradientProportionalAction checks that CG on A = c·I
// converges in exactly one iteration and returns x = b/c (since
// M = M† = c·I here, the normal equation is c²·x = c·b).
func TestConjugateGradientProportionalAction(t *testing.T) {
	t.Parallel()
	l := lattice.NewLayout([]int{8, 4, 4, 4})
	rhs := pointSource(l, 4, 3)

	a := scaledIdentity{c: complex(2.0, 0)}
	x, residual, iters := ConjugateGradient(a, rhs, 1000, 1e-10)

	if iters != 1 {
		t.Fatalf("iterations = %d, want 1", iters)
	}
	if !floats.EqualWithinAbs(residual, 0, 1e-10) {
		t.Fatalf("residual = %v, want ≈ 0", residual)
	}
	got := x.Raw()[0]
	if !floats.EqualWithinAbs(real(got), 0.5, 1e-10) || !floats.EqualWithinAbs(imag(got), 0, 1e-10) {
		t.Fatalf("solution[0] = %v, want 0.5+0i", got)
	}
	for i := 1; i < len(x.Raw()); i++ {
		if v := x.Raw()[i]; v != 0 {
			t.Fatalf("solution[%d] = %v, want 0", i, v)
		}
	}
}

// TestConjugateGradientWilsonConverges sets up a Wilson fermion action
// on the identity gauge field: CG must converge to the requested
// tolerance within the iteration cap, and the result must satisfy the
// normal equation it was solving.
func TestConjugateGradientWilsonConverges(t *testing.T) {
	t.Parallel()
	shape := []int{8, 4, 4, 4}
	l := lattice.NewLayout(shape)
	u := lattice.NewFieldFilled(l, len(shape), su.Identity(3))
	a := NewWilson(0.1, u, nil)

	rhs := pointSource(l, NumSpins, 3)
	const tol = 1e-8
	x, residual, iters := ConjugateGradient(a, rhs, 1000, tol)

	if iters >= 1000 {
		t.Fatalf("CG did not converge within 1000 iterations (residual = %v)", residual)
	}
	if !floats.EqualWithinAbs(residual, 0, tol*10) {
		// Generous margin: the loop's own threshold already enforces
		// residual² ≤ tol²·‖b‖², this just sanity-checks the return value
		// is consistent with it.
		t.Fatalf("residual = %v exceeds tolerance %v", residual, tol)
	}

	// The solution must satisfy the normal equation to within tolerance.
	mp := lattice.NewField(l, NumSpins, 3, 1)
	a.ApplyFull(mp, x)
	a.ApplyHermiticity(mp)
	mdagmx := lattice.NewField(l, NumSpins, 3, 1)
	a.ApplyFull(mdagmx, mp)
	a.ApplyHermiticity(mdagmx)

	mdagb := lattice.NewField(l, NumSpins, 3, 1)
	rt := rhs.Clone()
	a.ApplyHermiticity(rt)
	a.ApplyFull(mdagb, rt)
	a.ApplyHermiticity(mdagb)

	var maxDiff float64
	for i := range mdagmx.Raw() {
		d := mdagmx.Raw()[i] - mdagb.Raw()[i]
		if m := math.Hypot(real(d), imag(d)); m > maxDiff {
			maxDiff = m
		}
	}
	if !floats.EqualWithinAbs(maxDiff, 0, 1e-4) {
		t.Fatalf("normal equation residual %v too large", maxDiff)
	}
}

// TestGamma5HermiticityRoundTrip checks that ApplyHermiticity followed
// by RemoveHermiticity restores a spinor field exactly.
func TestGamma5HermiticityRoundTrip(t *testing.T) {
	t.Parallel()
	shape := []int{4, 4, 4, 4}
	l := lattice.NewLayout(shape)
	u := lattice.NewFieldFilled(l, len(shape), su.Identity(3))
	a := NewWilson(0.2, u, nil)

	x := lattice.NewField(l, NumSpins, 3, 1)
	data := x.Raw()
	for i := range data {
		data[i] = complex(float64(i%7)-3, float64(i%5)-2)
	}
	orig := x.Clone()

	a.ApplyHermiticity(x)
	a.RemoveHermiticity(x)

	for i := range data {
		d := data[i] - orig.Raw()[i]
		if !floats.EqualWithinAbs(math.Hypot(real(d), imag(d)), 0, 1e-12) {
			t.Fatalf("component %d: round trip gave %v, want %v", i, data[i], orig.Raw()[i])
		}
	}
}
