// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package su

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/qcdrand"
)

const tol = 1e-10

func isUnitary(t *testing.T, name string, x *mat.CDense) {
	t.Helper()
	n, _ := x.Dims()
	var xh mat.CDense
	xh.Mul(x.H(), x)
	if d := FrobeniusDistance(&xh, Identity(n)); !floats.EqualWithinAbs(d, 0, tol) {
		t.Errorf("%s: ‖X†X - I‖ = %v, want < %v", name, d, tol)
	}
}

func det2Near1(t *testing.T, name string, x *mat.CDense) {
	t.Helper()
	d := Det2(x)
	if !floats.EqualWithinAbs(real(d), 1, tol) || !floats.EqualWithinAbs(imag(d), 0, tol) {
		t.Errorf("%s: det = %v, want ≈ 1", name, d)
	}
}

func TestRandomSU2Invariants(t *testing.T) {
	t.Parallel()
	src := qcdrand.NewSource()
	src.Seed(7)
	for i := 0; i < 2000; i++ {
		x := RandomSU2(src)
		isUnitary(t, "RandomSU2", x)
		det2Near1(t, "RandomSU2", x)
	}
}

func TestHeatbathSU2Invariants(t *testing.T) {
	t.Parallel()
	src := qcdrand.NewSource()
	src.Seed(11)
	for _, w := range []float64{0.01, 0.5, 1, 5, 20} {
		for i := 0; i < 500; i++ {
			x := HeatbathSU2(src, w)
			isUnitary(t, "HeatbathSU2", x)
			det2Near1(t, "HeatbathSU2", x)
		}
	}
}

func TestHeatbathSU2PanicsOnNonPositiveWeight(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive weight")
		}
	}()
	HeatbathSU2(qcdrand.NewSource(), 0)
}

func TestRandomSUNInvariants(t *testing.T) {
	t.Parallel()
	src := qcdrand.NewSource()
	src.Seed(13)
	for _, nc := range []int{2, 3, 4} {
		for i := 0; i < 200; i++ {
			u := RandomSUN(src, nc)
			var uh mat.CDense
			uh.Mul(u.H(), u)
			if d := FrobeniusDistance(&uh, Identity(nc)); !floats.EqualWithinAbs(d, 0, tol) {
				t.Errorf("RandomSUN(nc=%d): ‖U†U - I‖ = %v", nc, d)
			}
			if det := Det(u); !floats.EqualWithinAbs(real(det), 1, tol) || !floats.EqualWithinAbs(imag(det), 0, tol) {
				t.Errorf("RandomSUN(nc=%d): det = %v, want ≈ 1", nc, det)
			}
		}
	}
}
