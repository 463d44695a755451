// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package su

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/qcdrand"
)

func TestSubgroupPositionNc3(t *testing.T) {
	t.Parallel()
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for k, w := range want {
		i, j := SubgroupPosition(3, k)
		if i != w[0] || j != w[1] {
			t.Errorf("SubgroupPosition(3, %d) = (%d,%d), want (%d,%d)", k, i, j, w[0], w[1])
		}
	}
}

func TestSubgroupPositionPanicsOutOfRange(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range subgroup index")
		}
	}()
	SubgroupPosition(3, 3)
}

func TestSubgroupPositionCoversAllPairs(t *testing.T) {
	t.Parallel()
	const nc = 5
	seen := make(map[[2]int]bool)
	for k := 0; k < NumSubgroups(nc); k++ {
		i, j := SubgroupPosition(nc, k)
		if i >= j {
			t.Fatalf("pair (%d,%d) not in i<j order", i, j)
		}
		seen[[2]int{i, j}] = true
	}
	for i := 0; i < nc; i++ {
		for j := i + 1; j < nc; j++ {
			if !seen[[2]int{i, j}] {
				t.Errorf("pair (%d,%d) never produced", i, j)
			}
		}
	}
}

// TestExtractInsertRoundTrip checks that inserting the normalised
// extraction of subgroup k of a random SU(Nc) matrix back into that
// subgroup reproduces the block's projection onto SU(2).
func TestExtractInsertRoundTrip(t *testing.T) {
	t.Parallel()
	src := qcdrand.NewSource()
	src.Seed(23)
	const nc = 3
	for trial := 0; trial < 200; trial++ {
		u := RandomSUN(src, nc)
		for k := 0; k < NumSubgroups(nc); k++ {
			r := ExtractSU2(u, k)
			det := Det2(r)
			sqrtDet := cmplx.Sqrt(det)
			var normalised mat.CDense
			normalised.Scale(1/sqrtDet, r)

			i, j := SubgroupPosition(nc, k)
			got := InsertSU2(&normalised, nc, k)
			if d := FrobeniusDistance(sub2(got, i, j), su2Projection(u, i, j)); !floats.EqualWithinAbs(d, 0, 1e-8) {
				t.Errorf("trial %d subgroup %d: round trip mismatch, ‖Δ‖ = %v", trial, k, d)
			}
		}
	}
}

// sub2 extracts the 2×2 submatrix at rows/cols (i,j) of m.
func sub2(m mat.CMatrix, i, j int) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		m.At(i, i), m.At(i, j),
		m.At(j, i), m.At(j, j),
	})
}

// su2Projection returns the 2×2 block at rows/cols (i,j) of m reduced to
// its a0·σ0 + i(a1·σ1 + a2·σ2 + a3·σ3) part with real coefficients,
// scaled to unit norm so that it lies in SU(2).
func su2Projection(m mat.CMatrix, i, j int) *mat.CDense {
	r := sub2(m, i, j)
	c0 := (r.At(0, 0) + r.At(1, 1)) / 2
	c1 := (r.At(0, 1) + r.At(1, 0)) / 2
	c2 := (r.At(1, 0) - r.At(0, 1)) / complex(0, 2)
	c3 := (r.At(0, 0) - r.At(1, 1)) / 2
	a0, a1, a2, a3 := real(c0), imag(c1), imag(c2), imag(c3)
	n := math.Sqrt(a0*a0 + a1*a1 + a2*a2 + a3*a3)
	return ConstructSU2(a0/n, a1/n, a2/n, a3/n)
}

