// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import "testing"

func TestLayoutBijection(t *testing.T) {
	t.Parallel()
	l := NewLayout([]int{2, 3, 4, 5})
	if l.Volume() != 120 {
		t.Fatalf("unexpected volume: got %d want 120", l.Volume())
	}
	if l.NumDims() != 4 {
		t.Fatalf("unexpected rank: got %d want 4", l.NumDims())
	}
	for idx := 0; idx < l.Volume(); idx++ {
		coords := l.SiteCoordsOf(idx)
		got := l.SiteIndexOf(coords)
		if got != idx {
			t.Errorf("round trip failed for index %d: coords %v gave back %d", idx, coords, got)
		}
	}
}

func TestLayoutArrayIndexIdentity(t *testing.T) {
	t.Parallel()
	l := NewLayout([]int{4, 4, 4, 4})
	for idx := 0; idx < l.Volume(); idx++ {
		if l.ArrayIndexOf(idx) != idx {
			t.Errorf("array index not identity at %d", idx)
		}
		if l.SiteIndexOfArray(idx) != idx {
			t.Errorf("site index of array not identity at %d", idx)
		}
	}
}

func TestLayoutSanitiseWraps(t *testing.T) {
	t.Parallel()
	l := NewLayout([]int{4, 4, 4, 4})
	cases := []struct {
		in, want []int
	}{
		{[]int{-1, 0, 0, 0}, []int{3, 0, 0, 0}},
		{[]int{4, 0, 0, 0}, []int{0, 0, 0, 0}},
		{[]int{-5, 0, 0, 0}, []int{3, 0, 0, 0}},
		{[]int{9, 0, 0, 0}, []int{1, 0, 0, 0}},
	}
	for _, c := range cases {
		got := l.Sanitise(c.in)
		for axis := range got {
			if got[axis] != c.want[axis] {
				t.Errorf("Sanitise(%v) = %v, want %v", c.in, got, c.want)
				break
			}
		}
	}
}

func TestLayoutShift(t *testing.T) {
	t.Parallel()
	l := NewLayout([]int{4, 4, 4, 4})
	// Site 0 shifted backward along axis 0 must wrap to the last slice.
	site := l.Shift(0, 0, -1)
	coords := l.SiteCoordsOf(site)
	if coords[0] != 3 {
		t.Fatalf("Shift wraparound failed: coords %v", coords)
	}
	// Shifting forward then backward returns to the origin.
	fwd := l.Shift(5, 2, 1)
	back := l.Shift(fwd, 2, -1)
	if back != 5 {
		t.Fatalf("Shift forward/backward round trip failed: got %d want 5", back)
	}
}

func TestNewLayoutPanicsOnBadExtent(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive extent")
		}
	}()
	NewLayout([]int{4, 0, 4})
}
