// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import "errors"

// ErrNonPositiveExtent is panicked by NewLayout when an axis extent is not
// a positive integer.
var ErrNonPositiveExtent = errors.New("lattice: non-positive axis extent")

// ErrRank is panicked by operations given a coordinate slice whose length
// does not match the layout's rank.
var ErrRank = errors.New("lattice: coordinate rank mismatch")

// ErrCoordRange is panicked by SiteIndexOf when given a coordinate outside
// the declared extent of its axis, and by SiteCoordsOf when given a site
// index outside [0, Volume); callers that may pass out-of-range
// coordinates must call Sanitise first.
var ErrCoordRange = errors.New("lattice: coordinate out of range")

// Layout holds the shape of a periodic hypercubic lattice and provides the
// canonical bijection between a rank-tuple coordinate, a linear site index
// in lexicographic order, and an array index in storage order.
//
// For Layout the array index equals the site index: it is the baseline,
// canonical storage order. Layout is immutable once constructed and is
// safe for concurrent read-only use.
type Layout struct {
	shape  []int
	stride []int
	volume int
}

// NewLayout returns a Layout for a lattice with the given per-axis
// extents. shape must have at least one element and every extent must be
// positive; NewLayout panics if shape is empty, and with
// ErrNonPositiveExtent if any extent is not positive.
func NewLayout(shape []int) *Layout {
	if len(shape) == 0 {
		panic("lattice: layout must have rank at least 1")
	}
	sh := make([]int, len(shape))
	copy(sh, shape)
	for _, n := range sh {
		if n <= 0 {
			panic(ErrNonPositiveExtent)
		}
	}
	stride := make([]int, len(sh))
	// Last axis varies fastest (row-major / lexicographic convention).
	s := 1
	for axis := len(sh) - 1; axis >= 0; axis-- {
		stride[axis] = s
		s *= sh[axis]
	}
	return &Layout{shape: sh, stride: stride, volume: s}
}

// NumDims returns the rank of the lattice.
func (l *Layout) NumDims() int { return len(l.shape) }

// Volume returns the total number of sites.
func (l *Layout) Volume() int { return l.volume }

// Shape returns a copy of the per-axis extents.
func (l *Layout) Shape() []int {
	sh := make([]int, len(l.shape))
	copy(sh, l.shape)
	return sh
}

// Extent returns the extent of the given axis.
func (l *Layout) Extent(axis int) int { return l.shape[axis] }

// SiteCoordsOf decomposes a site index into its rank-tuple coordinate, in
// declared axis order, using a mixed-radix decomposition against Shape.
// SiteCoordsOf panics if index is outside [0, Volume).
func (l *Layout) SiteCoordsOf(index int) []int {
	if index < 0 || index >= l.volume {
		panic(ErrCoordRange)
	}
	coords := make([]int, len(l.shape))
	for axis := len(l.shape) - 1; axis >= 0; axis-- {
		coords[axis] = index % l.shape[axis]
		index /= l.shape[axis]
	}
	return coords
}

// SiteIndexOf returns the linear site index of coords. SiteIndexOf panics
// with ErrCoordRange unless every component of coords lies within its
// axis's extent; callers should call Sanitise first for coordinates that
// may be out of range, e.g. as produced by a neighbour shift.
func (l *Layout) SiteIndexOf(coords []int) int {
	if len(coords) != len(l.shape) {
		panic(ErrRank)
	}
	idx := 0
	for axis, c := range coords {
		if c < 0 || c >= l.shape[axis] {
			panic(ErrCoordRange)
		}
		idx += c * l.stride[axis]
	}
	return idx
}

// ArrayIndexOf maps a site index to its array (storage-order) index. For
// the canonical lexicographic Layout this is the identity.
func (l *Layout) ArrayIndexOf(siteIndex int) int { return siteIndex }

// SiteIndexOfArray maps an array index to its site index. For the
// canonical lexicographic Layout this is the identity.
func (l *Layout) SiteIndexOfArray(arrayIndex int) int { return arrayIndex }

// Sanitise reduces each component of coords modulo its axis extent using
// mathematical modulo (always non-negative), so that signed or
// out-of-range inputs wrap correctly under periodicity. Sanitise returns a
// new slice; coords is not modified.
func (l *Layout) Sanitise(coords []int) []int {
	if len(coords) != len(l.shape) {
		panic(ErrRank)
	}
	out := make([]int, len(coords))
	for axis, c := range coords {
		n := l.shape[axis]
		m := c % n
		if m < 0 {
			m += n
		}
		out[axis] = m
	}
	return out
}

// Shift returns the site index reached from siteIndex by moving delta
// steps along axis, wrapping periodically.
func (l *Layout) Shift(siteIndex, axis, delta int) int {
	coords := l.SiteCoordsOf(siteIndex)
	coords[axis] += delta
	return l.SiteIndexOf(l.Sanitise(coords))
}
