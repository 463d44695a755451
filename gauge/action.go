// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gauge

import (
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
	"gonum.org/v1/lgt/su"
)

// Action is the gauge-action contract the heatbath updater sweeps
// against: the inverse coupling β and the staple sum that weights a
// given link. Action implementations (Wilson, Rectangle) are small
// enough that the compiler devirtualises calls through this interface
// at typical inlining thresholds; the abstract surface is only the
// outer-loop contract.
type Action interface {
	// Beta returns the inverse coupling β > 0.
	Beta() float64

	// Staples returns the sum of link products ("staples") that weight
	// the link at linkIndex = site·Nd + direction.
	Staples(u *lattice.Field, linkIndex int) *mat.CDense
}

// LinkIndex encodes a (site, direction) pair as the flat index used
// throughout this package and package fermion: site·Nd + direction.
func LinkIndex(site, direction, nd int) int { return site*nd + direction }

// SiteOf returns the site component of a link index, given the number of
// directions Nd.
func SiteOf(linkIndex, nd int) int { return linkIndex / nd }

// DirOf returns the direction component of a link index, given the
// number of directions Nd.
func DirOf(linkIndex, nd int) int { return linkIndex % nd }

// step encodes a single link traversal in a path product: axis is the
// lattice axis, forward is true for a step along +axis (multiplying the
// forward link stored at the path's current site) and false for a step
// along -axis (multiplying the dagger of the link stored at the
// neighbouring site reached).
type step struct {
	axis    int
	forward bool
}

func fwd(axis int) step { return step{axis: axis, forward: true} }
func bwd(axis int) step { return step{axis: axis, forward: false} }

// pathProduct walks path starting at site, multiplying together the
// links (or link daggers) it traverses, and returns the resulting
// product matrix. It is the shared primitive behind plaquette and
// rectangle staple construction: a staple is the product of every link
// around a Wilson loop except the one being updated.
func pathProduct(u *lattice.Field, layout *lattice.Layout, site int, path []step) *mat.CDense {
	nc, _ := u.ElemDims()
	result := su.Identity(nc)
	tmp := mat.NewCDense(nc, nc, nil)
	cur := site
	for _, s := range path {
		var link *mat.CDense
		if s.forward {
			link = u.At(cur, s.axis)
			cur = layout.Shift(cur, s.axis, 1)
		} else {
			cur = layout.Shift(cur, s.axis, -1)
			link = su.Dagger(u.At(cur, s.axis))
		}
		tmp.Mul(result, link)
		result.Copy(tmp)
	}
	return result
}
