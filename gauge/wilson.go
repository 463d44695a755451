// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gauge

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
)

// ErrNonPositiveBeta is panicked by NewWilson and NewRectangle when given
// a non-positive β.
var ErrNonPositiveBeta = errors.New("gauge: beta must be positive")

// Wilson is the standard Wilson plaquette gauge action.
type Wilson struct {
	beta float64
}

// NewWilson returns a Wilson action with inverse coupling beta. NewWilson
// panics with ErrNonPositiveBeta if beta is not positive.
func NewWilson(beta float64) *Wilson {
	if beta <= 0 {
		panic(ErrNonPositiveBeta)
	}
	return &Wilson{beta: beta}
}

// Beta returns the action's inverse coupling.
func (w *Wilson) Beta() float64 { return w.beta }

// Staples returns the sum, over directions perpendicular to the link's
// own direction, of the two plaquette staples (the "up" and "down"
// staple) that close a plaquette through that link.
func (w *Wilson) Staples(u *lattice.Field, linkIndex int) *mat.CDense {
	return wilsonStaples(u, linkIndex)
}

// wilsonStaples computes the bare (β-independent) Wilson staple sum; it
// is shared with Rectangle, which weights it by C0.
func wilsonStaples(u *lattice.Field, linkIndex int) *mat.CDense {
	layout := u.Layout()
	nd := u.SiteSize()
	site := SiteOf(linkIndex, nd)
	mu := DirOf(linkIndex, nd)

	start := layout.Shift(site, mu, 1)
	nc, _ := u.ElemDims()
	sum := mat.NewCDense(nc, nc, nil)

	for nu := 0; nu < nd; nu++ {
		if nu == mu {
			continue
		}
		up := pathProduct(u, layout, start, []step{fwd(nu), bwd(mu), bwd(nu)})
		down := pathProduct(u, layout, start, []step{bwd(nu), bwd(mu), fwd(nu)})
		sum.Add(sum, up)
		sum.Add(sum, down)
	}
	return sum
}
