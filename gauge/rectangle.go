// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gauge

import (
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
)

// defaultC1 is the tree-level Symanzik-improved rectangle coefficient;
// defaultC0 follows from the usual normalisation C0 + 8·C1 = 1.
const defaultC1 = -1.0 / 12.0

// Rectangle is the rectangle-improved gauge action: the Wilson plaquette
// term weighted by C0, plus the sum of 1×2 rectangular Wilson loops
// weighted by C1. This implementation sums, for each direction ν
// perpendicular to the link's own direction μ, all six 1×2 rectangle
// staples through the link: four elongated along μ (the link first or
// second of the two μ steps, on either side in ν) and two elongated
// along ν.
type Rectangle struct {
	beta   float64
	c0, c1 float64
}

// NewRectangle returns a Rectangle action with inverse coupling beta and
// rectangle coefficient c1 (C0 is derived as 1 - 8·c1). NewRectangle
// panics with ErrNonPositiveBeta if beta is not positive.
func NewRectangle(beta, c1 float64) *Rectangle {
	if beta <= 0 {
		panic(ErrNonPositiveBeta)
	}
	return &Rectangle{beta: beta, c0: 1 - 8*c1, c1: c1}
}

// NewRectangleDefault returns a Rectangle action with the tree-level
// Symanzik-improved coefficient C1 = -1/12.
func NewRectangleDefault(beta float64) *Rectangle {
	return NewRectangle(beta, defaultC1)
}

// Beta returns the action's inverse coupling.
func (r *Rectangle) Beta() float64 { return r.beta }

// Staples returns C0 times the Wilson plaquette staple sum plus C1 times
// the rectangle staple sum.
func (r *Rectangle) Staples(u *lattice.Field, linkIndex int) *mat.CDense {
	layout := u.Layout()
	nd := u.SiteSize()
	site := SiteOf(linkIndex, nd)
	mu := DirOf(linkIndex, nd)
	start := layout.Shift(site, mu, 1)
	nc, _ := u.ElemDims()

	sum := mat.NewCDense(nc, nc, nil)
	sum.Scale(complex(r.c0, 0), wilsonStaples(u, linkIndex))

	rect := mat.NewCDense(nc, nc, nil)
	for nu := 0; nu < nd; nu++ {
		if nu == mu {
			continue
		}
		// Elongated along μ.
		rect.Add(rect, pathProduct(u, layout, start, []step{fwd(mu), fwd(nu), bwd(mu), bwd(mu), bwd(nu)}))
		rect.Add(rect, pathProduct(u, layout, start, []step{fwd(mu), bwd(nu), bwd(mu), bwd(mu), fwd(nu)}))
		rect.Add(rect, pathProduct(u, layout, start, []step{fwd(nu), bwd(mu), bwd(mu), bwd(nu), fwd(mu)}))
		rect.Add(rect, pathProduct(u, layout, start, []step{bwd(nu), bwd(mu), bwd(mu), fwd(nu), fwd(mu)}))
		// Elongated along ν.
		rect.Add(rect, pathProduct(u, layout, start, []step{fwd(nu), fwd(nu), bwd(mu), bwd(nu), bwd(nu)}))
		rect.Add(rect, pathProduct(u, layout, start, []step{bwd(nu), bwd(nu), bwd(mu), fwd(nu), fwd(nu)}))
	}
	scaled := mat.NewCDense(nc, nc, nil)
	scaled.Scale(complex(r.c1, 0), rect)
	sum.Add(sum, scaled)
	return sum
}
