// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import (
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
	"gonum.org/v1/lgt/su"
)

// Hopping is the nearest-neighbour stencil term of a fermion
// discretisation, parameterised by the number of hops H (typically 1).
// It precomputes, once from a link field, a scattered copy of the
// H-step straight-line link products in each signed direction together
// with the corresponding neighbour table, then applies a
// caller-supplied spin structure to a spinor Field.
//
// A Hopping borrows u only during construction; after NewHopping
// returns it holds no reference to the original link field.
type Hopping struct {
	layout *lattice.Layout
	nd, nc int
	hops   int
	ns     int

	// scattered stores, per site, the 2·nd straight-line link products,
	// as a single dense contiguous array: slot 2d is the forward product
	// starting at the site, slot 2d+1 is the forward product starting H
	// steps back along axis d (so that, daggered, it is "ready" to apply
	// as the backward link into the site).
	scattered *lattice.Field

	// neighFwd[site*nd+d] and neighBwd[site*nd+d] are the site indices H
	// steps forward and backward along axis d.
	neighFwd []int
	neighBwd []int

	// spin holds the 2·nd spin-projector matrices Γ⁺_d, Γ⁻_d (indices
	// 2d, 2d+1), injected after construction by SetSpinStructures.
	spin []*mat.CDense
}

// NewHopping returns a Hopping over the link field u with hop count
// hops. phases supplies one per-axis boundary phase; a nil phases
// applies phase 1 (no twist) on every axis. NewHopping panics with
// ErrNonPositiveHops if hops is not positive, or with ErrShape if
// phases is non-nil and its length does not match u's site size.
func NewHopping(u *lattice.Field, phases []complex128, hops int) *Hopping {
	if hops <= 0 {
		panic(ErrNonPositiveHops)
	}
	nd := u.SiteSize()
	nc, cc := u.ElemDims()
	if nc != cc {
		panic(ErrShape)
	}
	if phases == nil {
		phases = make([]complex128, nd)
		for i := range phases {
			phases[i] = 1
		}
	} else if len(phases) != nd {
		panic(ErrShape)
	}

	layout := u.Layout()
	vol := layout.Volume()
	scattered := lattice.NewField(layout, 2*nd, nc, nc)
	neighFwd := make([]int, vol*nd)
	neighBwd := make([]int, vol*nd)

	for site := 0; site < vol; site++ {
		coords := layout.SiteCoordsOf(site)
		for d := 0; d < nd; d++ {
			extent := layout.Extent(d)
			c := coords[d]

			phiFwd := complex(1, 0)
			if c+hops >= extent {
				phiFwd = phases[d]
			}
			phiBwd := complex(1, 0)
			if c < hops {
				phiBwd = phases[d]
			}

			fwdSite := layout.Shift(site, d, hops)
			bwdSite := layout.Shift(site, d, -hops)
			neighFwd[site*nd+d] = fwdSite
			neighBwd[site*nd+d] = bwdSite

			fwdProd := straightLineProduct(u, layout, site, d, hops)
			bwdProd := straightLineProduct(u, layout, bwdSite, d, hops)

			fwdElem := mat.NewCDense(nc, nc, nil)
			fwdElem.Scale(phiFwd, fwdProd)
			bwdElem := mat.NewCDense(nc, nc, nil)
			bwdElem.Scale(phiBwd, bwdProd)

			scattered.Set(site, 2*d, fwdElem)
			scattered.Set(site, 2*d+1, bwdElem)
		}
	}

	return &Hopping{
		layout:    layout,
		nd:        nd,
		nc:        nc,
		hops:      hops,
		scattered: scattered,
		neighFwd:  neighFwd,
		neighBwd:  neighBwd,
	}
}

// straightLineProduct returns U_axis(start)·U_axis(start+axis)·...
// ·U_axis(start+(hops-1)·axis), the straight-line product of hops links
// in direction axis starting at start.
func straightLineProduct(u *lattice.Field, layout *lattice.Layout, start, axis, hops int) *mat.CDense {
	nc, _ := u.ElemDims()
	prod := su.Identity(nc)
	site := start
	for step := 0; step < hops; step++ {
		link := u.At(site, axis)
		next := mat.NewCDense(nc, nc, nil)
		next.Mul(prod, link)
		prod = next
		site = layout.Shift(site, axis, 1)
	}
	return prod
}

// SetSpinStructures installs the 2·nd spin-projector matrices (Γ⁺_d,
// Γ⁻_d pairs, one pair per axis, in axis-major order) that ApplyFull
// contracts against. All matrices must be square and of equal size;
// SetSpinStructures panics with ErrShape otherwise.
func (h *Hopping) SetSpinStructures(gammas []*mat.CDense) {
	if len(gammas) != 2*h.nd {
		panic(ErrShape)
	}
	ns, cc := gammas[0].Dims()
	if ns != cc {
		panic(ErrShape)
	}
	for _, g := range gammas {
		r, c := g.Dims()
		if r != ns || c != ns {
			panic(ErrShape)
		}
	}
	h.spin = gammas
	h.ns = ns
}

// NumSpins returns the spin dimension the currently-configured spin
// structures operate on, or 0 if SetSpinStructures has not been called.
func (h *Hopping) NumSpins() int { return h.ns }

// ApplyFull sets out to the result of applying the hopping stencil to
// in: out is zeroed, then for every site, axis and spin pair the
// forward and backward spin-projected, colour-rotated
// contributions are scattered into the neighbouring sites. in and out
// must be distinct spinor fields over the Hopping's layout, with
// siteSize equal to NumSpins and elements of shape Nc×1. ApplyFull
// panics with ErrSpinStructures if SetSpinStructures has not been
// called, or ErrShape on any other shape mismatch.
func (h *Hopping) ApplyFull(out, in *lattice.Field) {
	if h.spin == nil {
		panic(ErrSpinStructures)
	}
	if in.SiteSize() != h.ns || out.SiteSize() != h.ns {
		panic(ErrShape)
	}
	r, c := in.ElemDims()
	if r != h.nc || c != 1 {
		panic(ErrShape)
	}
	if or, oc := out.ElemDims(); or != h.nc || oc != 1 {
		panic(ErrShape)
	}

	data := out.Raw()
	for i := range data {
		data[i] = 0
	}

	vol := h.layout.Volume()
	for site := 0; site < vol; site++ {
		for d := 0; d < h.nd; d++ {
			gammaPlus := h.spin[2*d]
			gammaMinus := h.spin[2*d+1]
			ufwd := h.scattered.At(site, 2*d)
			ubwdDag := su.Dagger(h.scattered.At(site, 2*d+1))

			neighFwd := h.neighFwd[site*h.nd+d]
			neighBwd := h.neighBwd[site*h.nd+d]

			for alpha := 0; alpha < h.ns; alpha++ {
				fwdVec := mat.NewCDense(h.nc, 1, nil)
				bwdVec := mat.NewCDense(h.nc, 1, nil)
				for beta := 0; beta < h.ns; beta++ {
					inVec := in.At(site, beta)
					if cp := gammaPlus.At(alpha, beta); cp != 0 {
						axpyVec(fwdVec, cp, inVec)
					}
					if cm := gammaMinus.At(alpha, beta); cm != 0 {
						axpyVec(bwdVec, cm, inVec)
					}
				}

				var partialFwd, partialBwd mat.CDense
				partialFwd.Mul(ufwd, fwdVec)
				partialBwd.Mul(ubwdDag, bwdVec)

				outFwd := out.At(neighFwd, alpha)
				outFwd.Add(outFwd, &partialFwd)
				outBwd := out.At(neighBwd, alpha)
				outBwd.Add(outBwd, &partialBwd)
			}
		}
	}
}

// axpyVec adds alpha·x into dst in place; dst and x are Nc×1 column
// vectors. It mirrors the semantics of gonum.org/v1/gonum/blas/cblas128's
// AXPY but works directly against the *mat.CDense element views
// returned by lattice.Field.At, since those are too small (a handful of
// colour components) to justify the allocation a cblas128.Vector
// round-trip would add in this hot loop.
func axpyVec(dst *mat.CDense, alpha complex128, x mat.CMatrix) {
	n, _ := dst.Dims()
	for i := 0; i < n; i++ {
		dst.Set(i, 0, dst.At(i, 0)+alpha*x.At(i, 0))
	}
}
