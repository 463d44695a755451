// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gauge

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
	"gonum.org/v1/lgt/qcdrand"
	"gonum.org/v1/lgt/su"
)

// epsilon guards the Kennedy-Pendleton heatbath against dividing by a
// vanishing staple-subgroup norm: a < 6·ε falls back to a uniform
// random SU(2) draw for that subgroup instead.
const epsilon = 2.220446049250313e-16 // machine epsilon for float64

// LinkUpdate performs one pseudo-heatbath update of the single link at
// linkIndex in u, under action a, drawing randomness from src.
func LinkUpdate(u *lattice.Field, a Action, linkIndex int, src *qcdrand.Source) {
	nc, _ := u.ElemDims()
	s := a.Staples(u, linkIndex)
	l := u.FlatAt(linkIndex)
	betaPrime := a.Beta() / float64(nc)

	w := mat.NewCDense(nc, nc, nil)
	tmp := mat.NewCDense(nc, nc, nil)

	for k := 0; k < su.NumSubgroups(nc); k++ {
		w.Mul(l, s)
		r := su.ExtractSU2(w, k)
		det := su.Det2(r)
		detReal := real(det)
		if detReal < 0 {
			detReal = 0
		}
		aNorm := math.Sqrt(detReal)

		var x *mat.CDense
		if aNorm < 6*epsilon {
			x = su.RandomSU2(src)
		} else {
			sqrtDet := complex(aNorm, 0)
			normalised := mat.NewCDense(2, 2, nil)
			normalised.Scale(1/sqrtDet, r)
			heat := su.HeatbathSU2(src, aNorm*betaPrime)
			x = mat.NewCDense(2, 2, nil)
			x.Mul(heat, su.Dagger(normalised))
		}

		n := su.InsertSU2(x, nc, k)
		tmp.Mul(n, l)
		l.Copy(tmp)
	}
}

// Sweep updates every link of u exactly once, in site-major,
// direction-minor order, under action a, using randomness from src.
func Sweep(u *lattice.Field, a Action, src *qcdrand.Source) {
	nd := u.SiteSize()
	vol := u.Layout().Volume()
	for site := 0; site < vol; site++ {
		for dir := 0; dir < nd; dir++ {
			LinkUpdate(u, a, LinkIndex(site, dir, nd), src)
		}
	}
}

// Update performs nSweeps full sweeps of u under action a.
func Update(u *lattice.Field, a Action, nSweeps int, src *qcdrand.Source) {
	for i := 0; i < nSweeps; i++ {
		Sweep(u, a, src)
	}
}
