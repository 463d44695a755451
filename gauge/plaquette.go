// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gauge

import "gonum.org/v1/lgt/lattice"

// AveragePlaquette returns the mean over all sites and unordered
// direction pairs (μ<ν) of Re Tr(U_μ(x) U_ν(x+μ) U_μ†(x+ν) U_ν†(x)) / Nc,
// the standard observable used to validate gauge updates. For the
// identity field it is exactly 1.
func AveragePlaquette(u *lattice.Field) float64 {
	layout := u.Layout()
	nd := u.SiteSize()
	nc, _ := u.ElemDims()
	vol := layout.Volume()

	var sum float64
	var count int
	for site := 0; site < vol; site++ {
		for mu := 0; mu < nd; mu++ {
			for nu := mu + 1; nu < nd; nu++ {
				loop := pathProduct(u, layout, site, []step{fwd(mu), fwd(nu), bwd(mu), bwd(nu)})
				var tr complex128
				for i := 0; i < nc; i++ {
					tr += loop.At(i, i)
				}
				sum += real(tr) / float64(nc)
				count++
			}
		}
	}
	return sum / float64(count)
}
