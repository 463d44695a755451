// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/lattice"
)

// Action is the polymorphic fermion-operator contract ConjugateGradient
// solves against. Implementations need not be linear in the
// mathematical sense of ApplyFull alone: ApplyHermiticity and
// RemoveHermiticity together let the solver form M's adjoint without
// knowing how M pairs with its own hermiticity partner.
type Action interface {
	// ApplyFull sets out ← M·in. in and out must be distinct fields.
	ApplyFull(out, in *lattice.Field)
	// ApplyHermiticity sets x ← γ·x for whatever similarity γ makes
	// γ·M·γ equal M†.
	ApplyHermiticity(x *lattice.Field)
	// RemoveHermiticity is the inverse of ApplyHermiticity.
	RemoveHermiticity(x *lattice.Field)
}

// Wilson is the Wilson fermion action: mass m against a background
// gauge field U, using an H=1 Hopping configured with the (I∓γ_d)
// projector pair standard to the Wilson discretisation:
//
//	ApplyFull(out, in) = (4+m)·in − 0.5·hop(in)
//
// ApplyHermiticity/RemoveHermiticity apply γ₅, which pairs this
// operator with its adjoint: γ₅ M γ₅ = M†.
type Wilson struct {
	mass float64
	hop  *Hopping
}

// NewWilson returns a Wilson fermion action with mass mass over link
// field u, with the given per-axis twist fractions (phase = exp(2πi·f),
// a nil twistFractions meaning zero twist on every axis). u's site size
// (the lattice rank) must be 4, matching the four-dimensional Euclidean
// Dirac algebra in package fermion; NewWilson panics with ErrShape
// otherwise.
func NewWilson(mass float64, u *lattice.Field, twistFractions []float64) *Wilson {
	nd := u.SiteSize()
	if nd != NumSpins {
		panic(ErrShape)
	}
	if twistFractions == nil {
		twistFractions = make([]float64, nd)
	} else if len(twistFractions) != nd {
		panic(ErrShape)
	}

	phases := make([]complex128, nd)
	for d, f := range twistFractions {
		phases[d] = cmplx.Exp(complex(0, 2*math.Pi*f))
	}

	hop := NewHopping(u, phases, 1)
	gammas := make([]*mat.CDense, 2*nd)
	for d := 0; d < nd; d++ {
		gammas[2*d] = projector(d, 1)
		gammas[2*d+1] = projector(d, -1)
	}
	hop.SetSpinStructures(gammas)

	return &Wilson{mass: mass, hop: hop}
}

// Mass returns the action's bare mass.
func (w *Wilson) Mass() float64 { return w.mass }

// ApplyFull implements Action.
func (w *Wilson) ApplyFull(out, in *lattice.Field) {
	ns := w.hop.NumSpins()
	nc, _ := in.ElemDims()
	hopped := lattice.NewField(in.Layout(), ns, nc, 1)
	w.hop.ApplyFull(hopped, in)

	outData, inData, hopData := out.Raw(), in.Raw(), hopped.Raw()
	coeff := complex(4+w.mass, 0)
	for i := range outData {
		outData[i] = coeff*inData[i] - 0.5*hopData[i]
	}
}

// ApplyHermiticity implements Action: x ← γ₅·x.
func (w *Wilson) ApplyHermiticity(x *lattice.Field) { applyGamma5(x) }

// RemoveHermiticity implements Action: γ₅² = I, so this is the same
// transformation as ApplyHermiticity.
func (w *Wilson) RemoveHermiticity(x *lattice.Field) { applyGamma5(x) }

// applyGamma5 rotates the spin components of every site of x by γ₅ in
// place.
func applyGamma5(x *lattice.Field) {
	ns := x.SiteSize()
	nc, _ := x.ElemDims()
	g5 := Gamma5()
	vol := x.Layout().Volume()

	old := make([]*mat.CDense, ns)
	for site := 0; site < vol; site++ {
		for a := 0; a < ns; a++ {
			v := mat.NewCDense(nc, 1, nil)
			v.Copy(x.At(site, a))
			old[a] = v
		}
		for a := 0; a < ns; a++ {
			acc := mat.NewCDense(nc, 1, nil)
			for b := 0; b < ns; b++ {
				if coef := g5.At(a, b); coef != 0 {
					axpyVec(acc, coef, old[b])
				}
			}
			x.Set(site, a, acc)
		}
	}
}
