// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import "gonum.org/v1/gonum/mat"

// NumSpins is the number of Dirac spin components, fixed at 4 for the
// four-dimensional Euclidean Clifford algebra the Wilson fermion action
// is built on.
const NumSpins = 4

// gammaGenerators are the four Euclidean Dirac matrices in the standard
// (Dirac) representation: Hermitian, satisfying {γ_μ, γ_ν} = 2δ_μν I.
// They are data, not behaviour, represented as the small fixed-size
// *mat.CDense values the gonum.org/v1/gonum/num/quat package's
// tiny-value-type convention suggests for compact algebraic objects.
var gammaGenerators [4]*mat.CDense

var gamma5 *mat.CDense

func init() {
	i := complex(0, 1)
	gammaGenerators[0] = mat.NewCDense(4, 4, []complex128{
		0, 0, 0, -i,
		0, 0, -i, 0,
		0, i, 0, 0,
		i, 0, 0, 0,
	})
	gammaGenerators[1] = mat.NewCDense(4, 4, []complex128{
		0, 0, 0, -1,
		0, 0, 1, 0,
		0, 1, 0, 0,
		-1, 0, 0, 0,
	})
	gammaGenerators[2] = mat.NewCDense(4, 4, []complex128{
		0, 0, -i, 0,
		0, 0, 0, i,
		i, 0, 0, 0,
		0, -i, 0, 0,
	})
	gammaGenerators[3] = mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -1, 0,
		0, 0, 0, -1,
	})

	var g12, g123 mat.CDense
	g12.Mul(gammaGenerators[0], gammaGenerators[1])
	g123.Mul(&g12, gammaGenerators[2])
	gamma5 = mat.NewCDense(4, 4, nil)
	gamma5.Mul(&g123, gammaGenerators[3])
}

// Gamma returns the axis-th Euclidean Dirac matrix, axis in [0,4).
func Gamma(axis int) *mat.CDense {
	return gammaGenerators[axis]
}

// Gamma5 returns γ₅ = γ₀γ₁γ₂γ₃, the chirality matrix used to pair the
// Wilson fermion operator with its adjoint.
func Gamma5() *mat.CDense {
	return gamma5
}

// projector returns I - sign·γ_axis, the spin structure assigned to the
// forward (sign=+1) or backward (sign=-1) hopping direction axis.
func projector(axis int, sign float64) *mat.CDense {
	p := mat.NewCDense(NumSpins, NumSpins, nil)
	for i := 0; i < NumSpins; i++ {
		p.Set(i, i, 1)
	}
	scaled := mat.NewCDense(NumSpins, NumSpins, nil)
	scaled.Scale(complex(sign, 0), gammaGenerators[axis])
	p.Sub(p, scaled)
	return p
}
