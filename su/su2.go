// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package su

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/lgt/qcdrand"
)

// ConstructSU2 builds the SU(2) matrix a0·σ0 + i(a1·σ1 + a2·σ2 + a3·σ3)
// from the Pauli basis σ0 = I, σ1, σ2, σ3. The result is in SU(2)
// whenever a0²+a1²+a2²+a3² = 1.
func ConstructSU2(a0, a1, a2, a3 float64) *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		complex(a0, a3), complex(a2, a1),
		complex(-a2, a1), complex(a0, -a3),
	})
}

// sphereDirection samples a three-vector uniformly on the sphere of the
// given radius: cosθ uniform on [-1,1], φ uniform on [0,2π).
func sphereDirection(src *qcdrand.Source, radius float64) (x, y, z float64) {
	cosTheta := src.GenerateReal(-1, 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := src.GenerateReal(0, 2*math.Pi)
	x = radius * sinTheta * math.Cos(phi)
	y = radius * sinTheta * math.Sin(phi)
	z = radius * cosTheta
	return x, y, z
}

// RandomSU2 draws an SU(2) matrix by sampling a0 uniformly on [0,1] and
// the remaining three-vector uniformly on the sphere of radius
// √(1-a0²). This samples from a half-sphere distribution biased toward
// the identity, not the uniform Haar measure on SU(2); that bias is
// retained deliberately, matching the reference implementation this
// package reproduces.
func RandomSU2(src *qcdrand.Source) *mat.CDense {
	a0 := src.GenerateReal(0, 1)
	r := math.Sqrt(1 - a0*a0)
	a1, a2, a3 := sphereDirection(src, r)
	return ConstructSU2(a0, a1, a2, a3)
}

// HeatbathSU2 draws an SU(2) matrix distributed according to the
// heatbath weight exp(weight·a0)·√(1-a0²) on a0 ∈ [-1,1], using the
// Kennedy-Pendleton accept/reject algorithm. weight must be positive.
func HeatbathSU2(src *qcdrand.Source, weight float64) *mat.CDense {
	if weight <= 0 {
		panic("su: heatbath weight must be positive")
	}
	var a0 float64
	for {
		r0 := 1 - src.GenerateReal(0, 1)
		r1 := 1 - src.GenerateReal(0, 1)
		r2 := 1 - src.GenerateReal(0, 1)

		c := math.Cos(2 * math.Pi * r1)
		lambdaSq := -(1 / (2 * weight)) * (math.Log(r0) + c*c*math.Log(r2))

		u := src.GenerateReal(0, 1)
		if u*u <= 1-lambdaSq {
			a0 = 1 - 2*lambdaSq
			break
		}
	}
	r := math.Sqrt(1 - a0*a0)
	a1, a2, a3 := sphereDirection(src, r)
	return ConstructSU2(a0, a1, a2, a3)
}
