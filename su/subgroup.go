// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package su

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"gonum.org/v1/lgt/qcdrand"
)

// ErrSubgroupRange is panicked by SubgroupPosition, ExtractSU2 and
// InsertSU2 when given a subgroup index outside [0, NumSubgroups(nc)).
var ErrSubgroupRange = errors.New("su: subgroup index out of range")

// NumSubgroups returns the number of SU(2) subgroups of SU(nc),
// Nc(Nc-1)/2.
func NumSubgroups(nc int) int { return combin.Binomial(nc, 2) }

// SubgroupPosition returns the unordered index pair (i, j), i < j, at
// lexicographic position k among the Nc(Nc-1)/2 subgroups of SU(nc). For
// nc = 3 the sequence is (0,1), (0,2), (1,2), matching
// combin.Combinations(nc, 2)'s ordering. SubgroupPosition panics with
// ErrSubgroupRange if k is out of range.
func SubgroupPosition(nc, k int) (i, j int) {
	if k < 0 || k >= NumSubgroups(nc) {
		panic(ErrSubgroupRange)
	}
	pair := combin.Combinations(nc, 2)[k]
	return pair[0], pair[1]
}

// ExtractSU2 projects the subgroup-k 2×2 submatrix of the Nc×Nc colour
// matrix w onto the SU(2) tangent: with R the submatrix at rows/columns
// (i,j), it returns R - R† + I·conj(tr R). The result is not itself
// unitary; callers normalise by dividing by √det (see su.Det2).
func ExtractSU2(w mat.CMatrix, k int) *mat.CDense {
	nc, ncc := w.Dims()
	if nc != ncc {
		panic("su: ExtractSU2 requires a square matrix")
	}
	i, j := SubgroupPosition(nc, k)

	wii, wij := w.At(i, i), w.At(i, j)
	wji, wjj := w.At(j, i), w.At(j, j)
	trace := wii + wjj
	conjTrace := cmplxConj(trace)

	return mat.NewCDense(2, 2, []complex128{
		wii - cmplxConj(wii) + conjTrace, wij - cmplxConj(wji),
		wji - cmplxConj(wij), wjj - cmplxConj(wjj) + conjTrace,
	})
}

func cmplxConj(z complex128) complex128 { return complex(real(z), -imag(z)) }

// InsertSU2 embeds the SU(2) matrix x into subgroup k of an Nc×Nc colour
// matrix: the Nc identity with its (i,i), (i,j), (j,i), (j,j) entries
// overwritten by x's entries, where (i,j) = SubgroupPosition(nc, k).
func InsertSU2(x mat.CMatrix, nc, k int) *mat.CDense {
	i, j := SubgroupPosition(nc, k)
	m := Identity(nc)
	m.Set(i, i, x.At(0, 0))
	m.Set(i, j, x.At(0, 1))
	m.Set(j, i, x.At(1, 0))
	m.Set(j, j, x.At(1, 1))
	return m
}

// RandomSUN draws a uniform-ish random SU(nc) colour matrix as the
// product, over all Nc(Nc-1)/2 subgroups in lexicographic order, of
// InsertSU2 applied to an independent RandomSU2 draw, starting from the
// identity.
func RandomSUN(src *qcdrand.Source, nc int) *mat.CDense {
	u := Identity(nc)
	tmp := mat.NewCDense(nc, nc, nil)
	for k := 0; k < NumSubgroups(nc); k++ {
		sub := InsertSU2(RandomSU2(src), nc, k)
		tmp.Mul(sub, u)
		u.Copy(tmp)
	}
	return u
}
