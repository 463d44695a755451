// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import (
	"math"

	"gonum.org/v1/lgt/lattice"
)

// ConjugateGradient solves M†M x = M† rhs for x, given only action's
// ApplyFull/ApplyHermiticity contract. It iterates at most maxIter
// times, stopping early once the residual norm squared falls to or
// below tol²·‖rhs‖² (or tol² itself, if rhs is exactly zero). It
// returns the solution, the final residual norm, and the number of
// iterations performed; exhausting maxIter without convergence is not
// an error — callers compare the returned residual against their own
// tolerance.
//
// trace, if given, is called after every iteration with the 1-based
// iteration number and the residual norm reached, mirroring the
// optional progress hook gonum.org/v1/gonum/linsolve.Settings exposes;
// omitting it costs nothing.
//
// ConjugateGradient panics with ErrNonPositiveTolerance if tol is not
// positive.
func ConjugateGradient(action Action, rhs *lattice.Field, maxIter int, tol float64, trace ...func(iteration int, residual float64)) (solution *lattice.Field, residualNorm float64, iterations int) {
	if tol <= 0 {
		panic(ErrNonPositiveTolerance)
	}
	var onIter func(int, float64)
	if len(trace) > 0 {
		onIter = trace[0]
	}

	ns := rhs.SiteSize()
	nc, cc := rhs.ElemDims()
	x := lattice.NewField(rhs.Layout(), ns, nc, cc)

	bNormSq := normSq(rhs)
	threshold := tol * tol * bNormSq
	if bNormSq == 0 {
		threshold = tol * tol
	}

	r := mdag(action, rhs)
	rNormSq := normSq(r)
	if rNormSq <= threshold {
		// Residual vanishes exactly: report this as a single iteration.
		if onIter != nil {
			onIter(1, math.Sqrt(rNormSq))
		}
		return x, math.Sqrt(rNormSq), 1
	}

	p := r.Clone()
	for k := 0; k < maxIter; k++ {
		q := mdagM(action, p)

		rr := dot(r, r)
		pq := dot(p, q)
		alpha := rr / pq

		axpy(alpha, p, x)

		rPrime := r.Clone()
		axpy(-alpha, q, rPrime)
		rPrimeNormSq := normSq(rPrime)

		if onIter != nil {
			onIter(k+1, math.Sqrt(rPrimeNormSq))
		}

		if rPrimeNormSq <= threshold {
			return x, math.Sqrt(rPrimeNormSq), k + 1
		}

		beta := complex(rPrimeNormSq, 0) / rr
		newP := rPrime.Clone()
		axpy(beta, p, newP)

		p = newP
		r = rPrime
		rNormSq = rPrimeNormSq
	}
	return x, math.Sqrt(rNormSq), maxIter
}

// mdag returns M†·in = γ·M·γ·in, using action's hermiticity pairing.
func mdag(action Action, in *lattice.Field) *lattice.Field {
	t := in.Clone()
	action.ApplyHermiticity(t)
	ns := t.SiteSize()
	nc, cc := t.ElemDims()
	out := lattice.NewField(t.Layout(), ns, nc, cc)
	action.ApplyFull(out, t)
	action.ApplyHermiticity(out)
	return out
}

// mdagM returns M†M·p.
func mdagM(action Action, p *lattice.Field) *lattice.Field {
	ns := p.SiteSize()
	nc, cc := p.ElemDims()
	mp := lattice.NewField(p.Layout(), ns, nc, cc)
	action.ApplyFull(mp, p)
	return mdag(action, mp)
}
