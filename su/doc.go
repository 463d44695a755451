// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package su implements the SU(2) and SU(N) group-element algebra used by
// the heatbath gauge updater: construction of SU(2) matrices from the
// Pauli basis, uniform and heatbath-distributed random sampling on the
// SU(2) manifold, and the SU(2)-subgroup decomposition of an SU(N) colour
// matrix (Cabibbo-Marinari style subgroup embedding/extraction).
//
// Colour matrices are represented as *mat.CDense, following
// gonum.org/v1/gonum/mat's own complex dense matrix type; this lets
// callers compose group-algebra results directly with mat.CDense's
// Mul/Add/Scale arithmetic.
package su // import "gonum.org/v1/lgt/su"
