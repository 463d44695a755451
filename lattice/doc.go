// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice provides the site indexing and dense per-site storage
// used by a four-dimensional periodic hypercubic lattice: the bijection
// between integer site coordinates and a linear site index, and a flat
// array container for per-site gauge links or fermion spinor components.
package lattice // import "gonum.org/v1/lgt/lattice"
