// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qcdrand provides the process-wide pseudo-random stream used for
// sampling SU(2)/SU(N) group elements. It is the only source of
// non-determinism in the lattice gauge-theory core: given the same seed,
// the same sequence of calls against a Source produces the same sequence
// of values.
package qcdrand // import "gonum.org/v1/lgt/qcdrand"
