// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermion

import "errors"

// ErrNonPositiveHops is panicked by NewHopping when given a non-positive
// hop count H.
var ErrNonPositiveHops = errors.New("fermion: hop count must be positive")

// ErrShape is panicked by Hopping and Action operations given a field
// whose layout or per-site shape does not match what the operation
// expects.
var ErrShape = errors.New("fermion: shape mismatch")

// ErrSpinStructures is panicked by ApplyFull when SetSpinStructures has
// not been called. SetSpinStructures itself panics with ErrShape when
// given the wrong number of matrices.
var ErrSpinStructures = errors.New("fermion: spin structures not configured")

// ErrNonPositiveTolerance is panicked by ConjugateGradient when tol is
// not positive.
var ErrNonPositiveTolerance = errors.New("fermion: tolerance must be positive")
