// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gauge implements the Wilson-style gauge action and the
// pseudo-heatbath link updater that samples a gauge field configuration
// from it. Action is a small closed interface (Wilson, Rectangle) so the
// heatbath sweep can be written once against the staple contract and
// devirtualised by the Go compiler's interface-to-concrete inlining at
// the call site.
package gauge // import "gonum.org/v1/lgt/gauge"
