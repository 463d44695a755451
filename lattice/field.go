// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrShape is panicked by Field operations given a layout or element shape
// that does not match the receiver.
var ErrShape = errors.New("lattice: shape mismatch")

// Field is a dense array of per-site elements, each a small dense complex
// matrix (elemRows×elemCols; elemCols == 1 represents a colour vector).
// A link field stores one colour matrix per direction (siteSize == Nd); a
// spinor field stores one colour vector per spin component
// (siteSize == Ns).
//
// The backing storage is a single contiguous []complex128 slice, indexed
// as site·siteSize·elemLen + offset·elemLen, so that per-site data for
// link or spinor fields stays cache-local the way the scattered gauge
// field in package fermion requires. Element access returns zero-copy
// *mat.CDense views into that slice, following the view convention of
// gonum.org/v1/gonum/mat (SliceVec, ColViewOf, RowViewOf): mutating a
// returned view mutates the Field.
type Field struct {
	layout   *Layout
	siteSize int
	rows     int
	cols     int
	data     []complex128
}

// NewField returns a Field over layout with siteSize elements per site,
// each an elemRows×elemCols matrix, filled with zero elements. siteSize,
// elemRows and elemCols must be positive.
func NewField(layout *Layout, siteSize, elemRows, elemCols int) *Field {
	if siteSize <= 0 || elemRows <= 0 || elemCols <= 0 {
		panic("lattice: non-positive field dimension")
	}
	n := layout.Volume() * siteSize * elemRows * elemCols
	return &Field{
		layout:   layout,
		siteSize: siteSize,
		rows:     elemRows,
		cols:     elemCols,
		data:     make([]complex128, n),
	}
}

// NewFieldFilled returns a Field over layout with siteSize elements per
// site, each a copy of fill (which determines elemRows and elemCols).
func NewFieldFilled(layout *Layout, siteSize int, fill mat.CMatrix) *Field {
	r, c := fill.Dims()
	f := NewField(layout, siteSize, r, c)
	for i := 0; i < f.Size(); i++ {
		f.SetFlat(i, fill)
	}
	return f
}

// Layout returns the layout the field is defined over.
func (f *Field) Layout() *Layout { return f.layout }

// SiteSize returns the number of elements stored per site.
func (f *Field) SiteSize() int { return f.siteSize }

// ElemDims returns the dimensions of each per-site element.
func (f *Field) ElemDims() (rows, cols int) { return f.rows, f.cols }

// Size returns the total number of elements in the field, volume·siteSize.
func (f *Field) Size() int { return f.layout.Volume() * f.siteSize }

func (f *Field) elemLen() int { return f.rows * f.cols }

func (f *Field) segment(flatIndex int) []complex128 {
	if flatIndex < 0 || flatIndex >= f.Size() {
		panic("lattice: field index out of range")
	}
	n := f.elemLen()
	start := flatIndex * n
	return f.data[start : start+n : start+n]
}

// At returns a view of the element at site siteIndex, offset within the
// site's siteSize elements (e.g. the direction for a link field, or the
// spin component for a spinor field). Mutations through the returned
// matrix are reflected in the Field.
func (f *Field) At(siteIndex, offset int) *mat.CDense {
	return f.FlatAt(siteIndex*f.siteSize + offset)
}

// FlatAt returns a view of the element at flat index i = siteIndex·siteSize
// + offset.
func (f *Field) FlatAt(i int) *mat.CDense {
	return mat.NewCDense(f.rows, f.cols, f.segment(i))
}

// Set copies v into the element at (siteIndex, offset). v's dimensions
// must match the field's element dimensions.
func (f *Field) Set(siteIndex, offset int, v mat.CMatrix) {
	f.SetFlat(siteIndex*f.siteSize+offset, v)
}

// SetFlat copies v into the element at flat index i.
func (f *Field) SetFlat(i int, v mat.CMatrix) {
	r, c := v.Dims()
	if r != f.rows || c != f.cols {
		panic(ErrShape)
	}
	seg := f.segment(i)
	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			seg[row*c+col] = v.At(row, col)
		}
	}
}

// Raw returns the field's backing storage as a single contiguous
// []complex128 slice, in flat-index order. It exists for packages such
// as fermion that need whole-field vector arithmetic (inner products,
// AXPY, norms) expressed directly against gonum.org/v1/gonum/blas/cblas128's
// Vector type rather than one element at a time. Mutating the returned
// slice mutates f.
func (f *Field) Raw() []complex128 { return f.data }

// Clone returns a deep copy of f: the returned Field shares no storage
// with f, matching the container's value-semantics requirement.
func (f *Field) Clone() *Field {
	data := make([]complex128, len(f.data))
	copy(data, f.data)
	return &Field{
		layout:   f.layout,
		siteSize: f.siteSize,
		rows:     f.rows,
		cols:     f.cols,
		data:     data,
	}
}
