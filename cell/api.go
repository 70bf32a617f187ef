// SPDX-License-Identifier: MIT
// Package cell: the public operations.
package cell

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/hexsphere/basecell"
	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/geo"
	"github.com/katalvlaran/hexsphere/ijk"
)

// LatLngToCell indexes a point on the sphere at the given resolution.
// Returns ErrResolutionDomain for a resolution outside [0..15] and
// ErrLatLngDomain for non-finite coordinates; the index is Null on any
// error.
// Complexity: O(res).
func LatLngToCell(ll geo.LatLng, res int) (Index, error) {
	if res < 0 || res > MaxResolution {
		return Null, ErrResolutionDomain
	}
	if math.IsNaN(ll.Lat) || math.IsInf(ll.Lat, 0) ||
		math.IsNaN(ll.Lng) || math.IsInf(ll.Lng, 0) {
		return Null, ErrLatLngDomain
	}

	c := fromFaceIJK(faceijk.FromLatLng(ll, res), res)
	if c == Null {
		return Null, ErrCellInvalid
	}

	return c, nil
}

// CellToLatLng returns the center point of a cell. Returns
// ErrCellInvalid for an index that fails validation.
// Complexity: O(res).
func CellToLatLng(c Index) (geo.LatLng, error) {
	if !c.IsValid() {
		return geo.LatLng{}, ErrCellInvalid
	}

	return c.toFaceIJK().ToLatLng(c.Resolution()), nil
}

// CellToBoundary returns the cell outline in counter-clockwise order:
// five vertices for a pentagon, six for a hexagon, plus a synthetic
// vertex wherever a cell edge crosses an icosahedron face edge — at
// most MaxBoundaryVerts in total.
// Complexity: O(res) plus O(1) per vertex.
func CellToBoundary(c Index) ([]geo.LatLng, error) {
	if !c.IsValid() {
		return nil, ErrCellInvalid
	}

	fijk := c.toFaceIJK()
	if c.IsPentagon() {
		return fijk.PentBoundary(c.Resolution(), 0, faceijk.NumPentVerts), nil
	}

	return fijk.Boundary(c.Resolution(), 0, faceijk.NumHexVerts), nil
}

// IsPentagon reports whether the index addresses a pentagonal cell: a
// centered descendant of one of the twelve pentagon base cells.
func (c Index) IsPentagon() bool {
	return basecell.IsPentagon(c.BaseCell()) && c.leadingNonZeroDigit() == ijk.Center
}

// IsValid reports whether the index is a well-formed cell index:
// cell mode, zero reserved bits, a real base cell, digits within range
// through the resolution and unset past it, and no leading K digit on
// a pentagon.
func (c Index) IsValid() bool {
	if c&highBit != 0 || c.mode() != modeCell || c&reservedMask != 0 {
		return false
	}
	if c.BaseCell() >= basecell.NumBaseCells {
		return false
	}

	res := c.Resolution()
	for r := 1; r <= res; r++ {
		if !c.digit(r).IsValid() {
			return false
		}
	}
	for r := res + 1; r <= MaxResolution; r++ {
		if c.digit(r) != ijk.Invalid {
			return false
		}
	}

	if basecell.IsPentagon(c.BaseCell()) && c.leadingNonZeroDigit() == ijk.K {
		return false
	}

	return true
}

// String renders the canonical text form: fifteen lowercase hex digits
// with leading zeros preserved.
func (c Index) String() string {
	return fmt.Sprintf("%015x", uint64(c))
}

// ParseIndex parses the canonical hexadecimal text form. The result is
// not validated; combine with IsValid to reject non-cell values.
func ParseIndex(s string) (Index, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Null, ErrParse
	}

	return Index(v), nil
}
