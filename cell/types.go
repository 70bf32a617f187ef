// SPDX-License-Identifier: MIT
// Package cell: the packed index layout.
//
// Bit layout, high bit first:
//
//	63      reserved, zero
//	62..59  mode (1 = cell, 2 = directed edge)
//	58..56  reserved, zero
//	55..52  resolution, 0..15
//	51..45  base cell, 0..121
//	44..0   fifteen 3-bit digits; the digit for resolution r occupies
//	        bits (15-r)·3 .. (15-r)·3+2, and digits beyond the index
//	        resolution hold 7
package cell

import (
	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/ijk"
)

// Index is a packed cell identifier. The zero value is Null, the
// reserved non-cell.
type Index uint64

// Null is the reserved empty index.
const Null Index = 0

// MaxResolution is the finest grid resolution.
const MaxResolution = faceijk.MaxResolution

// MaxBoundaryVerts caps the vertex count of CellToBoundary output: a
// hexagon's six vertices plus up to four synthetic face-crossing
// vertices, or a pentagon's five plus five.
const MaxBoundaryVerts = 10

const (
	modeCell         = 1
	modeDirectedEdge = 2

	digitBits  = 3
	digitMask  = Index(7)
	resOffset  = 52
	resMask    = Index(15) << resOffset
	cellOffset = 45
	cellMask   = Index(127) << cellOffset
	modeOffset = 59
	modeMask   = Index(15) << modeOffset
	highBit    = Index(1) << 63
	// bits 58..56 between mode and resolution
	reservedMask = Index(7) << 56

	// allDigits has every digit slot set to 7, the unused marker.
	allDigits = Index(1)<<45 - 1
)

// Resolution returns the index resolution, 0..15.
func (c Index) Resolution() int { return int((c & resMask) >> resOffset) }

// BaseCell returns the resolution-0 ancestor cell number.
func (c Index) BaseCell() int { return int((c & cellMask) >> cellOffset) }

// mode returns the index mode field.
func (c Index) mode() int { return int((c & modeMask) >> modeOffset) }

// digit returns the indexing digit at resolution r, 1-based.
func (c Index) digit(r int) ijk.Direction {
	return ijk.Direction((c >> uint((MaxResolution-r)*digitBits)) & digitMask)
}

// setDigit returns the index with the digit at resolution r replaced.
func (c Index) setDigit(r int, d ijk.Direction) Index {
	shift := uint((MaxResolution - r) * digitBits)

	return (c &^ (digitMask << shift)) | (Index(d) << shift)
}

// setResolution returns the index with the resolution field replaced.
func (c Index) setResolution(res int) Index {
	return (c &^ resMask) | (Index(res) << resOffset)
}

// setBaseCell returns the index with the base cell field replaced.
func (c Index) setBaseCell(cell int) Index {
	return (c &^ cellMask) | (Index(cell) << cellOffset)
}

// setMode returns the index with the mode field replaced.
func (c Index) setMode(mode int) Index {
	return (c &^ modeMask) | (Index(mode) << modeOffset)
}

// newIndex builds a cell index at the given resolution and base cell
// with every digit through res set to digit and the tail left at 7.
func newIndex(res, baseCell int, digit ijk.Direction) Index {
	c := allDigits.setMode(modeCell).setResolution(res).setBaseCell(baseCell)
	for r := 1; r <= res; r++ {
		c = c.setDigit(r, digit)
	}

	return c
}

// leadingNonZeroDigit returns the first non-center digit of the index,
// or Center when every digit is central.
func (c Index) leadingNonZeroDigit() ijk.Direction {
	res := c.Resolution()
	for r := 1; r <= res; r++ {
		if d := c.digit(r); d != ijk.Center {
			return d
		}
	}

	return ijk.Center
}
