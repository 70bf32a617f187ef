// SPDX-License-Identifier: MIT
// Package cell: the indexing walks between face coordinates and packed
// digits. fromFaceIJK climbs from the target resolution to the base
// cell, recording one digit per level; toFaceIJK descends from the base
// cell's home, then reconciles any overage onto the proper face.
package cell

import (
	"github.com/katalvlaran/hexsphere/basecell"
	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/ijk"
)

// fromFaceIJK packs face coordinates at a resolution into an index.
// Returns Null when the coordinates do not resolve to a base cell.
func fromFaceIJK(fijk faceijk.FaceIJK, res int) Index {
	if res == 0 {
		b := basecell.FromFaceIJK(fijk)
		if b == basecell.InvalidBaseCell {
			return Null
		}

		return newIndex(0, b, ijk.Center)
	}

	h := allDigits.setMode(modeCell).setResolution(res)

	// climb to resolution 0, one digit per level; the digit is the
	// offset of the finer cell from the center child of its parent
	coord := fijk.Coord
	for r := res - 1; r >= 0; r-- {
		last := coord
		var lastCenter ijk.CoordIJK
		if faceijk.IsResClassIII(r + 1) {
			coord = coord.UpAp7()
			lastCenter = coord.DownAp7()
		} else {
			coord = coord.UpAp7R()
			lastCenter = coord.DownAp7R()
		}

		h = h.setDigit(r+1, last.Sub(lastCenter).Normalize().Direction())
	}

	// coord now addresses the base cell in the starting face's system
	fijkBC := faceijk.FaceIJK{Face: fijk.Face, Coord: coord}
	b := basecell.FromFaceIJK(fijkBC)
	if b == basecell.InvalidBaseCell {
		return Null
	}
	h = h.setBaseCell(b)

	// canonicalize the digit orientation for the base cell
	numRots := basecell.CCWRot60FromFaceIJK(fijkBC)
	if basecell.IsPentagon(b) {
		// force rotation out of the missing k-axes subsequence
		if h.leadingNonZeroDigit() == ijk.K {
			if basecell.IsCwOffset(b, fijkBC.Face) {
				h = h.Rotate60CW()
			} else {
				h = h.Rotate60CCW()
			}
		}
		for i := 0; i < numRots; i++ {
			h = h.RotatePent60CCW()
		}
	} else {
		for i := 0; i < numRots; i++ {
			h = h.Rotate60CCW()
		}
	}

	return h
}

// toFaceIJK unpacks an index to face coordinates at its resolution,
// relocated onto the face the cell actually lies on.
func (c Index) toFaceIJK() faceijk.FaceIJK {
	b := c.BaseCell()

	// the missing k-axes subsequence pushes sub-sequence 5 around the
	// pentagon before the descent
	if basecell.IsPentagon(b) && c.leadingNonZeroDigit() == ijk.IK {
		c = c.Rotate60CW()
	}

	fijk := basecell.Home(b)
	fijk, possibleOverage := c.walkDigits(fijk)
	if !possibleOverage {
		return fijk
	}

	origCoord := fijk.Coord

	// drop into the next finer Class II grid for the overage check
	res := c.Resolution()
	if faceijk.IsResClassIII(res) {
		fijk.Coord = fijk.Coord.DownAp7R()
		res++
	}

	pentLeading4 := basecell.IsPentagon(b) && c.leadingNonZeroDigit() == ijk.I

	adjusted, overage := fijk.AdjustOverageClassII(res, pentLeading4, false)
	if overage != faceijk.NoOverage {
		// pentagon base cells can overage across several faces
		if basecell.IsPentagon(b) {
			for {
				var ov faceijk.Overage
				adjusted, ov = adjusted.AdjustOverageClassII(res, false, false)
				if ov == faceijk.NoOverage {
					break
				}
			}
		}
		if res != c.Resolution() {
			adjusted.Coord = adjusted.Coord.UpAp7R()
		}
	} else if res != c.Resolution() {
		adjusted.Coord = origCoord
	}

	return adjusted
}

// walkDigits descends from the base cell home through the index digits.
// The second result reports whether the hierarchy can leave the home
// face at all: a hexagon anchored at a face center never does.
func (c Index) walkDigits(fijk faceijk.FaceIJK) (faceijk.FaceIJK, bool) {
	res := c.Resolution()

	possibleOverage := true
	if !basecell.IsPentagon(c.BaseCell()) &&
		(res == 0 || fijk.Coord == (ijk.CoordIJK{})) {
		possibleOverage = false
	}

	coord := fijk.Coord
	for r := 1; r <= res; r++ {
		if faceijk.IsResClassIII(r) {
			coord = coord.DownAp7()
		} else {
			coord = coord.DownAp7R()
		}
		coord = coord.Neighbor(c.digit(r))
	}
	fijk.Coord = coord

	return fijk, possibleOverage
}
