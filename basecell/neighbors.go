// SPDX-License-Identifier: MIT
// Package basecell: the resolution-0 adjacency graph, expanded from the
// home records. Pentagons are missing their K neighbor.
package basecell

import (
	"fmt"

	"github.com/katalvlaran/hexsphere/ijk"
)

var baseCellNeighbors, baseCellNeighborRots = buildNeighborGraph()

func buildNeighborGraph() (
	[NumBaseCells][ijk.NumDigits]int,
	[NumBaseCells][ijk.NumDigits]int,
) {
	var cells [NumBaseCells][ijk.NumDigits]int
	var rots [NumBaseCells][ijk.NumDigits]int

	for cell := 0; cell < NumBaseCells; cell++ {
		home := baseCellData[cell].home
		for d := ijk.Center; d < ijk.Invalid; d++ {
			if d == ijk.Center {
				cells[cell][d] = cell
				rots[cell][d] = 0

				continue
			}
			if baseCellData[cell].isPentagon && d == ijk.K {
				// deleted subsequence
				cells[cell][d] = InvalidBaseCell
				rots[cell][d] = -1

				continue
			}

			coord := home.Coord.Neighbor(d)
			if baseCellData[cell].isPentagon && pastDeletedSubsequence(coord) {
				coord = rotateOutDeletedSubsequence(coord)
			}

			cr, ok := resolveRes0(home.Face, coord, maxResolveHops)
			if !ok {
				panic(fmt.Sprintf("basecell: neighbor %d of cell %d did not resolve", d, cell))
			}
			cells[cell][d] = cr.cell
			rots[cell][d] = cr.rot
		}
	}

	return cells, rots
}

// pastDeletedSubsequence reports whether a pentagon-relative coordinate
// fell into the ik quadrant, where the pentagon's missing K subsequence
// skews the lattice.
func pastDeletedSubsequence(c ijk.CoordIJK) bool {
	return c.I+c.J+c.K > 2 && c.K > 0 && c.J == 0
}

// rotateOutDeletedSubsequence applies the pentagon distortion fix:
// translate the origin to the pentagon center, rotate cw, translate
// back.
func rotateOutDeletedSubsequence(c ijk.CoordIJK) ijk.CoordIJK {
	origin := ijk.CoordIJK{I: 2}

	return c.Sub(origin).Rotate60CW().Add(origin).Normalize()
}

// Neighbor returns the base cell adjacent to cell in the given digit
// direction, or InvalidBaseCell for the deleted K direction of a
// pentagon. The Center direction returns the cell itself.
// Complexity: O(1).
func Neighbor(cell int, d ijk.Direction) int {
	if cell < 0 || cell >= NumBaseCells || !d.IsValid() {
		return InvalidBaseCell
	}

	return baseCellNeighbors[cell][d]
}

// NeighborRot60CCW returns the number of 60° ccw rotations of the
// neighbor's coordinate system relative to cell's, or -1 when there is
// no neighbor in that direction.
// Complexity: O(1).
func NeighborRot60CCW(cell int, d ijk.Direction) int {
	if cell < 0 || cell >= NumBaseCells || !d.IsValid() {
		return -1
	}

	return baseCellNeighborRots[cell][d]
}
