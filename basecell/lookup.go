// SPDX-License-Identifier: MIT
// Package basecell: face lookup. The face×coordinate table is expanded
// once from the home records by walking the icosahedron face
// orientations; every resolution-0 coordinate a face can see resolves
// to exactly one base cell and one rotation.
package basecell

import (
	"fmt"

	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/ijk"
)

// cellRot pairs a base cell with the number of 60° ccw rotations
// between the querying face's system and the cell's home orientation.
type cellRot struct {
	cell int
	rot  int
}

// maxResolveHops bounds the face-to-face walk; no resolution-0 cell is
// more than a handful of face transitions from its home.
const maxResolveHops = 8

// homeByFace indexes the home records per face for the table expansion.
var homeByFace = buildHomeIndex()

// faceLookup maps every face and coordinate in [0..2]³ to its base cell
// and rotation.
var faceLookup = buildFaceLookup()

func buildHomeIndex() [faceijk.NumIcosaFaces]map[ijk.CoordIJK]int {
	var homes [faceijk.NumIcosaFaces]map[ijk.CoordIJK]int
	for f := range homes {
		homes[f] = make(map[ijk.CoordIJK]int)
	}
	for cell, rec := range baseCellData {
		homes[rec.home.Face][rec.home.Coord] = cell
	}

	return homes
}

func buildFaceLookup() [faceijk.NumIcosaFaces][3][3][3]cellRot {
	var table [faceijk.NumIcosaFaces][3][3][3]cellRot
	for face := 0; face < faceijk.NumIcosaFaces; face++ {
		for i := 0; i <= faceijk.MaxFaceCoord; i++ {
			for j := 0; j <= faceijk.MaxFaceCoord; j++ {
				for k := 0; k <= faceijk.MaxFaceCoord; k++ {
					cr, ok := resolveRes0(face, ijk.CoordIJK{I: i, J: j, K: k}, maxResolveHops)
					if !ok {
						panic(fmt.Sprintf(
							"basecell: face %d coord (%d,%d,%d) did not resolve", face, i, j, k))
					}
					table[face][i][j][k] = cr
				}
			}
		}
	}

	return table
}

// resolveRes0 walks a resolution-0 coordinate from the given face to
// the face that homes its cell, accumulating the frame rotation.
// Overage coordinates cross the edge of their quadrant; edge midpoints
// cross their single edge; a face corner crosses directly into the home
// face when one of its two edges reaches it in a single hop and
// otherwise follows a fixed primary edge around the vertex.
func resolveRes0(face int, c ijk.CoordIJK, hopsLeft int) (cellRot, bool) {
	c = c.Normalize()
	if cell, ok := homeByFace[face][c]; ok {
		return cellRot{cell: cell}, true
	}
	if hopsLeft == 0 {
		return cellRot{}, false
	}

	quad := resolveQuad(face, c)
	nf, nc, rot := transformRes0(face, c, quad)

	cr, ok := resolveRes0(nf, nc, hopsLeft-1)
	if !ok {
		return cellRot{}, false
	}

	return cellRot{cell: cr.cell, rot: (cr.rot + rot) % 6}, true
}

// resolveQuad picks the face edge a non-home coordinate resolves
// across.
func resolveQuad(face int, c ijk.CoordIJK) int {
	if c.I+c.J+c.K > faceijk.MaxFaceCoord {
		switch {
		case c.K > 0 && c.J > 0:
			return faceijk.QuadJK
		case c.K > 0:
			return faceijk.QuadKI
		default:
			return faceijk.QuadIJ
		}
	}

	switch c {
	case ijk.CoordIJK{I: 1, J: 1}:
		return faceijk.QuadIJ
	case ijk.CoordIJK{J: 1, K: 1}:
		return faceijk.QuadJK
	case ijk.CoordIJK{I: 1, K: 1}:
		return faceijk.QuadKI
	case ijk.CoordIJK{I: 2}:
		return cornerQuad(face, c, faceijk.QuadIJ, faceijk.QuadKI)
	case ijk.CoordIJK{J: 2}:
		return cornerQuad(face, c, faceijk.QuadIJ, faceijk.QuadJK)
	case ijk.CoordIJK{K: 2}:
		return cornerQuad(face, c, faceijk.QuadJK, faceijk.QuadKI)
	default:
		panic(fmt.Sprintf("basecell: interior coordinate %v has no home", c))
	}
}

// cornerQuad resolves a face-corner coordinate: a corner pentagon homes
// on one of the five faces around its vertex, so an edge whose single
// hop lands on a home wins; otherwise the walk continues around the
// vertex along the primary edge.
func cornerQuad(face int, c ijk.CoordIJK, primary, secondary int) int {
	for _, quad := range [2]int{primary, secondary} {
		nf, nc, _ := transformRes0(face, c, quad)
		if _, ok := homeByFace[nf][nc]; ok {
			return quad
		}
	}

	return primary
}

// transformRes0 carries a resolution-0 coordinate across one face edge
// into the neighbor's coordinate system.
func transformRes0(face int, c ijk.CoordIJK, quad int) (int, ijk.CoordIJK, int) {
	nf, translate, rot := faceijk.NeighborOrientation(face, quad)
	for i := 0; i < rot; i++ {
		c = c.Rotate60CCW()
	}
	c = c.Add(translate).Normalize()

	return nf, c, rot
}

// FromFaceIJK returns the base cell at a face coordinate, or
// InvalidBaseCell when any component exceeds MaxFaceCoord.
// Complexity: O(1).
func FromFaceIJK(f faceijk.FaceIJK) int {
	c := f.Coord
	if c.I > faceijk.MaxFaceCoord || c.J > faceijk.MaxFaceCoord || c.K > faceijk.MaxFaceCoord {
		return InvalidBaseCell
	}

	return faceLookup[f.Face][c.I][c.J][c.K].cell
}

// CCWRot60FromFaceIJK returns the rotation between the face's system
// and the base cell's home orientation at a face coordinate, or -1 when
// out of range.
// Complexity: O(1).
func CCWRot60FromFaceIJK(f faceijk.FaceIJK) int {
	c := f.Coord
	if c.I > faceijk.MaxFaceCoord || c.J > faceijk.MaxFaceCoord || c.K > faceijk.MaxFaceCoord {
		return -1
	}

	return faceLookup[f.Face][c.I][c.J][c.K].rot
}
