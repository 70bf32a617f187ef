// SPDX-License-Identifier: MIT
// Package faceijk: cell outline tracing. Vertices are carried on a ×3
// substrate grid so they stay exact integer lattice points until the
// final projection; an edge that crosses an icosahedron face edge gets
// a synthetic vertex at the crossing so each half projects on its own
// face plane.
package faceijk

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/hexsphere/geo"
	"github.com/katalvlaran/hexsphere/ijk"
)

// Substrate vertex offsets of an origin-centered cell, listed ccw from
// the i axis. The Class II set lives on an aperture-33r substrate; the
// Class III set on 33r7r, which lands back on a Class II grid one
// resolution finer.
var (
	hexVertsCII = [NumHexVerts]ijk.CoordIJK{
		{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2}, {2, 0, 1},
	}
	hexVertsCIII = [NumHexVerts]ijk.CoordIJK{
		{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5}, {5, 0, 1},
	}
	pentVertsCII = [NumPentVerts]ijk.CoordIJK{
		{2, 1, 0}, {1, 2, 0}, {0, 2, 1}, {0, 1, 2}, {1, 0, 2},
	}
	pentVertsCIII = [NumPentVerts]ijk.CoordIJK{
		{5, 4, 0}, {1, 5, 0}, {0, 5, 4}, {0, 1, 5}, {4, 0, 5},
	}
)

// toVerts returns the six substrate vertices of a hexagonal cell, the
// adjusted center, and the substrate resolution (res+1 when res is
// Class III).
func (f FaceIJK) toVerts(res int) (FaceIJK, int, [NumHexVerts]FaceIJK) {
	verts := hexVertsCII
	if IsResClassIII(res) {
		verts = hexVertsCIII
	}

	// move the center onto the aperture-33r substrate
	f.Coord = f.Coord.DownAp3().DownAp3R()

	// Class III needs a cw aperture 7 to land on a Class II substrate
	if IsResClassIII(res) {
		f.Coord = f.Coord.DownAp7R()
		res++
	}

	var out [NumHexVerts]FaceIJK
	for v := 0; v < NumHexVerts; v++ {
		out[v] = FaceIJK{
			Face:  f.Face,
			Coord: f.Coord.Add(verts[v]).Normalize(),
		}
	}

	return f, res, out
}

// pentToVerts is toVerts for the five vertices of a pentagonal cell.
func (f FaceIJK) pentToVerts(res int) (FaceIJK, int, [NumPentVerts]FaceIJK) {
	verts := pentVertsCII
	if IsResClassIII(res) {
		verts = pentVertsCIII
	}

	f.Coord = f.Coord.DownAp3().DownAp3R()

	if IsResClassIII(res) {
		f.Coord = f.Coord.DownAp7R()
		res++
	}

	var out [NumPentVerts]FaceIJK
	for v := 0; v < NumPentVerts; v++ {
		out[v] = FaceIJK{
			Face:  f.Face,
			Coord: f.Coord.Add(verts[v]).Normalize(),
		}
	}

	return f, res, out
}

// faceEdgeVerts returns the face triangle corners in substrate plane
// coordinates: v0 on the i axis, v1 and v2 across from it.
func faceEdgeVerts(maxDim int) (r2.Point, r2.Point, r2.Point) {
	d := float64(maxDim)

	v0 := r2.Point{X: 3.0 * d, Y: 0.0}
	v1 := r2.Point{X: -1.5 * d, Y: 3.0 * geo.Sqrt3By2 * d}
	v2 := r2.Point{X: -1.5 * d, Y: -3.0 * geo.Sqrt3By2 * d}

	return v0, v1, v2
}

// edgeForDir picks the face-triangle edge separating two adjacent faces.
// An unknown direction means a corrupt static table.
func edgeForDir(fromFace, toFace int, v0, v1, v2 r2.Point) (r2.Point, r2.Point) {
	switch adjacentFaceDir[fromFace][toFace] {
	case QuadIJ:
		return v0, v1
	case QuadJK:
		return v1, v2
	case QuadKI:
		return v2, v0
	default:
		panic(fmt.Sprintf("faceijk: faces %d and %d do not share an edge", fromFace, toFace))
	}
}

// Boundary traces length vertices of the hexagonal cell outline
// starting at vertex start, in counter-clockwise order. Synthetic
// vertices are inserted where a Class III cell edge crosses an
// icosahedron face edge, so the result holds between length and
// 2·length points.
// Complexity: O(length).
func (f FaceIJK) Boundary(res, start, length int) []geo.LatLng {
	centerIJK, adjRes, fijkVerts := f.toVerts(res)

	// returning the whole loop needs one extra iteration to probe the
	// last edge for a crossing
	additional := 0
	if length == NumHexVerts {
		additional = 1
	}

	out := make([]geo.LatLng, 0, 2*NumHexVerts)
	lastFace := invalidFace
	lastOverage := NoOverage

	for vert := start; vert < start+length+additional; vert++ {
		v := vert % NumHexVerts

		fijk, overage := fijkVerts[v].AdjustOverageClassII(adjRes, false, true)

		// Each icosahedron face is its own projection plane, so an edge
		// between vertices on different faces needs a vertex at the face
		// edge; Class II cell vertices sit on face edges themselves.
		if IsResClassIII(res) && vert > start && fijk.Face != lastFace &&
			lastOverage != FaceEdge {
			lastV := (v + 5) % NumHexVerts
			orig2d0 := fijkVerts[lastV].Coord.Hex2d()
			orig2d1 := fijkVerts[v].Coord.Hex2d()

			v0, v1, v2 := faceEdgeVerts(maxDimByCIIRes[adjRes])

			face2 := lastFace
			if lastFace == centerIJK.Face {
				face2 = fijk.Face
			}
			edge0, edge1 := edgeForDir(centerIJK.Face, face2, v0, v1, v2)

			inter := geo.Intersect(orig2d0, orig2d1, edge0, edge1)

			// a crossing at a cell vertex means both edge halves already
			// lie on single faces; exact equality because the endpoints
			// come from identical computations
			if orig2d0 != inter && orig2d1 != inter {
				out = append(out, hex2dToGeo(inter, centerIJK.Face, adjRes, true))
			}
		}

		// the extra iteration only probes the last edge
		if vert < start+NumHexVerts {
			out = append(out, hex2dToGeo(fijk.Coord.Hex2d(), fijk.Face, adjRes, true))
		}

		lastFace = fijk.Face
		lastOverage = overage
	}

	return out
}

// PentBoundary traces length vertices of a pentagonal cell outline
// starting at vertex start. Every Class III pentagon edge crosses an
// icosahedron face edge, so each gets a synthetic vertex.
// Complexity: O(length).
func (f FaceIJK) PentBoundary(res, start, length int) []geo.LatLng {
	_, adjRes, fijkVerts := f.pentToVerts(res)

	additional := 0
	if length == NumPentVerts {
		additional = 1
	}

	out := make([]geo.LatLng, 0, 2*NumPentVerts)
	var lastFijk FaceIJK

	for vert := start; vert < start+length+additional; vert++ {
		v := vert % NumPentVerts

		fijk, _ := fijkVerts[v].AdjustPentVertOverage(adjRes)

		if IsResClassIII(res) && vert > start {
			// express this vertex in the previous vertex's face system by
			// stepping through the face neighbor relation
			tmpFijk := fijk

			orig2d0 := lastFijk.Coord.Hex2d()

			orient := faceNeighbors[tmpFijk.Face][adjacentFaceDir[tmpFijk.Face][lastFijk.Face]]
			tmpFijk.Face = orient.face

			c := tmpFijk.Coord
			for i := 0; i < orient.ccwRot60; i++ {
				c = c.Rotate60CCW()
			}
			c = c.Add(orient.translate.Scale(unitScaleByCIIRes[adjRes] * 3)).Normalize()
			tmpFijk.Coord = c

			orig2d1 := tmpFijk.Coord.Hex2d()

			v0, v1, v2 := faceEdgeVerts(maxDimByCIIRes[adjRes])
			edge0, edge1 := edgeForDir(tmpFijk.Face, fijk.Face, v0, v1, v2)

			inter := geo.Intersect(orig2d0, orig2d1, edge0, edge1)
			out = append(out, hex2dToGeo(inter, tmpFijk.Face, adjRes, true))
		}

		if vert < start+NumPentVerts {
			out = append(out, hex2dToGeo(fijk.Coord.Hex2d(), fijk.Face, adjRes, true))
		}

		lastFijk = fijk
	}

	return out
}
