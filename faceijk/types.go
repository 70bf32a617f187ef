// SPDX-License-Identifier: MIT
// Package faceijk: face-local coordinate types and grid constants.
package faceijk

import "github.com/katalvlaran/hexsphere/ijk"

const (
	// NumIcosaFaces is the number of triangular icosahedron faces.
	NumIcosaFaces = 20
	// NumHexVerts is the vertex count of a hexagonal cell.
	NumHexVerts = 6
	// NumPentVerts is the vertex count of a pentagonal cell.
	NumPentVerts = 5
	// MaxFaceCoord is the maximum single-axis face coordinate of a
	// resolution-0 cell center.
	MaxFaceCoord = 2
	// MaxResolution is the finest grid resolution.
	MaxResolution = 15

	// invalidFace marks "no face yet" while tracing boundaries.
	invalidFace = -1
)

// FaceIJK is a lattice coordinate in the local system of one
// icosahedron face.
type FaceIJK struct {
	Face  int
	Coord ijk.CoordIJK
}

// Overage reports where a coordinate sits relative to its face triangle
// after an adjustment pass.
type Overage int

const (
	// NoOverage: the coordinate lies inside its face.
	NoOverage Overage = iota
	// FaceEdge: the coordinate sits exactly on a shared face edge
	// (substrate grids only).
	FaceEdge
	// NewFace: the coordinate was relocated onto a neighboring face.
	NewFace
)

// IsResClassIII reports whether a resolution is Class III. Odd
// resolutions have their axes rotated asin(√(3/28)) ≈ 19.1°
// counter-clockwise relative to the even, Class II resolutions.
func IsResClassIII(res int) bool { return res%2 == 1 }
