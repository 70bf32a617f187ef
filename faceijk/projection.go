// SPDX-License-Identifier: MIT
// Package faceijk: gnomonic projection between face-plane coordinates
// and the sphere. Each face projects through its center; Class III
// resolutions add the inter-class axis rotation.
package faceijk

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/hexsphere/geo"
	"github.com/katalvlaran/hexsphere/ijk"
)

// hex2dToGeo inverse-projects a face-plane point to the sphere. res
// scales the plane to the given resolution; substrate marks ×3 vertex
// grids, which also carry an extra √7 for Class III resolutions.
func hex2dToGeo(v r2.Point, face, res int, substrate bool) geo.LatLng {
	r := geo.Mag(v)
	if r < geo.Epsilon {
		return faceCenterGeo[face]
	}

	theta := math.Atan2(v.Y, v.X)

	// scale the magnitude down to a resolution-0 unit
	for i := 0; i < res; i++ {
		r /= sqrt7
	}
	if substrate {
		r /= 3.0
		if IsResClassIII(res) {
			r /= sqrt7
		}
	}
	r *= res0UGnomonic

	// inverse gnomonic: plane distance to arc length
	r = math.Atan(r)

	if !substrate && IsResClassIII(res) {
		theta = geo.PosAngleRads(theta + ap7RotRads)
	}
	theta = geo.PosAngleRads(faceAxesAzRadsCII[face][0] - theta)

	return geo.AzDistanceRads(faceCenterGeo[face], theta, r)
}

// geoToHex2d projects a sphere point onto its closest face, returning
// the face and the face-plane coordinates scaled to res.
func geoToHex2d(g geo.LatLng, res int) (int, r2.Point) {
	face, sqd := closestFace(g)

	// cos(angular distance) = 1 - sqd/2 for unit-sphere chords
	r := math.Acos(1.0 - sqd/2.0)
	if r < geo.Epsilon {
		return face, r2.Point{}
	}

	theta := geo.AzimuthRads(faceCenterGeo[face], g)
	theta = geo.PosAngleRads(faceAxesAzRadsCII[face][0] - theta)
	if IsResClassIII(res) {
		theta = geo.PosAngleRads(theta - ap7RotRads)
	}

	// gnomonic: arc length to plane distance, then up to res scale
	r = math.Tan(r)
	r /= res0UGnomonic
	for i := 0; i < res; i++ {
		r *= sqrt7
	}

	return face, r2.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// closestFace returns the face whose center is nearest to g together
// with the squared chord distance to it.
func closestFace(g geo.LatLng) (int, float64) {
	v := geo.Vec3dFromLatLng(g)

	face := 0
	sqd := 5.0 // farther than any chord on the unit sphere
	for f := 0; f < NumIcosaFaces; f++ {
		d := geo.SquareDistance(faceCenterPoint[f], v)
		if d < sqd {
			face = f
			sqd = d
		}
	}

	return face, sqd
}

// FromLatLng finds the containing grid cell of a sphere point at a
// resolution, as face-local lattice coordinates.
// Complexity: O(1).
func FromLatLng(g geo.LatLng, res int) FaceIJK {
	face, v := geoToHex2d(g, res)

	return FaceIJK{Face: face, Coord: ijk.FromHex2d(v)}
}

// ToLatLng returns the sphere point at the cell center.
// Complexity: O(1).
func (f FaceIJK) ToLatLng(res int) geo.LatLng {
	return hex2dToGeo(f.Coord.Hex2d(), f.Face, res, false)
}
