// SPDX-License-Identifier: MIT
// Package geo: unit-sphere vectors and planar segment intersection.
// Planar points are r2.Point and sphere points are r3.Vector from
// github.com/golang/geo, so the grid composes with the wider ecosystem
// without adapter types.
package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Vec3dFromLatLng lifts a LatLng onto the unit sphere.
// Complexity: O(1).
func Vec3dFromLatLng(ll LatLng) r3.Vector {
	r := math.Cos(ll.Lat)

	return r3.Vector{
		X: math.Cos(ll.Lng) * r,
		Y: math.Sin(ll.Lng) * r,
		Z: math.Sin(ll.Lat),
	}
}

// SquareDistance returns the squared Euclidean distance between two
// vectors. For unit vectors this is the squared chord length, a
// monotone proxy for angular distance.
// Complexity: O(1).
func SquareDistance(a, b r3.Vector) float64 {
	return a.Sub(b).Norm2()
}

// Mag returns the magnitude of a planar point treated as a vector from
// the origin.
func Mag(v r2.Point) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Intersect returns the intersection of the line through p0,p1 with the
// line through p2,p3. The segments must not be parallel; callers in the
// boundary tracer guarantee this by construction of the face tables,
// and parallel input panics.
// Complexity: O(1).
func Intersect(p0, p1, p2, p3 r2.Point) r2.Point {
	s1 := r2.Point{X: p1.X - p0.X, Y: p1.Y - p0.Y}
	s2 := r2.Point{X: p3.X - p2.X, Y: p3.Y - p2.Y}

	den := -s2.X*s1.Y + s1.X*s2.Y
	if den == 0 {
		panic("geo: Intersect of parallel lines")
	}

	t := (s2.X*(p0.Y-p2.Y) - s2.Y*(p0.X-p2.X)) / den

	return r2.Point{X: p0.X + t*s1.X, Y: p0.Y + t*s1.Y}
}
