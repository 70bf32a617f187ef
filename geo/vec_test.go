package geo_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hexsphere/geo"
)

// TestVec3dFromLatLng lifts cardinal points onto the unit sphere.
func TestVec3dFromLatLng(t *testing.T) {
	v := geo.Vec3dFromLatLng(geo.LatLng{})
	assert.InDelta(t, 1.0, v.X, geo.Epsilon)
	assert.InDelta(t, 0.0, v.Y, geo.Epsilon)
	assert.InDelta(t, 0.0, v.Z, geo.Epsilon)

	north := geo.Vec3dFromLatLng(geo.LatLng{Lat: math.Pi / 2})
	assert.InDelta(t, 1.0, north.Z, 1e-15)

	// Every lifted point is a unit vector.
	for _, ll := range []geo.LatLng{
		geo.LatLngFromDegrees(37.0, -122.0),
		geo.LatLngFromDegrees(-88.0, 5.0),
		geo.LatLngFromDegrees(0.0, 179.9),
	} {
		assert.InDelta(t, 1.0, geo.Vec3dFromLatLng(ll).Norm(), 1e-15)
	}
}

// TestSquareDistance matches chord geometry on simple vectors.
func TestSquareDistance(t *testing.T) {
	a := geo.Vec3dFromLatLng(geo.LatLng{})
	b := geo.Vec3dFromLatLng(geo.LatLng{Lng: math.Pi})

	assert.Zero(t, geo.SquareDistance(a, a))
	assert.InDelta(t, 4.0, geo.SquareDistance(a, b), 1e-15, "antipodal chord² = 4")
}

// TestMag measures planar magnitudes.
func TestMag(t *testing.T) {
	assert.Zero(t, geo.Mag(r2.Point{}))
	assert.InDelta(t, 5.0, geo.Mag(r2.Point{X: 3, Y: 4}), geo.Epsilon)
}

// TestIntersect crosses perpendicular and skew segments.
func TestIntersect(t *testing.T) {
	cases := []struct {
		name           string
		p0, p1, p2, p3 r2.Point
		want           r2.Point
	}{
		{
			"AxisCross",
			r2.Point{X: -1, Y: 0}, r2.Point{X: 1, Y: 0},
			r2.Point{X: 0, Y: -1}, r2.Point{X: 0, Y: 1},
			r2.Point{},
		},
		{
			"Diagonals",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 2},
			r2.Point{X: 0, Y: 2}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 1},
		},
		{
			"AtEndpoint",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1},
			r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Intersect(tc.p0, tc.p1, tc.p2, tc.p3)
			assert.InDelta(t, tc.want.X, got.X, geo.Epsilon)
			assert.InDelta(t, tc.want.Y, got.Y, geo.Epsilon)
		})
	}
}

// TestS2Interop round-trips through golang/geo/s2.
func TestS2Interop(t *testing.T) {
	ll := geo.LatLngFromDegrees(37.345, -121.976)
	back := geo.LatLngFromS2(ll.S2())
	assert.True(t, ll.AlmostEqual(back))
}
