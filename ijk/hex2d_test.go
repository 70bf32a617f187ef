package ijk_test

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexsphere/geo"
	"github.com/katalvlaran/hexsphere/ijk"
)

// TestHex2d_Axes pins the plane images of the three axes.
func TestHex2d_Axes(t *testing.T) {
	i := ijk.CoordIJK{I: 1}.Hex2d()
	assert.InDelta(t, 1.0, i.X, geo.Epsilon)
	assert.InDelta(t, 0.0, i.Y, geo.Epsilon)

	j := ijk.CoordIJK{J: 1}.Hex2d()
	assert.InDelta(t, -0.5, j.X, geo.Epsilon)
	assert.InDelta(t, geo.Sqrt3By2, j.Y, geo.Epsilon)

	k := ijk.CoordIJK{K: 1}.Hex2d()
	assert.InDelta(t, -0.5, k.X, geo.Epsilon)
	assert.InDelta(t, -geo.Sqrt3By2, k.Y, geo.Epsilon)
}

// TestFromHex2d_Roundtrip converts lattice → plane → lattice over a patch.
func TestFromHex2d_Roundtrip(t *testing.T) {
	for _, c := range latticePatch(10) {
		got := ijk.FromHex2d(c.Hex2d())
		require.Equal(t, c, got, "roundtrip moved %v", c)
	}
}

// TestFromHex2d_NearestCell checks points near a cell center land in it.
func TestFromHex2d_NearestCell(t *testing.T) {
	cases := []struct {
		name string
		v    r2.Point
		want ijk.CoordIJK
	}{
		{"Origin", r2.Point{}, ijk.CoordIJK{}},
		{"NudgedOrigin", r2.Point{X: 0.2, Y: 0.1}, ijk.CoordIJK{}},
		{"NearI", r2.Point{X: 0.9, Y: 0.05}, ijk.CoordIJK{I: 1}},
		{"NearJ", r2.Point{X: -0.45, Y: 0.8}, ijk.CoordIJK{J: 1}},
		{"NearK", r2.Point{X: -0.45, Y: -0.8}, ijk.CoordIJK{K: 1}},
		{"NearIJ", r2.Point{X: 0.5, Y: 0.85}, ijk.CoordIJK{I: 1, J: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ijk.FromHex2d(tc.v))
		})
	}
}
