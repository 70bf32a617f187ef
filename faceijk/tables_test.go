package faceijk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexsphere/geo"
)

// TestFaceCenters_Consistent cross-checks the two face-center tables:
// the stored unit vectors must be the lifted lat/lng centers.
func TestFaceCenters_Consistent(t *testing.T) {
	for f := 0; f < NumIcosaFaces; f++ {
		v := geo.Vec3dFromLatLng(faceCenterGeo[f])

		require.InDelta(t, 1.0, faceCenterPoint[f].Norm(), 1e-12, "face %d center must be unit", f)
		require.InDelta(t, v.X, faceCenterPoint[f].X, 1e-12, "face %d x", f)
		require.InDelta(t, v.Y, faceCenterPoint[f].Y, 1e-12, "face %d y", f)
		require.InDelta(t, v.Z, faceCenterPoint[f].Z, 1e-12, "face %d z", f)
	}
}

// TestFaceCenters_Antipodal: the icosahedron is centrally symmetric;
// every face has an antipodal partner.
func TestFaceCenters_Antipodal(t *testing.T) {
	pairs := map[int]int{0: 17, 1: 18, 2: 19, 3: 15, 4: 16, 5: 12, 6: 13, 7: 14, 8: 10, 9: 11}
	for f, opp := range pairs {
		sum := faceCenterPoint[f].Add(faceCenterPoint[opp])
		assert.InDelta(t, 0.0, sum.Norm(), 1e-12, "faces %d and %d must be antipodal", f, opp)
	}
}

// TestFaceCenters_Spacing: adjacent face centers sit one face apart,
// roughly 0.73 radians on this icosahedron; nothing is closer.
func TestFaceCenters_Spacing(t *testing.T) {
	for a := 0; a < NumIcosaFaces; a++ {
		for b := a + 1; b < NumIcosaFaces; b++ {
			d := geo.DistanceRads(faceCenterGeo[a], faceCenterGeo[b])
			assert.Greater(t, d, 0.7, "faces %d and %d too close", a, b)
		}
	}
}

// TestFaceAxes_Separation: the three axis azimuths of each face are
// 120° apart, in i, j, k counter-clockwise order.
func TestFaceAxes_Separation(t *testing.T) {
	third := 2.0 * math.Pi / 3.0
	for f := 0; f < NumIcosaFaces; f++ {
		az := faceAxesAzRadsCII[f]
		assert.InDelta(t, third, geo.PosAngleRads(az[0]-az[1]), 1e-9, "face %d i-j", f)
		assert.InDelta(t, third, geo.PosAngleRads(az[1]-az[2]), 1e-9, "face %d j-k", f)
		assert.InDelta(t, third, geo.PosAngleRads(az[2]-az[0]), 1e-9, "face %d k-i", f)
	}
}

// TestFaceNeighbors_Shape: each face names itself in the center slot
// and three distinct neighbors, and neighborship is symmetric.
func TestFaceNeighbors_Shape(t *testing.T) {
	for f := 0; f < NumIcosaFaces; f++ {
		require.Equal(t, f, faceNeighbors[f][QuadCenter].face)
		require.Zero(t, faceNeighbors[f][QuadCenter].ccwRot60)

		seen := map[int]bool{}
		for q := QuadIJ; q <= QuadJK; q++ {
			n := faceNeighbors[f][q].face
			require.NotEqual(t, f, n)
			require.False(t, seen[n], "face %d lists neighbor %d twice", f, n)
			seen[n] = true

			// symmetric: the neighbor lists f on some edge
			back := false
			for qq := QuadIJ; qq <= QuadJK; qq++ {
				if faceNeighbors[n][qq].face == f {
					back = true
				}
			}
			require.True(t, back, "face %d -> %d not symmetric", f, n)

			rot := faceNeighbors[f][q].ccwRot60
			require.GreaterOrEqual(t, rot, 0)
			require.Less(t, rot, 6)
		}
	}
}

// TestAdjacentFaceDir_Derivation: the derived pair table agrees with
// the neighbor table in both directions.
func TestAdjacentFaceDir_Derivation(t *testing.T) {
	for f := 0; f < NumIcosaFaces; f++ {
		require.Equal(t, QuadCenter, adjacentFaceDir[f][f])

		neighbors := 0
		for g := 0; g < NumIcosaFaces; g++ {
			if f == g {
				continue
			}
			dir := adjacentFaceDir[f][g]
			if dir == invalidFace {
				continue
			}
			neighbors++
			require.Equal(t, g, faceNeighbors[f][dir].face)
		}
		require.Equal(t, 3, neighbors, "face %d must have exactly three adjacent faces", f)
	}
}

// TestScales: the Class II dimension tables scale by aperture 7 per
// even resolution, with maxDim twice the unit scale.
func TestScales(t *testing.T) {
	for res := 0; res <= MaxResolution+1; res += 2 {
		require.Equal(t, 2*unitScaleByCIIRes[res], maxDimByCIIRes[res], "res %d", res)
		if res >= 2 {
			require.Equal(t, 7*unitScaleByCIIRes[res-2], unitScaleByCIIRes[res], "res %d", res)
		}
	}
}

// TestIsResClassIII alternates by parity.
func TestIsResClassIII(t *testing.T) {
	assert.False(t, IsResClassIII(0))
	assert.True(t, IsResClassIII(1))
	assert.False(t, IsResClassIII(14))
	assert.True(t, IsResClassIII(15))
}
