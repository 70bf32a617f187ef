// SPDX-License-Identifier: MIT
package faceijk

import "github.com/katalvlaran/hexsphere/ijk"

// AdjustOverageClassII checks a Class II face coordinate against its
// face triangle and, on overage, relocates it onto the neighboring face
// across the crossed edge, rotated and translated into that face's
// system. pentLeading4 rotates the missing-K subsequence out of the way
// for pentagons whose leading non-zero digit is I; substrate marks ×3
// vertex-grid coordinates, where landing exactly on a face edge is
// reported as FaceEdge.
// Complexity: O(1); a single relocation step.
func (f FaceIJK) AdjustOverageClassII(res int, pentLeading4, substrate bool) (FaceIJK, Overage) {
	c := f.Coord

	maxDim := maxDimByCIIRes[res]
	if substrate {
		maxDim *= 3
	}

	sum := c.I + c.J + c.K
	if substrate && sum == maxDim {
		return f, FaceEdge
	}
	if sum <= maxDim {
		return f, NoOverage
	}

	// relocation across the crossed edge
	var orient faceOrient
	switch {
	case c.K > 0 && c.J > 0: // jk quadrant
		orient = faceNeighbors[f.Face][QuadJK]
	case c.K > 0: // ik quadrant
		orient = faceNeighbors[f.Face][QuadKI]
		if pentLeading4 {
			// rotate the deleted k-axes subsequence out: translate the
			// origin to the pentagon center, rotate cw, translate back
			origin := ijk.CoordIJK{I: maxDim}
			c = c.Sub(origin).Rotate60CW().Add(origin)
		}
	default: // ij quadrant
		orient = faceNeighbors[f.Face][QuadIJ]
	}

	f.Face = orient.face

	for i := 0; i < orient.ccwRot60; i++ {
		c = c.Rotate60CCW()
	}

	unitScale := unitScaleByCIIRes[res]
	if substrate {
		unitScale *= 3
	}
	c = c.Add(orient.translate.Scale(unitScale)).Normalize()
	f.Coord = c

	// overage points on pentagon boundaries can end up on edges
	if substrate && c.I+c.J+c.K == maxDim {
		return f, FaceEdge
	}

	return f, NewFace
}

// AdjustPentVertOverage relocates a substrate pentagon vertex until it
// settles on a face; pentagon vertices can hop across more than one
// face.
// Complexity: O(1); at most a few relocation steps.
func (f FaceIJK) AdjustPentVertOverage(res int) (FaceIJK, Overage) {
	overage := NewFace
	for overage == NewFace {
		f, overage = f.AdjustOverageClassII(res, false, true)
	}

	return f, overage
}
