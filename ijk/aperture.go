// SPDX-License-Identifier: MIT
// Package ijk: aperture-7 and aperture-3 resolution transforms.
//
// The aperture-7 hierarchy alternates axis orientation between
// resolutions: the unprimed transforms rotate counter-clockwise, the
// primed (R) transforms clockwise. Down moves one resolution finer,
// Up is its exact inverse on cell centers.
package ijk

import "math"

// DownAp7 moves c one aperture-7 resolution finer along the
// counter-clockwise axis alignment.
// Complexity: O(1).
func (c CoordIJK) DownAp7() CoordIJK {
	// res r unit vectors expressed in res r+1
	iVec := CoordIJK{3, 0, 1}.Scale(c.I)
	jVec := CoordIJK{1, 3, 0}.Scale(c.J)
	kVec := CoordIJK{0, 1, 3}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}

// DownAp7R moves c one aperture-7 resolution finer along the clockwise
// axis alignment.
// Complexity: O(1).
func (c CoordIJK) DownAp7R() CoordIJK {
	iVec := CoordIJK{3, 1, 0}.Scale(c.I)
	jVec := CoordIJK{0, 3, 1}.Scale(c.J)
	kVec := CoordIJK{1, 0, 3}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}

// UpAp7 moves c one aperture-7 resolution coarser along the
// counter-clockwise axis alignment, rounding to the nearest cell.
// Inverse of DownAp7 on cell centers.
// Complexity: O(1).
func (c CoordIJK) UpAp7() CoordIJK {
	// drop the redundant axis before the rational inverse
	i := float64(c.I - c.K)
	j := float64(c.J - c.K)

	out := CoordIJK{
		I: int(math.Round((3.0*i - j) / 7.0)),
		J: int(math.Round((i + 2.0*j) / 7.0)),
		K: 0,
	}

	return out.Normalize()
}

// UpAp7R moves c one aperture-7 resolution coarser along the clockwise
// axis alignment, rounding to the nearest cell. Inverse of DownAp7R on
// cell centers.
// Complexity: O(1).
func (c CoordIJK) UpAp7R() CoordIJK {
	i := float64(c.I - c.K)
	j := float64(c.J - c.K)

	out := CoordIJK{
		I: int(math.Round((2.0*i + j) / 7.0)),
		J: int(math.Round((3.0*j - i) / 7.0)),
		K: 0,
	}

	return out.Normalize()
}

// DownAp3 refines c onto the aperture-3 vertex substrate along the
// counter-clockwise axis alignment.
// Complexity: O(1).
func (c CoordIJK) DownAp3() CoordIJK {
	iVec := CoordIJK{2, 0, 1}.Scale(c.I)
	jVec := CoordIJK{1, 2, 0}.Scale(c.J)
	kVec := CoordIJK{0, 1, 2}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}

// DownAp3R refines c onto the aperture-3 vertex substrate along the
// clockwise axis alignment.
// Complexity: O(1).
func (c CoordIJK) DownAp3R() CoordIJK {
	iVec := CoordIJK{2, 1, 0}.Scale(c.I)
	jVec := CoordIJK{0, 2, 1}.Scale(c.J)
	kVec := CoordIJK{1, 0, 2}.Scale(c.K)

	return iVec.Add(jVec).Add(kVec).Normalize()
}
