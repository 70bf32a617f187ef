// SPDX-License-Identifier: MIT
// Package ijk: conversion between lattice coordinates and real-valued
// face-plane coordinates. The i axis lies along angle 0 of the face
// plane, j at +120°, k at +240°.
package ijk

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/hexsphere/geo"
)

// Hex2d projects the lattice coordinate into the face plane.
// Complexity: O(1).
func (c CoordIJK) Hex2d() r2.Point {
	i := c.I - c.K
	j := c.J - c.K

	return r2.Point{
		X: float64(i) - 0.5*float64(j),
		Y: float64(j) * geo.Sqrt3By2,
	}
}

// FromHex2d returns the lattice cell containing the face-plane point,
// normalized. The containment test works in the axial (i,j) frame and
// folds negative quadrants back across the axes.
// Complexity: O(1).
func FromHex2d(v r2.Point) CoordIJK {
	var h CoordIJK

	a1 := v.X
	if a1 < 0 {
		a1 = -a1
	}
	a2 := v.Y
	if a2 < 0 {
		a2 = -a2
	}

	// reverse conversion to fractional axial coordinates
	x2 := a2 / geo.Sqrt3By2
	x1 := a1 + x2/2.0

	m1 := int(x1)
	m2 := int(x2)

	r1 := x1 - float64(m1)
	r2f := x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2f < (1.0+r1)/2.0 {
				h.I = m1
				h.J = m2
			} else {
				h.I = m1
				h.J = m2 + 1
			}
		} else {
			if r2f < 1.0-r1 {
				h.J = m2
			} else {
				h.J = m2 + 1
			}
			if 1.0-r1 <= r2f && r2f < 2.0*r1 {
				h.I = m1 + 1
			} else {
				h.I = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2f < 1.0-r1 {
				h.J = m2
			} else {
				h.J = m2 + 1
			}
			if 2.0*r1-1.0 < r2f && r2f < 1.0-r1 {
				h.I = m1
			} else {
				h.I = m1 + 1
			}
		} else {
			if r2f < r1/2.0 {
				h.I = m1 + 1
				h.J = m2
			} else {
				h.I = m1 + 1
				h.J = m2 + 1
			}
		}
	}

	// fold across the axes if necessary
	if v.X < 0.0 {
		if h.J%2 == 0 { // even j
			axisI := h.J / 2
			diff := h.I - axisI
			h.I -= 2 * diff
		} else {
			axisI := (h.J + 1) / 2
			diff := h.I - axisI
			h.I -= 2*diff + 1
		}
	}

	if v.Y < 0.0 {
		h.I -= (2*h.J + 1) / 2
		h.J = -h.J
	}

	return h.Normalize()
}
