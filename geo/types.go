// SPDX-License-Identifier: MIT
// Package geo: core types and numeric policy constants.
package geo

import "math"

// Numeric policy. Lattice comparisons and geographic comparisons use
// different epsilons; both are fixed by the grid definition and must not
// be tuned per call site.
const (
	// Epsilon is the planar/lattice comparison threshold.
	Epsilon = 1e-16
	// EpsilonDeg is the geographic comparison threshold in degrees.
	EpsilonDeg = 1e-9
	// EpsilonRad is EpsilonDeg expressed in radians.
	EpsilonRad = EpsilonDeg * math.Pi / 180.0
)

// Sqrt3By2 is √3/2, the sine of 60° and of 120°; the j/k axes of the
// hex plane are rotated ±120° from the i axis.
const Sqrt3By2 = 0.8660254037844386467637231707529361834714

// LatLng is a point on the unit sphere, latitude and longitude in
// radians. The zero value is the intersection of the equator and the
// prime meridian.
type LatLng struct {
	Lat float64 // latitude in radians, [-π/2, π/2]
	Lng float64 // longitude in radians, [-π, π]
}

// LatLngFromDegrees builds a LatLng from degree inputs.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{Lat: lat * math.Pi / 180.0, Lng: lng * math.Pi / 180.0}
}

// LatDegrees returns the latitude in degrees.
func (ll LatLng) LatDegrees() float64 { return ll.Lat * 180.0 / math.Pi }

// LngDegrees returns the longitude in degrees.
func (ll LatLng) LngDegrees() float64 { return ll.Lng * 180.0 / math.Pi }

// AlmostEqualThreshold reports whether ll and other differ by less than
// threshold in both coordinates.
func (ll LatLng) AlmostEqualThreshold(other LatLng, threshold float64) bool {
	return math.Abs(ll.Lat-other.Lat) < threshold &&
		math.Abs(ll.Lng-other.Lng) < threshold
}

// AlmostEqual reports coordinate-wise equality within EpsilonRad.
func (ll LatLng) AlmostEqual(other LatLng) bool {
	return ll.AlmostEqualThreshold(other, EpsilonRad)
}
