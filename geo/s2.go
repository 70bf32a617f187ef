// SPDX-License-Identifier: MIT
// Package geo: bridge to github.com/golang/geo/s2.
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// S2 converts the point to an s2.LatLng for use with the golang/geo
// spherical geometry library.
func (ll LatLng) S2() s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(ll.Lat), Lng: s1.Angle(ll.Lng)}
}

// LatLngFromS2 converts an s2.LatLng into a LatLng.
func LatLngFromS2(ll s2.LatLng) LatLng {
	return LatLng{Lat: ll.Lat.Radians(), Lng: ll.Lng.Radians()}
}
