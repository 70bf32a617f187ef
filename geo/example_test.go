package geo_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hexsphere/geo"
)

// ExampleDistanceRads measures a quarter of the equator.
func ExampleDistanceRads() {
	origin := geo.LatLng{}
	east := geo.LatLng{Lng: math.Pi / 2}

	fmt.Printf("%.6f\n", geo.DistanceRads(origin, east))
	// Output:
	// 1.570796
}

// ExampleAzDistanceRads walks due east along the equator.
func ExampleAzDistanceRads() {
	origin := geo.LatLng{}
	p := geo.AzDistanceRads(origin, math.Pi/2, 0.5)

	fmt.Printf("lat=%.6f lng=%.6f\n", p.Lat, p.Lng)
	// Output:
	// lat=0.000000 lng=0.500000
}

// ExampleLatLngFromDegrees shows the degree constructor and accessors.
func ExampleLatLngFromDegrees() {
	ll := geo.LatLngFromDegrees(45.0, -90.0)

	fmt.Printf("%.4f %.4f\n", ll.LatDegrees(), ll.LngDegrees())
	// Output:
	// 45.0000 -90.0000
}
