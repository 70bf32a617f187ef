package faceijk_test

import (
	"fmt"

	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/geo"
)

// ExampleFromLatLng projects a point onto its closest icosahedron face.
func ExampleFromLatLng() {
	f := faceijk.FromLatLng(geo.LatLng{}, 0)

	fmt.Println(f.Face, f.Coord)
	// Output:
	// 9 {0 0 2}
}

// ExampleFaceIJK_Boundary traces a resolution-0 cell outline.
func ExampleFaceIJK_Boundary() {
	f := faceijk.FaceIJK{Face: 2}
	boundary := f.Boundary(0, 0, faceijk.NumHexVerts)

	fmt.Println(len(boundary))
	// Output:
	// 6
}
