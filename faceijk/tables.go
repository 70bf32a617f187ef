// SPDX-License-Identifier: MIT
// Package faceijk: static icosahedron geometry. Face centers, axis
// azimuths and neighbor orientations define the grid; every value here
// is fixed by the grid definition and read-only for the process
// lifetime.
package faceijk

import (
	"github.com/golang/geo/r3"

	"github.com/katalvlaran/hexsphere/geo"
	"github.com/katalvlaran/hexsphere/ijk"
)

// sqrt7 is √7, the linear scale between adjacent aperture-7 resolutions.
const sqrt7 = 2.6457513110645905905016157536392604257102

// ap7RotRads is asin(√(3/28)), the axis rotation between Class II and
// Class III resolutions.
const ap7RotRads = 0.333473172251832115336090755351601070065900389

// res0UGnomonic is the gnomonic-plane length of a resolution-0 unit.
const res0UGnomonic = 0.38196601125010500003

// faceCenterGeo holds the icosahedron face centers as lat/lng radians.
var faceCenterGeo = [NumIcosaFaces]geo.LatLng{
	{Lat: 0.803582649718989942, Lng: 1.248397419617396099},   // face  0
	{Lat: 1.307747883455638156, Lng: 2.536945009877921159},   // face  1
	{Lat: 1.054751253523952054, Lng: -1.347517358900396623},  // face  2
	{Lat: 0.600191595538186799, Lng: -0.450603909469755746},  // face  3
	{Lat: 0.491715428198773866, Lng: 0.401988202911306943},   // face  4
	{Lat: 0.172745327415618701, Lng: 1.678146885280433686},   // face  5
	{Lat: 0.605929321571350690, Lng: 2.953923329812411617},   // face  6
	{Lat: 0.427370518328979641, Lng: -1.888876200336285401},  // face  7
	{Lat: -0.079066118549212831, Lng: -0.733429513380867741}, // face  8
	{Lat: -0.230961644455383637, Lng: 0.506495587332349035},  // face  9
	{Lat: 0.079066118549212831, Lng: 2.408163140208925497},   // face 10
	{Lat: 0.230961644455383637, Lng: -2.635097066257444203},  // face 11
	{Lat: -0.172745327415618701, Lng: -1.463445768309359553}, // face 12
	{Lat: -0.605929321571350690, Lng: -0.187669323777381622}, // face 13
	{Lat: -0.427370518328979641, Lng: 1.252716453253507838},  // face 14
	{Lat: -0.600191595538186799, Lng: 2.690988744120037492},  // face 15
	{Lat: -0.491715428198773866, Lng: -2.739604450678486295}, // face 16
	{Lat: -0.803582649718989942, Lng: -1.893195233972397139}, // face 17
	{Lat: -1.307747883455638156, Lng: -0.604647643711872080}, // face 18
	{Lat: -1.054751253523952054, Lng: 1.794075294689396615},  // face 19
}

// faceCenterPoint holds the same face centers as unit 3-vectors.
var faceCenterPoint = [NumIcosaFaces]r3.Vector{
	{X: 0.2199307791404606, Y: 0.6583691780274996, Z: 0.7198475378926182},    // face  0
	{X: -0.2139234834501421, Y: 0.1478171829550703, Z: 0.9656017935214205},   // face  1
	{X: 0.1092625278784797, Y: -0.4811951572873210, Z: 0.8697775121287253},   // face  2
	{X: 0.7428567301586791, Y: -0.3593941678278028, Z: 0.5648005936517033},   // face  3
	{X: 0.8112534709140969, Y: 0.3448953237639384, Z: 0.4721387736413930},    // face  4
	{X: -0.1055498149613921, Y: 0.9794457296411413, Z: 0.1718874610009365},   // face  5
	{X: -0.8075407579970092, Y: 0.1533552485898818, Z: 0.5695261994882688},   // face  6
	{X: -0.2846148069787907, Y: -0.8644080972654206, Z: 0.4144792552473539},  // face  7
	{X: 0.7405621473854482, Y: -0.6673299564565524, Z: -0.0789837646326737},  // face  8
	{X: 0.8512303986474293, Y: 0.4722343788582681, Z: -0.2289137388687808},   // face  9
	{X: -0.7405621473854481, Y: 0.6673299564565524, Z: 0.0789837646326737},   // face 10
	{X: -0.8512303986474292, Y: -0.4722343788582682, Z: 0.2289137388687808},  // face 11
	{X: 0.1055498149613919, Y: -0.9794457296411413, Z: -0.1718874610009365},  // face 12
	{X: 0.8075407579970092, Y: -0.1533552485898819, Z: -0.5695261994882688},  // face 13
	{X: 0.2846148069787908, Y: 0.8644080972654204, Z: -0.4144792552473539},   // face 14
	{X: -0.7428567301586791, Y: 0.3593941678278027, Z: -0.5648005936517033},  // face 15
	{X: -0.8112534709140971, Y: -0.3448953237639382, Z: -0.4721387736413930}, // face 16
	{X: -0.2199307791404607, Y: -0.6583691780274996, Z: -0.7198475378926182}, // face 17
	{X: 0.2139234834501420, Y: -0.1478171829550704, Z: -0.9656017935214205},  // face 18
	{X: -0.1092625278784796, Y: 0.4811951572873210, Z: -0.8697775121287253},  // face 19
}

// faceAxesAzRadsCII holds, per face, the Class II azimuths from the face
// center to each of the three local axes: [0] i, [1] j, [2] k.
var faceAxesAzRadsCII = [NumIcosaFaces][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face  0
	{5.760339081714187279, 3.665943979320991689, 1.571548876927795877}, // face  1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625655}, // face  2
	{0.430469363979999913, 4.619259568766391033, 2.524864466373195467}, // face  3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face  4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face  5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face  6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face  7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face  8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face  9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346120}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744869}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758833981448388027}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

// Quadrant indices into faceNeighbors rows: the face itself plus its
// three edge directions.
const (
	QuadCenter = 0
	QuadIJ     = 1
	QuadKI     = 2
	QuadJK     = 3
)

// faceOrient describes how a neighboring face's coordinate system sits
// relative to a home face: the neighbor, a resolution-0 translation in
// the neighbor's system, and the number of 60° ccw rotations aligning
// the axes.
type faceOrient struct {
	face      int
	translate ijk.CoordIJK
	ccwRot60  int
}

// faceNeighbors lists, per face, the orientation of the face itself and
// of the neighbors across the ij, ki and jk edges.
var faceNeighbors = [NumIcosaFaces][4]faceOrient{
	{ // face 0
		{0, ijk.CoordIJK{0, 0, 0}, 0},
		{4, ijk.CoordIJK{2, 0, 2}, 1},
		{1, ijk.CoordIJK{2, 2, 0}, 5},
		{5, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 1
		{1, ijk.CoordIJK{0, 0, 0}, 0},
		{0, ijk.CoordIJK{2, 0, 2}, 1},
		{2, ijk.CoordIJK{2, 2, 0}, 5},
		{6, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 2
		{2, ijk.CoordIJK{0, 0, 0}, 0},
		{1, ijk.CoordIJK{2, 0, 2}, 1},
		{3, ijk.CoordIJK{2, 2, 0}, 5},
		{7, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 3
		{3, ijk.CoordIJK{0, 0, 0}, 0},
		{2, ijk.CoordIJK{2, 0, 2}, 1},
		{4, ijk.CoordIJK{2, 2, 0}, 5},
		{8, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 4
		{4, ijk.CoordIJK{0, 0, 0}, 0},
		{3, ijk.CoordIJK{2, 0, 2}, 1},
		{0, ijk.CoordIJK{2, 2, 0}, 5},
		{9, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 5
		{5, ijk.CoordIJK{0, 0, 0}, 0},
		{10, ijk.CoordIJK{2, 2, 0}, 3},
		{14, ijk.CoordIJK{2, 0, 2}, 3},
		{0, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 6
		{6, ijk.CoordIJK{0, 0, 0}, 0},
		{11, ijk.CoordIJK{2, 2, 0}, 3},
		{10, ijk.CoordIJK{2, 0, 2}, 3},
		{1, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 7
		{7, ijk.CoordIJK{0, 0, 0}, 0},
		{12, ijk.CoordIJK{2, 2, 0}, 3},
		{11, ijk.CoordIJK{2, 0, 2}, 3},
		{2, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 8
		{8, ijk.CoordIJK{0, 0, 0}, 0},
		{13, ijk.CoordIJK{2, 2, 0}, 3},
		{12, ijk.CoordIJK{2, 0, 2}, 3},
		{3, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 9
		{9, ijk.CoordIJK{0, 0, 0}, 0},
		{14, ijk.CoordIJK{2, 2, 0}, 3},
		{13, ijk.CoordIJK{2, 0, 2}, 3},
		{4, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 10
		{10, ijk.CoordIJK{0, 0, 0}, 0},
		{5, ijk.CoordIJK{2, 2, 0}, 3},
		{6, ijk.CoordIJK{2, 0, 2}, 3},
		{15, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 11
		{11, ijk.CoordIJK{0, 0, 0}, 0},
		{6, ijk.CoordIJK{2, 2, 0}, 3},
		{7, ijk.CoordIJK{2, 0, 2}, 3},
		{16, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 12
		{12, ijk.CoordIJK{0, 0, 0}, 0},
		{7, ijk.CoordIJK{2, 2, 0}, 3},
		{8, ijk.CoordIJK{2, 0, 2}, 3},
		{17, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 13
		{13, ijk.CoordIJK{0, 0, 0}, 0},
		{8, ijk.CoordIJK{2, 2, 0}, 3},
		{9, ijk.CoordIJK{2, 0, 2}, 3},
		{18, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 14
		{14, ijk.CoordIJK{0, 0, 0}, 0},
		{9, ijk.CoordIJK{2, 2, 0}, 3},
		{5, ijk.CoordIJK{2, 0, 2}, 3},
		{19, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 15
		{15, ijk.CoordIJK{0, 0, 0}, 0},
		{16, ijk.CoordIJK{2, 0, 2}, 1},
		{19, ijk.CoordIJK{2, 2, 0}, 5},
		{10, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 16
		{16, ijk.CoordIJK{0, 0, 0}, 0},
		{17, ijk.CoordIJK{2, 0, 2}, 1},
		{15, ijk.CoordIJK{2, 2, 0}, 5},
		{11, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 17
		{17, ijk.CoordIJK{0, 0, 0}, 0},
		{18, ijk.CoordIJK{2, 0, 2}, 1},
		{16, ijk.CoordIJK{2, 2, 0}, 5},
		{12, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 18
		{18, ijk.CoordIJK{0, 0, 0}, 0},
		{19, ijk.CoordIJK{2, 0, 2}, 1},
		{17, ijk.CoordIJK{2, 2, 0}, 5},
		{13, ijk.CoordIJK{0, 2, 2}, 3},
	},
	{ // face 19
		{19, ijk.CoordIJK{0, 0, 0}, 0},
		{15, ijk.CoordIJK{2, 0, 2}, 1},
		{18, ijk.CoordIJK{2, 2, 0}, 5},
		{14, ijk.CoordIJK{0, 2, 2}, 3},
	},
}

// NeighborOrientation returns the face across the given quadrant of a
// face, together with the resolution-0 translation into the neighbor's
// coordinate system and the count of 60° ccw rotations aligning the two
// systems. QuadCenter returns the face itself with a zero transform.
func NeighborOrientation(face, quad int) (neighbor int, translate ijk.CoordIJK, ccwRot60 int) {
	o := faceNeighbors[face][quad]

	return o.face, o.translate, o.ccwRot60
}

// adjacentFaceDir maps an ordered face pair to the quadrant of the edge
// between them (QuadIJ, QuadKI or QuadJK), or invalidFace for faces that
// do not share an edge. Derived once from faceNeighbors; both tables are
// immutable after process start.
var adjacentFaceDir = buildAdjacentFaceDir()

func buildAdjacentFaceDir() [NumIcosaFaces][NumIcosaFaces]int {
	var dirs [NumIcosaFaces][NumIcosaFaces]int
	for i := range dirs {
		for j := range dirs[i] {
			dirs[i][j] = invalidFace
		}
	}
	for face, quads := range faceNeighbors {
		dirs[face][face] = QuadCenter
		for quad := QuadIJ; quad <= QuadJK; quad++ {
			dirs[face][quads[quad].face] = quad
		}
	}

	return dirs
}

// maxDimByCIIRes is the maximum single-axis coordinate on a face at each
// Class II resolution; odd (Class III) slots are unused.
var maxDimByCIIRes = [MaxResolution + 2]int{
	2, -1, 14, -1, 98, -1, 686, -1, 4802, -1, 33614, -1, 235298, -1,
	1647086, -1, 11529602,
}

// unitScaleByCIIRes is the lattice scale of a resolution-0 unit at each
// Class II resolution; odd (Class III) slots are unused.
var unitScaleByCIIRes = [MaxResolution + 2]int{
	1, -1, 7, -1, 49, -1, 343, -1, 2401, -1, 16807, -1, 117649, -1,
	823543, -1, 5764801,
}
