// SPDX-License-Identifier: MIT
// Package basecell: the resolution-0 cell records. Each cell has one
// canonical home placement; pentagons additionally carry the two faces
// on which their coordinate system appears clockwise-offset.
package basecell

import (
	"github.com/katalvlaran/hexsphere/faceijk"
	"github.com/katalvlaran/hexsphere/ijk"
)

const (
	// NumBaseCells is the number of resolution-0 cells.
	NumBaseCells = 122
	// NumPentagons is the number of pentagonal resolution-0 cells.
	NumPentagons = 12
	// InvalidBaseCell marks a missing cell, e.g. the K neighbor of a
	// pentagon.
	InvalidBaseCell = 127
)

// record is one resolution-0 cell: its home placement, the pentagon
// flag, and (for pentagons) the two clockwise-offset faces.
type record struct {
	home         faceijk.FaceIJK
	isPentagon   bool
	cwOffsetPent [2]int
}

func bc(face, i, j, k int) faceijk.FaceIJK {
	return faceijk.FaceIJK{Face: face, Coord: ijk.CoordIJK{I: i, J: j, K: k}}
}

// baseCellData holds the 122 resolution-0 cell records in index order.
var baseCellData = [NumBaseCells]record{
	{home: bc(1, 1, 0, 0)}, // base cell   0
	{home: bc(2, 1, 1, 0)}, // base cell   1
	{home: bc(1, 0, 0, 0)}, // base cell   2
	{home: bc(2, 1, 0, 0)}, // base cell   3
	{home: bc(0, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{-1, -1}}, // base cell   4
	{home: bc(1, 1, 1, 0)}, // base cell   5
	{home: bc(1, 0, 0, 1)}, // base cell   6
	{home: bc(2, 0, 0, 0)}, // base cell   7
	{home: bc(0, 1, 0, 0)}, // base cell   8
	{home: bc(2, 0, 1, 0)}, // base cell   9
	{home: bc(1, 0, 1, 0)}, // base cell  10
	{home: bc(1, 0, 1, 1)}, // base cell  11
	{home: bc(3, 1, 0, 0)}, // base cell  12
	{home: bc(3, 1, 1, 0)}, // base cell  13
	{home: bc(11, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{2, 6}}, // base cell  14
	{home: bc(4, 1, 0, 0)}, // base cell  15
	{home: bc(0, 0, 0, 0)}, // base cell  16
	{home: bc(6, 0, 1, 0)}, // base cell  17
	{home: bc(0, 0, 0, 1)}, // base cell  18
	{home: bc(2, 0, 1, 1)}, // base cell  19
	{home: bc(7, 0, 0, 1)}, // base cell  20
	{home: bc(2, 0, 0, 1)}, // base cell  21
	{home: bc(0, 1, 1, 0)}, // base cell  22
	{home: bc(6, 0, 0, 1)}, // base cell  23
	{home: bc(10, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{1, 5}}, // base cell  24
	{home: bc(6, 0, 0, 0)},  // base cell  25
	{home: bc(3, 0, 0, 0)},  // base cell  26
	{home: bc(11, 1, 0, 0)}, // base cell  27
	{home: bc(4, 1, 1, 0)},  // base cell  28
	{home: bc(3, 0, 1, 0)},  // base cell  29
	{home: bc(0, 0, 1, 1)},  // base cell  30
	{home: bc(4, 0, 0, 0)},  // base cell  31
	{home: bc(5, 0, 1, 0)},  // base cell  32
	{home: bc(0, 0, 1, 0)},  // base cell  33
	{home: bc(7, 0, 1, 0)},  // base cell  34
	{home: bc(11, 1, 1, 0)}, // base cell  35
	{home: bc(7, 0, 0, 0)},  // base cell  36
	{home: bc(10, 1, 0, 0)}, // base cell  37
	{home: bc(12, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{3, 7}}, // base cell  38
	{home: bc(6, 1, 0, 1)},  // base cell  39
	{home: bc(7, 1, 0, 1)},  // base cell  40
	{home: bc(4, 0, 0, 1)},  // base cell  41
	{home: bc(3, 0, 0, 1)},  // base cell  42
	{home: bc(3, 0, 1, 1)},  // base cell  43
	{home: bc(4, 0, 1, 0)},  // base cell  44
	{home: bc(6, 1, 0, 0)},  // base cell  45
	{home: bc(11, 0, 0, 0)}, // base cell  46
	{home: bc(8, 0, 0, 1)},  // base cell  47
	{home: bc(5, 0, 0, 1)},  // base cell  48
	{home: bc(14, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{0, 9}}, // base cell  49
	{home: bc(5, 0, 0, 0)},  // base cell  50
	{home: bc(12, 1, 0, 0)}, // base cell  51
	{home: bc(10, 1, 1, 0)}, // base cell  52
	{home: bc(4, 0, 1, 1)},  // base cell  53
	{home: bc(12, 1, 1, 0)}, // base cell  54
	{home: bc(7, 1, 0, 0)},  // base cell  55
	{home: bc(11, 0, 1, 0)}, // base cell  56
	{home: bc(10, 0, 0, 0)}, // base cell  57
	{home: bc(13, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{4, 8}}, // base cell  58
	{home: bc(10, 0, 0, 1)}, // base cell  59
	{home: bc(11, 0, 0, 1)}, // base cell  60
	{home: bc(9, 0, 1, 0)},  // base cell  61
	{home: bc(8, 0, 1, 0)},  // base cell  62
	{home: bc(6, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{11, 15}}, // base cell  63
	{home: bc(8, 0, 0, 0)},  // base cell  64
	{home: bc(9, 0, 0, 1)},  // base cell  65
	{home: bc(14, 1, 0, 0)}, // base cell  66
	{home: bc(5, 1, 0, 1)},  // base cell  67
	{home: bc(16, 0, 1, 1)}, // base cell  68
	{home: bc(8, 1, 0, 1)},  // base cell  69
	{home: bc(5, 1, 0, 0)},  // base cell  70
	{home: bc(12, 0, 0, 0)}, // base cell  71
	{home: bc(7, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{12, 16}}, // base cell  72
	{home: bc(12, 0, 1, 0)}, // base cell  73
	{home: bc(10, 0, 1, 0)}, // base cell  74
	{home: bc(9, 0, 0, 0)},  // base cell  75
	{home: bc(13, 1, 0, 0)}, // base cell  76
	{home: bc(16, 0, 0, 1)}, // base cell  77
	{home: bc(15, 0, 1, 1)}, // base cell  78
	{home: bc(15, 0, 1, 0)}, // base cell  79
	{home: bc(16, 0, 1, 0)}, // base cell  80
	{home: bc(14, 1, 1, 0)}, // base cell  81
	{home: bc(13, 1, 1, 0)}, // base cell  82
	{home: bc(5, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{10, 19}}, // base cell  83
	{home: bc(8, 1, 0, 0)},  // base cell  84
	{home: bc(14, 0, 0, 0)}, // base cell  85
	{home: bc(9, 1, 0, 1)},  // base cell  86
	{home: bc(14, 0, 0, 1)}, // base cell  87
	{home: bc(17, 0, 0, 1)}, // base cell  88
	{home: bc(12, 0, 0, 1)}, // base cell  89
	{home: bc(16, 0, 0, 0)}, // base cell  90
	{home: bc(17, 0, 1, 1)}, // base cell  91
	{home: bc(15, 0, 0, 1)}, // base cell  92
	{home: bc(16, 1, 0, 1)}, // base cell  93
	{home: bc(9, 1, 0, 0)},  // base cell  94
	{home: bc(15, 0, 0, 0)}, // base cell  95
	{home: bc(13, 0, 0, 0)}, // base cell  96
	{home: bc(8, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{13, 17}}, // base cell  97
	{home: bc(13, 0, 1, 0)}, // base cell  98
	{home: bc(17, 1, 0, 1)}, // base cell  99
	{home: bc(19, 0, 1, 0)}, // base cell 100
	{home: bc(14, 0, 1, 0)}, // base cell 101
	{home: bc(19, 0, 1, 1)}, // base cell 102
	{home: bc(17, 0, 1, 0)}, // base cell 103
	{home: bc(13, 0, 0, 1)}, // base cell 104
	{home: bc(17, 0, 0, 0)}, // base cell 105
	{home: bc(16, 1, 0, 0)}, // base cell 106
	{home: bc(9, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{14, 18}}, // base cell 107
	{home: bc(15, 1, 0, 1)}, // base cell 108
	{home: bc(15, 1, 0, 0)}, // base cell 109
	{home: bc(18, 0, 1, 1)}, // base cell 110
	{home: bc(18, 0, 0, 1)}, // base cell 111
	{home: bc(19, 0, 0, 1)}, // base cell 112
	{home: bc(17, 1, 0, 0)}, // base cell 113
	{home: bc(19, 0, 0, 0)}, // base cell 114
	{home: bc(18, 0, 1, 0)}, // base cell 115
	{home: bc(18, 1, 0, 1)}, // base cell 116
	{home: bc(19, 2, 0, 0), isPentagon: true, cwOffsetPent: [2]int{-1, -1}}, // base cell 117
	{home: bc(19, 1, 0, 0)}, // base cell 118
	{home: bc(18, 0, 0, 0)}, // base cell 119
	{home: bc(19, 1, 0, 1)}, // base cell 120
	{home: bc(18, 1, 0, 0)}, // base cell 121
}

// Home returns the canonical home placement of a base cell.
func Home(cell int) faceijk.FaceIJK { return baseCellData[cell].home }

// IsPentagon reports whether a base cell is one of the twelve pentagons.
func IsPentagon(cell int) bool {
	return cell >= 0 && cell < NumBaseCells && baseCellData[cell].isPentagon
}

// IsPolarPentagon reports whether a base cell is one of the two
// pentagons centered on the icosahedron's polar vertices.
func IsPolarPentagon(cell int) bool { return cell == 4 || cell == 117 }

// IsCwOffset reports whether the pentagon cell's coordinate system
// appears clockwise-offset when viewed from the given face.
func IsCwOffset(cell, face int) bool {
	return baseCellData[cell].cwOffsetPent[0] == face ||
		baseCellData[cell].cwOffsetPent[1] == face
}
