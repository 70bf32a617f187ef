package ijk_test

import (
	"testing"

	"github.com/katalvlaran/hexsphere/ijk"
)

// BenchmarkNormalize measures canonicalization of skewed triples.
func BenchmarkNormalize(b *testing.B) {
	var sink ijk.CoordIJK
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ijk.CoordIJK{I: i & 63, J: -(i & 31), K: i & 15}.Normalize()
	}
	_ = sink
}

// BenchmarkDownUpAp7 measures one refine/round pair, the inner step of
// the indexing walk.
func BenchmarkDownUpAp7(b *testing.B) {
	c := ijk.CoordIJK{I: 5, J: 3, K: 0}
	var sink ijk.CoordIJK
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = c.DownAp7().UpAp7()
	}
	_ = sink
}

// BenchmarkFromHex2d measures the plane→lattice rounding.
func BenchmarkFromHex2d(b *testing.B) {
	v := ijk.CoordIJK{I: 41, J: 17, K: 0}.Hex2d()
	var sink ijk.CoordIJK
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ijk.FromHex2d(v)
	}
	_ = sink
}
