package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexsphere/cell"
	"github.com/katalvlaran/hexsphere/geo"
)

// mustCell indexes a point or fails the test.
func mustCell(t *testing.T, ll geo.LatLng, res int) cell.Index {
	t.Helper()
	c, err := cell.LatLngToCell(ll, res)
	require.NoError(t, err)
	require.NotEqual(t, cell.Null, c)

	return c
}

// mustParse parses a known-good literal.
func mustParse(t *testing.T, s string) cell.Index {
	t.Helper()
	c, err := cell.ParseIndex(s)
	require.NoError(t, err)

	return c
}

// TestFields reads resolution and base cell out of known literals.
func TestFields(t *testing.T) {
	cases := []struct {
		literal  string
		res      int
		baseCell int
	}{
		{"8075fffffffffff", 0, 58},
		{"801dfffffffffff", 0, 14},
		{"85283473fffffff", 5, 20},
		{"8f283473fffffff", 15, 20},
	}
	for _, tc := range cases {
		t.Run(tc.literal, func(t *testing.T) {
			c := mustParse(t, tc.literal)
			assert.Equal(t, tc.res, c.Resolution())
			assert.Equal(t, tc.baseCell, c.BaseCell())
			assert.True(t, c.IsValid())
		})
	}
}

// TestString_Roundtrip renders and reparses the canonical text form.
func TestString_Roundtrip(t *testing.T) {
	c := mustParse(t, "85283473fffffff")
	assert.Equal(t, "85283473fffffff", c.String())

	back, err := cell.ParseIndex(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, back)

	// leading zeros are preserved to width fifteen
	assert.Len(t, cell.Null.String(), 15)
}

// TestParse_Malformed rejects junk literals.
func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"", "zzz", "0x85283473fffffff", "85283473fffffffffffff"} {
		_, err := cell.ParseIndex(s)
		assert.ErrorIs(t, err, cell.ErrParse, "literal %q", s)
	}
}

// TestIsValid_Tampered flips fields of a valid index and expects
// validation to fail.
func TestIsValid_Tampered(t *testing.T) {
	c := mustParse(t, "85283473fffffff")
	require.True(t, c.IsValid())

	cases := []struct {
		name string
		bad  cell.Index
	}{
		{"HighBit", c | 1<<63},
		{"ReservedBits", c | 1<<56},
		{"ModeZero", c &^ (15 << 59)},
		{"ModeEdge", (c &^ (15 << 59)) | 2<<59},
		{"BaseCellOutOfRange", c | 127<<45},
		{"TailDigitCleared", c &^ 7},
		{"Null", cell.Null},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.bad.IsValid())
		})
	}
}

// TestIsValid_PentagonLeadingK rejects a pentagon with a leading K
// digit (the deleted subsequence).
func TestIsValid_PentagonLeadingK(t *testing.T) {
	// base cell 14 is a pentagon; craft res 1 with digit K
	pentRes1 := (mustParse(t, "801dfffffffffff") &^ (15 << 52)) | 1<<52
	invalid := pentRes1 &^ (7 << 42) // clear digit 1
	invalid |= 1 << 42               // set digit 1 = K

	assert.False(t, invalid.IsValid())

	// the same digit on a hexagon base cell is fine
	hexRes1 := (mustParse(t, "8029fffffffffff") &^ (15 << 52)) | 1<<52
	hexK := (hexRes1 &^ (7 << 42)) | 1<<42
	assert.True(t, hexK.IsValid())
}

// TestRotate60_Order: six ccw rotations and six cw rotations are the
// identity on an index, and cw undoes ccw.
func TestRotate60_Order(t *testing.T) {
	c := mustCell(t, geo.LatLngFromDegrees(37.345, -121.976), 7)

	ccw := c
	cw := c
	for i := 0; i < 6; i++ {
		ccw = ccw.Rotate60CCW()
		cw = cw.Rotate60CW()
	}
	assert.Equal(t, c, ccw)
	assert.Equal(t, c, cw)
	assert.Equal(t, c, c.Rotate60CCW().Rotate60CW())
}

// TestRotatePent60_SkipsK: pentagon rotation never leaves a leading K
// digit behind, and five orientations close the cycle.
func TestRotatePent60_SkipsK(t *testing.T) {
	pent := mustParse(t, "801dfffffffffff")
	require.True(t, pent.IsPentagon())

	// a res-2 child of the pentagon, one J step off center
	c := (pent &^ (15 << 52)) | 2<<52 // res 2
	c = (c &^ (7 << 42)) | 2<<42      // digit 1 = J
	c &^= 7 << 39                     // digit 2 = center
	require.True(t, c.IsValid())

	seen := map[cell.Index]bool{}
	r := c
	for i := 0; i < 10; i++ {
		r = r.RotatePent60CCW()
		require.True(t, r.IsValid(), "rotation %d must stay valid", i)
		seen[r] = true
	}
	assert.Len(t, seen, 5, "pentagon rotations cycle through five orientations")
	assert.Contains(t, seen, c, "the cycle returns to the start")
}
