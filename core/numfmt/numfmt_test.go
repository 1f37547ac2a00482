package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{1234.5, "1,234.5"},
		{-1234.5, "-1,234.5"},
		{1.609344, "1.609344"},
		{2.2046226218, "2.204623"},
		{1000000, "1,000,000"},
		{0.0001, "0.0001"},
		{12.5, "12.5"},
		{0.00005, "5.000000e-5"},
		{0.000012345, "1.234500e-5"},
		{1500000, "1.500000e+6"},
		{-2.5e-9, "-2.500000e-9"},
		{6.02214076e23, "6.022141e+23"},
		{1e-100, "1.000000e-100"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.in), "Format(%v)", c.in)
	}
}

func TestFormatNonFinite(t *testing.T) {
	assert.Equal(t, "NaN", Format(math.NaN()))
	assert.Equal(t, "∞", Format(math.Inf(1)))
	assert.Equal(t, "-∞", Format(math.Inf(-1)))
}

func TestExponentBoundaries(t *testing.T) {
	assert.False(t, Exponent(0))
	assert.False(t, Exponent(0.0001))
	assert.True(t, Exponent(0.0000999))
	assert.False(t, Exponent(1_000_000))
	assert.True(t, Exponent(1_000_000.5))
	assert.False(t, Exponent(math.NaN()))
}

func TestFixedDropsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3.5", Fixed(3.50))
	assert.Equal(t, "42", Fixed(42.0))
	assert.Equal(t, "0.333333", Fixed(1.0/3))
}
