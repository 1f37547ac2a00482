package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryInvariants(t *testing.T) {
	for _, d := range Domains() {
		if d.Affine() {
			_, err := Default.Base(d)
			assert.ErrorIs(t, err, ErrAffineDomain, "%s must not have a scale table", d)
			continue
		}
		base, err := Default.Base(d)
		require.NoError(t, err)
		f, err := Default.Factor(d, base)
		require.NoError(t, err)
		assert.Equal(t, 1.0, f, "%s base %s", d, base)

		us, err := Default.Units(d)
		require.NoError(t, err)
		require.NotEmpty(t, us)
		for _, u := range us {
			assert.False(t, math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0), "%s/%s", d, u.Symbol)
			assert.Greater(t, u.Factor, 0.0, "%s/%s", d, u.Symbol)
			assert.NotEmpty(t, u.Label)
		}
	}
}

func TestSpeedTableIsInverted(t *testing.T) {
	f, err := Default.Factor(Speed, "kmh")
	require.NoError(t, err)
	assert.InDelta(t, 1/3.6, f, 1e-15)

	f, err = Default.Factor(Speed, "ms")
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestFactorErrors(t *testing.T) {
	_, err := Default.Factor(Length, "parsec")
	assert.True(t, errors.Is(err, ErrUnknownUnit), "got %v", err)
	assert.Contains(t, err.Error(), "parsec")

	// Symbols are per-domain.
	_, err = Default.Factor(Weight, "km")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Default.Factor(Temperature, "celsius")
	assert.ErrorIs(t, err, ErrAffineDomain)

	_, err = Default.Factor(Domain("luminosity"), "cd")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestSymbolsOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"mm", "cm", "m", "km", "inch", "foot", "yard", "mile"},
		Default.Symbols(Length))
	assert.Nil(t, Default.Symbols(Temperature))
}

func TestSymbolCasing(t *testing.T) {
	for _, s := range []string{"km", "KM", " Km "} {
		f, err := Default.Factor(Length, s)
		require.NoError(t, err, s)
		assert.Equal(t, 1000.0, f, s)
	}
	f, err := Default.Factor(Volume, "FL_OZ")
	require.NoError(t, err)
	assert.Equal(t, 0.0295735, f)
	assert.Equal(t, "fl_oz", NormalizeSymbol(" Fl_Oz\t"))
}

func TestUnitsReturnsCopy(t *testing.T) {
	us, err := Default.Units(Pressure)
	require.NoError(t, err)
	us[0].Factor = 42

	f, err := Default.Factor(Pressure, us[0].Symbol)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestBuildRejectsBadTables(t *testing.T) {
	cases := []struct {
		name string
		tab  Table
	}{
		{"missing base", Table{Domain: Length, Base: "m", Units: []Unit{{"km", "", 1000}}}},
		{"base not one", Table{Domain: Length, Base: "km", Units: []Unit{{"km", "", 1000}}}},
		{"zero factor", Table{Domain: Weight, Base: "kg", Units: []Unit{{"kg", "", 1}, {"x", "", 0}}}},
		{"negative factor", Table{Domain: Weight, Base: "kg", Units: []Unit{{"kg", "", 1}, {"x", "", -2}}}},
		{"nan factor", Table{Domain: Weight, Base: "kg", Units: []Unit{{"kg", "", 1}, {"x", "", math.NaN()}}}},
		{"inf factor", Table{Domain: Weight, Base: "kg", Units: []Unit{{"kg", "", 1}, {"x", "", math.Inf(1)}}}},
		{"duplicate unit", Table{Domain: Area, Base: "m2", Units: []Unit{{"m2", "", 1}, {"m2", "", 1}}}},
		{"empty symbol", Table{Domain: Area, Base: "m2", Units: []Unit{{"m2", "", 1}, {"", "", 3}}}},
		{"upper-case symbol", Table{Domain: Area, Base: "m2", Units: []Unit{{"m2", "", 1}, {"Acre", "", 4046.86}}}},
		{"affine domain", Table{Domain: Temperature, Base: "celsius", Units: []Unit{{"celsius", "", 1}}}},
		{"unknown domain", Table{Domain: "time", Base: "s", Units: []Unit{{"s", "", 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.tab)
			assert.Error(t, err)
		})
	}

	_, err := Build(
		Table{Domain: Length, Base: "m", Units: []Unit{{"m", "", 1}}},
		Table{Domain: Length, Base: "m", Units: []Unit{{"m", "", 1}}},
	)
	assert.Error(t, err, "duplicate domain tables")
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(Table{Domain: Length, Base: "m"})
	})
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("  Length ")
	require.NoError(t, err)
	assert.Equal(t, Length, d)

	_, err = ParseDomain("time")
	assert.ErrorIs(t, err, ErrUnknownDomain)

	assert.Len(t, Domains(), 7)
	assert.True(t, Temperature.Affine())
	assert.False(t, Speed.Affine())
}
