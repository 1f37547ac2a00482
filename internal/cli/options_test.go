// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconv-core/units"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	t.Setenv("UNITCONV_CONFIG", "")
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func parseErr(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("UNITCONV_CONFIG", "")
	_, err := ParseArgs(newFS(), args)
	return err
}

func TestPositionalForm(t *testing.T) {
	o := mustParse(t, "length", "1", "mile", "km")
	assert.Equal(t, units.Length, o.Domain)
	assert.Equal(t, "1", o.Value)
	assert.Equal(t, "mile", o.From)
	assert.Equal(t, "km", o.To)
	assert.Equal(t, "text", o.Output)
}

func TestFlagForm(t *testing.T) {
	o := mustParse(t, "--domain", "temperature", "--from", "celsius", "--to", "kelvin", "-40", "-o", "json")
	assert.Equal(t, units.Temperature, o.Domain)
	assert.Equal(t, "-40", o.Value)
	assert.Equal(t, "json", o.Output)
}

func TestDomainFlagWithPositionalUnits(t *testing.T) {
	o := mustParse(t, "-d", "Weight", "2", "kg", "lb")
	assert.Equal(t, units.Weight, o.Domain)
	assert.Equal(t, "kg", o.From)
	assert.Equal(t, "lb", o.To)
}

func TestList(t *testing.T) {
	o := mustParse(t, "--list")
	assert.True(t, o.List)
	assert.Empty(t, o.Domain)

	o = mustParse(t, "--list", "speed")
	assert.Equal(t, units.Speed, o.Domain)
}

func TestErrors(t *testing.T) {
	assert.Error(t, parseErr(t))
	assert.Error(t, parseErr(t, "length", "1", "m"))
	assert.ErrorIs(t, parseErr(t, "time", "1", "s", "min"), units.ErrUnknownDomain)
	assert.Error(t, parseErr(t, "--domain", "length", "--from", "m", "1"))
	assert.Error(t, parseErr(t, "length", "1", "m", "km", "--output", "jsonl"))
	assert.Error(t, parseErr(t, "length", "1", "m", "km", "--raw", "--pretty"))
	assert.Error(t, parseErr(t, "--list", "length", "weight"))
}

func TestHelp(t *testing.T) {
	err := parseErr(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestVersionSkipsValidation(t *testing.T) {
	o := mustParse(t, "--version")
	assert.True(t, o.Version)
}
