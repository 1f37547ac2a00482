package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitconv-core/convert"
	"unitconv-core/units"

	"unitconv/pkg/api"
)

func TestFormatRowTSV(t *testing.T) {
	c := api.ConversionV1{SourceFile: "in.tsv", Line: 3, Domain: "length", Input: "1", From: "mile", To: "km", Result: 1.609344, Formatted: "1.609344"}
	assert.Equal(t, "in.tsv\t3\tlength\t1\tmile\tkm\t1.609344\t1.609344\t", FormatRowTSV(c))

	c.Error = "unknown unit \"x\"\tbad"
	c.Input = ""
	c.Value = 2.5
	assert.Equal(t, "in.tsv\t3\tlength\t2.5\tmile\tkm\t\t\tunknown unit \"x\" bad", FormatRowTSV(c))
}

func TestToAPI(t *testing.T) {
	res, err := convert.Do(convert.Request{Domain: units.Length, Value: 1, From: "mile", To: "km"})
	require.NoError(t, err)
	v := ToAPI(res, nil)
	assert.Equal(t, "length", v.Domain)
	assert.Equal(t, "1.609344", v.Formatted)
	assert.Equal(t, "1.609344 km", FormatLine(v))

	v = ToAPI(res, errors.New("boom"))
	assert.Equal(t, "boom", v.Error)
	assert.Empty(t, v.Formatted)
}

func TestWriteTextAndStream(t *testing.T) {
	list := []api.ConversionV1{
		{Line: 1, Domain: "weight", Input: "1", From: "kg", To: "g", Result: 1000, Formatted: "1,000"},
		{Line: 2, Domain: "weight", Input: "2", From: "kg", To: "g", Result: 2000, Formatted: "2,000"},
	}
	var a, b bytes.Buffer
	require.NoError(t, WriteText(&a, list, true))

	in := make(chan api.ConversionV1, len(list))
	for _, c := range list {
		in <- c
	}
	close(in)
	require.NoError(t, StreamText(&b, in, true))

	assert.Equal(t, a.String(), b.String())
	lines := strings.Split(strings.TrimRight(a.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TSVHeader, lines[0])
	assert.Contains(t, lines[2], "\t2000\t2,000\t")
}

func TestWriteJSONAndYAML(t *testing.T) {
	v := api.ConversionV1{Domain: "speed", Value: 100, From: "kmh", To: "mph", Result: 62.1372222, Formatted: "62.137222"}

	var j bytes.Buffer
	require.NoError(t, Write(&j, FormatJSON, v))
	assert.Contains(t, j.String(), `"formatted": "62.137222"`)
	assert.NotContains(t, j.String(), "sanitized")

	var y bytes.Buffer
	require.NoError(t, Write(&y, FormatYAML, v))
	assert.Contains(t, y.String(), "domain: speed\n")
	assert.Contains(t, y.String(), "formatted: \"62.137222\"")
}

func TestToAPIUnits(t *testing.T) {
	us, err := convert.Units(units.Pressure)
	require.NoError(t, err)
	out := ToAPIUnits(us)
	require.Len(t, out, 4)
	assert.Equal(t, api.UnitV1{Symbol: "pa", Label: "Pascal", Base: true, Factor: 1}, out[0])
}

func TestListText(t *testing.T) {
	us, err := convert.Units(units.Temperature)
	require.NoError(t, err)
	d := ToAPIDomain("temperature", us)
	assert.Equal(t, "celsius", d.Base)

	var b bytes.Buffer
	require.NoError(t, WriteDomainsText(&b, []api.DomainV1{d}))
	assert.Equal(t, "temperature\tcelsius\t3 units\n", b.String())

	b.Reset()
	require.NoError(t, WriteUnitsText(&b, d.Units))
	assert.Equal(t, "celsius\tCelsius (°C)\t(base)\nfahrenheit\tFahrenheit (°F)\nkelvin\tKelvin (K)\n", b.String())
}
