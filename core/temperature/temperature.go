// core/temperature/temperature.go
// Affine conversion between Celsius, Fahrenheit and Kelvin.
// Every conversion routes through Celsius (the pivot):
//   F→C (v-32)*5/9   K→C v-273.15
//   C→F v*9/5+32     C→K v+273.15

package temperature

import (
	"fmt"
	"math"

	"unitconv-core/linear"
	"unitconv-core/units"
)

// Places is the rounding applied to temperature results.
const Places = 4

// AbsoluteZeroC is 0 K expressed in Celsius.
const AbsoluteZeroC = -273.15

// Unit is a temperature scale. Only the declared constants are valid.
type Unit uint8

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Kelvin
)

var all = []Unit{Celsius, Fahrenheit, Kelvin}

// Units returns the supported scales in display order.
func Units() []Unit { return append([]Unit(nil), all...) }

// Symbol returns the registry key for u.
func (u Unit) Symbol() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	}
	return ""
}

// Label is the display name for u.
func (u Unit) Label() string {
	switch u {
	case Celsius:
		return "Celsius (°C)"
	case Fahrenheit:
		return "Fahrenheit (°F)"
	case Kelvin:
		return "Kelvin (K)"
	}
	return ""
}

func (u Unit) String() string { return u.Symbol() }

// ParseUnit maps a symbol to a Unit, with the casing rules of
// units.NormalizeSymbol. Unknown symbols are an error; there is no implicit
// Celsius fallback.
func ParseUnit(s string) (Unit, error) {
	switch units.NormalizeSymbol(s) {
	case "celsius":
		return Celsius, nil
	case "fahrenheit":
		return Fahrenheit, nil
	case "kelvin":
		return Kelvin, nil
	}
	return 0, fmt.Errorf("%w %q in %s", units.ErrUnknownUnit, s, units.Temperature)
}

// ToCelsius converts v in unit u to Celsius.
func ToCelsius(v float64, u Unit) float64 {
	switch u {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	}
	return v
}

// FromCelsius converts c degrees Celsius to unit u.
func FromCelsius(c float64, u Unit) float64 {
	switch u {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	}
	return c
}

// Convert converts v from one scale to another, rounded to Places decimals.
// A finite v whose result overflows float64 yields units.ErrOverflow.
func Convert(v float64, from, to Unit) (float64, error) {
	out := v
	if from != to {
		out = FromCelsius(ToCelsius(v, from), to)
	}
	if math.IsInf(out, 0) && !math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %v %s→%s: %w", units.Temperature, v, from, to, units.ErrOverflow)
	}
	return linear.Round(out, Places), nil
}

// ConvertSymbols is Convert for registry-style symbols.
func ConvertSymbols(v float64, from, to string) (float64, error) {
	f, err := ParseUnit(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseUnit(to)
	if err != nil {
		return 0, err
	}
	return Convert(v, f, t)
}

// BelowAbsoluteZero reports whether v in unit u is colder than 0 K.
func BelowAbsoluteZero(v float64, u Unit) bool {
	return ToCelsius(v, u) < AbsoluteZeroC
}
