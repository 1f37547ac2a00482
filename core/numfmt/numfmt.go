// Package numfmt renders conversion results for display.
//
// Magnitudes in [1e-4, 1e6] print in fixed notation with en-US digit grouping
// and up to six fraction digits; anything smaller or larger prints in
// exponential notation with six mantissa fraction digits. The numeric value a
// converter returns is never altered by formatting.
package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// MaxFractionDigits caps fixed-notation output.
	MaxFractionDigits = 6
	// ExpDigits is the number of mantissa fraction digits in exponential output.
	ExpDigits = 6

	smallLimit = 0.0001
	largeLimit = 1_000_000
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format returns the display string for v.
func Format(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	if Exponent(v) {
		return Exponential(v)
	}
	return Fixed(v)
}

// Fixed formats v with thousands separators and at most MaxFractionDigits.
func Fixed(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(MaxFractionDigits)))
}

// Exponential formats v as d.dddddde±x. The exponent carries an explicit
// sign and no zero padding (1.500000e+7, 5.000000e-5).
func Exponential(v float64) string {
	s := strconv.FormatFloat(v, 'e', ExpDigits, 64)
	i := strings.LastIndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}

// Exponent reports whether Format would choose exponential notation for v.
func Exponent(v float64) bool {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	a := math.Abs(v)
	return a < smallLimit || a > largeLimit
}
