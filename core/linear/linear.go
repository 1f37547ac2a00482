// core/linear/linear.go
// Scale-based conversion: result = value * factor[from] / factor[to].
// Inputs are used as given (NaN stays NaN); sanitation belongs to callers.
// A finite value whose result leaves the float64 range is an error.

package linear

import (
	"fmt"
	"math"

	"unitconv-core/units"
)

// Places is the rounding applied to every linear result, enough to hide
// float representation noise such as 0.30000000000000004.
const Places = 10

// Convert converts value between two symbols of a scale domain using reg.
func Convert(reg *units.Registry, d units.Domain, value float64, from, to string) (float64, error) {
	ff, err := reg.Factor(d, from)
	if err != nil {
		return 0, err
	}
	ft, err := reg.Factor(d, to)
	if err != nil {
		return 0, err
	}
	out := value
	if units.NormalizeSymbol(from) != units.NormalizeSymbol(to) {
		base := value * ff
		out = base / ft
		if math.IsInf(base, 0) {
			// the base value overflowed; the direct ratio may still fit
			out = value * (ff / ft)
		}
	}
	if math.IsInf(out, 0) && !math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s %v %s→%s: %w", d, value, from, to, units.ErrOverflow)
	}
	return Round(out, Places), nil
}

// Round rounds v half away from zero to places decimals. Values too large
// to scale without overflow are already coarser than the requested
// precision and are returned unchanged, as are NaN and ±Inf.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow10(places)
	s := v * p
	if math.IsInf(s, 0) || math.Abs(s) >= 1<<53 {
		return v
	}
	return math.Round(s) / p
}
