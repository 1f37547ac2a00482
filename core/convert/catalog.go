package convert

import (
	"unitconv-core/temperature"
	"unitconv-core/units"
)

// UnitInfo describes a selectable unit of a domain.
type UnitInfo struct {
	Symbol string
	Label  string
	Base   bool
	Factor float64 // base units per one Symbol; 0 for affine domains
}

// Units lists the units of d, base unit flagged.
func (c *Converter) Units(d units.Domain) ([]UnitInfo, error) {
	if d.Affine() {
		us := temperature.Units()
		out := make([]UnitInfo, len(us))
		for i, u := range us {
			out[i] = UnitInfo{Symbol: u.Symbol(), Label: u.Label(), Base: u == temperature.Celsius}
		}
		return out, nil
	}
	base, err := c.reg.Base(d)
	if err != nil {
		return nil, err
	}
	us, err := c.reg.Units(d)
	if err != nil {
		return nil, err
	}
	out := make([]UnitInfo, len(us))
	for i, u := range us {
		out[i] = UnitInfo{Symbol: u.Symbol, Label: u.Label, Base: u.Symbol == base, Factor: u.Factor}
	}
	return out, nil
}

// Symbols lists the unit symbols of d (nil for unknown domains).
func (c *Converter) Symbols(d units.Domain) []string {
	us, err := c.Units(d)
	if err != nil {
		return nil
	}
	out := make([]string, len(us))
	for i, u := range us {
		out[i] = u.Symbol
	}
	return out
}

// Units lists d's units from the default registry.
func Units(d units.Domain) ([]UnitInfo, error) { return std.Units(d) }

// Symbols lists d's symbols from the default registry.
func Symbols(d units.Domain) []string { return std.Symbols(d) }
