// core/units/registry.go
// Immutable symbol → factor tables for the scale-based domains.
// A factor is the number of base units in one unit of the symbol, so every
// scale domain converts with value*from/to. Tables whose source constants are
// expressed the other way round ("units per base unit") set PerBase and are
// inverted once, at build time.

package units

import (
	"fmt"
	"math"
)

// Unit is one entry of a domain table.
type Unit struct {
	Symbol string
	Label  string
	Factor float64 // base units per one Symbol
}

// Table is the build input for one scale domain.
type Table struct {
	Domain  Domain
	Base    string
	PerBase bool // Factor values are units-per-base and must be inverted
	Units   []Unit
}

type table struct {
	base  string
	units []Unit
	index map[string]int
}

// Registry maps Domain → Symbol → Factor. It is never mutated after Build,
// so a single value can be shared by any number of goroutines.
type Registry struct {
	tables map[Domain]*table
}

// Build validates tables and returns a Registry.
// Every table must contain its base unit with factor 1, and all factors must
// be finite and strictly positive.
func Build(tables ...Table) (*Registry, error) {
	r := &Registry{tables: make(map[Domain]*table, len(tables))}
	for _, t := range tables {
		if _, err := ParseDomain(string(t.Domain)); err != nil {
			return nil, err
		}
		if t.Domain.Affine() {
			return nil, fmt.Errorf("%s: %w", t.Domain, ErrAffineDomain)
		}
		if _, dup := r.tables[t.Domain]; dup {
			return nil, fmt.Errorf("%s: duplicate table", t.Domain)
		}
		tb := &table{base: t.Base, units: make([]Unit, 0, len(t.Units)), index: make(map[string]int, len(t.Units))}
		for _, u := range t.Units {
			if u.Symbol == "" {
				return nil, fmt.Errorf("%s: empty unit symbol", t.Domain)
			}
			if u.Symbol != NormalizeSymbol(u.Symbol) {
				return nil, fmt.Errorf("%s: unit symbol %q must be lower case", t.Domain, u.Symbol)
			}
			if _, dup := tb.index[u.Symbol]; dup {
				return nil, fmt.Errorf("%s: duplicate unit %q", t.Domain, u.Symbol)
			}
			if math.IsNaN(u.Factor) || math.IsInf(u.Factor, 0) || u.Factor <= 0 {
				return nil, fmt.Errorf("%s/%s: factor %v must be finite and > 0", t.Domain, u.Symbol, u.Factor)
			}
			if t.PerBase {
				u.Factor = 1 / u.Factor
			}
			tb.index[u.Symbol] = len(tb.units)
			tb.units = append(tb.units, u)
		}
		i, ok := tb.index[t.Base]
		if !ok {
			return nil, fmt.Errorf("%s: base unit %q missing", t.Domain, t.Base)
		}
		if tb.units[i].Factor != 1 {
			return nil, fmt.Errorf("%s: base unit %q has factor %v, want 1", t.Domain, t.Base, tb.units[i].Factor)
		}
		r.tables[t.Domain] = tb
	}
	return r, nil
}

// MustBuild is Build for static tables; it panics on invalid input.
func MustBuild(tables ...Table) *Registry {
	r, err := Build(tables...)
	if err != nil {
		panic("units: " + err.Error())
	}
	return r
}

func (r *Registry) lookup(d Domain) (*table, error) {
	if t, ok := r.tables[d]; ok {
		return t, nil
	}
	if d.Affine() {
		return nil, fmt.Errorf("%s: %w", d, ErrAffineDomain)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownDomain, string(d))
}

// Factor returns how many base units one symbol of domain d equals.
func (r *Registry) Factor(d Domain, symbol string) (float64, error) {
	t, err := r.lookup(d)
	if err != nil {
		return 0, err
	}
	i, ok := t.index[NormalizeSymbol(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w %q in %s", ErrUnknownUnit, symbol, d)
	}
	return t.units[i].Factor, nil
}

// Base returns the symbol whose factor is 1.
func (r *Registry) Base(d Domain) (string, error) {
	t, err := r.lookup(d)
	if err != nil {
		return "", err
	}
	return t.base, nil
}

// Units returns a copy of d's table in declaration order.
func (r *Registry) Units(d Domain) ([]Unit, error) {
	t, err := r.lookup(d)
	if err != nil {
		return nil, err
	}
	out := make([]Unit, len(t.units))
	copy(out, t.units)
	return out, nil
}

// Symbols lists d's symbols in declaration order (nil for unknown domains).
func (r *Registry) Symbols(d Domain) []string {
	t, err := r.lookup(d)
	if err != nil {
		return nil
	}
	out := make([]string, len(t.units))
	for i, u := range t.units {
		out[i] = u.Symbol
	}
	return out
}
