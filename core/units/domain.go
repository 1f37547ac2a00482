package units

import (
	"errors"
	"fmt"
	"strings"
)

// Domain is one of the fixed measurement domains.
type Domain string

const (
	Length      Domain = "length"
	Weight      Domain = "weight"
	Volume      Domain = "volume"
	Speed       Domain = "speed"
	Area        Domain = "area"
	Pressure    Domain = "pressure"
	Temperature Domain = "temperature"
)

var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrAffineDomain is returned when a scale factor is requested for a
	// domain that converts with an offset (temperature).
	ErrAffineDomain = errors.New("domain has no scale table")
	// ErrOverflow is returned when a finite value converts to ±Inf.
	ErrOverflow = errors.New("result out of float64 range")
)

var allDomains = []Domain{Length, Weight, Volume, Speed, Area, Pressure, Temperature}

// Domains returns every domain in display order.
func Domains() []Domain {
	out := make([]Domain, len(allDomains))
	copy(out, allDomains)
	return out
}

// ParseDomain maps a user-supplied name to a Domain (case-insensitive).
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range allDomains {
		if d == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDomain, s)
}

// NormalizeSymbol is the casing policy for unit symbols in every domain:
// surrounding space is ignored and matching is case-insensitive.
func NormalizeSymbol(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Affine reports whether d needs an offset-aware converter.
func (d Domain) Affine() bool { return d == Temperature }

func (d Domain) String() string { return string(d) }
