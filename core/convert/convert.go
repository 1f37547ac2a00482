// Package convert is the entry point to the conversion core: it sanitizes
// input, picks the linear or affine converter for the domain and formats the
// result for display.
//
// Sanitation happens here and nowhere else. Non-finite or missing values are
// replaced by 0 and reported through Result.Sanitized (or the bool returned
// by Sanitize/ParseValue), so a display always has a number to show while the
// converters themselves keep exact arithmetic semantics.
package convert

import (
	"math"
	"strconv"
	"strings"

	"unitconv-core/linear"
	"unitconv-core/numfmt"
	"unitconv-core/temperature"
	"unitconv-core/units"
)

// Request is one conversion call.
type Request struct {
	Domain units.Domain
	Value  float64
	From   string
	To     string
}

// Result is a converted value and its display form.
type Result struct {
	Request
	Output    float64
	Formatted string
	Sanitized bool // Value was non-finite and replaced by 0
}

// Converter binds the facade to a registry.
type Converter struct {
	reg *units.Registry
}

// New returns a Converter over reg (units.Default when nil).
func New(reg *units.Registry) *Converter {
	if reg == nil {
		reg = units.Default
	}
	return &Converter{reg: reg}
}

var std = New(units.Default)

// Registry exposes the bound registry.
func (c *Converter) Registry() *units.Registry { return c.reg }

// Convert sanitizes value and converts it from one unit to another.
func (c *Converter) Convert(d units.Domain, value float64, from, to string) (float64, error) {
	value, _ = Sanitize(value)
	if d.Affine() {
		return temperature.ConvertSymbols(value, from, to)
	}
	return linear.Convert(c.reg, d, value, from, to)
}

// Do converts and formats req.
func (c *Converter) Do(req Request) (Result, error) {
	v, sanitized := Sanitize(req.Value)
	out, err := c.Convert(req.Domain, v, req.From, req.To)
	if err != nil {
		return Result{Request: req}, err
	}
	return Result{Request: req, Output: out, Formatted: numfmt.Format(out), Sanitized: sanitized}, nil
}

// ConvertString parses raw, converts it and returns the display string.
func (c *Converter) ConvertString(d units.Domain, raw, from, to string) (string, error) {
	v, _ := ParseValue(raw)
	out, err := c.Convert(d, v, from, to)
	if err != nil {
		return "", err
	}
	return numfmt.Format(out), nil
}

func (c *Converter) display(d units.Domain, value float64, from, to string) (string, error) {
	out, err := c.Convert(d, value, from, to)
	if err != nil {
		return "", err
	}
	return numfmt.Format(out), nil
}

// Convert converts with the default registry.
func Convert(d units.Domain, value float64, from, to string) (float64, error) {
	return std.Convert(d, value, from, to)
}

// Do converts and formats req with the default registry.
func Do(req Request) (Result, error) { return std.Do(req) }

// ConvertString parses raw text and converts it with the default registry.
func ConvertString(d units.Domain, raw, from, to string) (string, error) {
	return std.ConvertString(d, raw, from, to)
}

// Format renders a converted value for display.
func Format(v float64) string { return numfmt.Format(v) }

// Sanitize replaces NaN and ±Inf by 0. The bool reports a replacement.
func Sanitize(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, false
}

// ParseValue reads a user-typed number. Surrounding space and en-US thousands
// separators are accepted. Empty, unparsable or non-finite text yields
// (0, true); a literal zero is a value like any other and yields (0, false).
func ParseValue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return Sanitize(v)
}
