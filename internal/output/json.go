// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"unitconv-core/convert"

	"unitconv/pkg/api"
)

// ToAPI converts a facade result to the stable wire schema (v1).
// err, when set, is recorded in the Error field.
func ToAPI(r convert.Result, err error) api.ConversionV1 {
	v := api.ConversionV1{
		Domain:    string(r.Domain),
		Value:     r.Value,
		From:      r.From,
		To:        r.To,
		Result:    r.Output,
		Formatted: r.Formatted,
		Sanitized: r.Sanitized,
	}
	if err != nil {
		v.Error = err.Error()
		v.Result, v.Formatted = 0, ""
	}
	return v
}

// ToAPIUnits converts a unit catalog to the wire schema.
func ToAPIUnits(list []convert.UnitInfo) []api.UnitV1 {
	out := make([]api.UnitV1, 0, len(list))
	for _, u := range list {
		out = append(out, api.UnitV1{Symbol: u.Symbol, Label: u.Label, Base: u.Base, Factor: u.Factor})
	}
	return out
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as a single YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Write dispatches on format for single values (text falls back to JSON
// for values that have no line rendering).
func Write(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return WriteJSON(w, v)
	}
}
