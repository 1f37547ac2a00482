// pkg/api/conversion_v1.go
package api

// ConversionV1 is the stable JSON/JSONL/YAML schema for one conversion.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ConversionV1 struct {
	SourceFile string  `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Line       int     `json:"line,omitempty" yaml:"line,omitempty"`
	Domain     string  `json:"domain" yaml:"domain"`
	Input      string  `json:"input,omitempty" yaml:"input,omitempty"` // raw text as read (batch)
	Value      float64 `json:"value" yaml:"value"`
	From       string  `json:"from" yaml:"from"`
	To         string  `json:"to" yaml:"to"`
	Result     float64 `json:"result" yaml:"result"`
	Formatted  string  `json:"formatted" yaml:"formatted"`
	Sanitized  bool    `json:"sanitized,omitempty" yaml:"sanitized,omitempty"`
	Error      string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// UnitV1 describes one unit of a domain.
type UnitV1 struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Label  string  `json:"label" yaml:"label"`
	Base   bool    `json:"base,omitempty" yaml:"base,omitempty"`
	Factor float64 `json:"factor,omitempty" yaml:"factor,omitempty"` // base units per one symbol
}

// DomainV1 lists a domain and its units.
type DomainV1 struct {
	Name  string   `json:"name" yaml:"name"`
	Base  string   `json:"base" yaml:"base"`
	Units []UnitV1 `json:"units,omitempty" yaml:"units,omitempty"`
}
