// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"
	"strings"

	"unitconv/pkg/api"
)

// Number renders v with the shortest exact representation ("1.609344",
// "1e-12"). Used for machine-readable columns; display uses Formatted.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatRowTSV returns the TSVHeader columns for c (no trailing newline).
// Rows that failed carry empty result columns and the error text.
func FormatRowTSV(c api.ConversionV1) string {
	input := c.Input
	if input == "" {
		input = Number(c.Value)
	}
	result, formatted := Number(c.Result), c.Formatted
	if c.Error != "" {
		result, formatted = "", ""
	}
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s",
		c.SourceFile, c.Line, c.Domain, tsvField(input),
		c.From, c.To, result, formatted, tsvField(c.Error),
	)
}

func tsvField(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(s)
}

// FormatLine is the human one-liner for a single conversion: "1.609344 km".
func FormatLine(c api.ConversionV1) string {
	return c.Formatted + " " + c.To
}
