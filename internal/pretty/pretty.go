// Package pretty renders a single conversion as a small boxed card.
package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unitconv/pkg/api"
)

// Options control the card rendering.
type Options struct {
	// Border style; lipgloss.RoundedBorder() unless overridden.
	Border lipgloss.Border
	// Horizontal padding inside the border.
	Padding int
	// Show the "domain: from → to" caption under the equation.
	ShowCaption bool
	// Separator between the two sides of the equation.
	EqualsGlyph string
	// Colour for the result side. Empty disables colouring.
	Accent lipgloss.Color
}

// DefaultOptions is the look used by `unitconv --pretty`.
var DefaultOptions = Options{
	Border:      lipgloss.RoundedBorder(),
	Padding:     1,
	ShowCaption: true,
	EqualsGlyph: "=",
	Accent:      lipgloss.Color("12"),
}

// Render uses DefaultOptions.
func Render(c api.ConversionV1) string { return RenderWithOptions(c, DefaultOptions) }

// RenderWithOptions draws
//
//	╭─────────────────────────╮
//	│ 1 mile = 1.609344 km    │
//	│ length: mile → km       │
//	╰─────────────────────────╯
//
// Failed conversions show the error instead of the right-hand side.
func RenderWithOptions(c api.ConversionV1, opt Options) string {
	if opt.EqualsGlyph == "" {
		opt.EqualsGlyph = "="
	}
	left := fmt.Sprintf("%s %s", input(c), c.From)

	var right string
	switch {
	case c.Error != "":
		right = "error: " + c.Error
	default:
		right = c.Formatted + " " + c.To
		if opt.Accent != "" {
			right = lipgloss.NewStyle().Foreground(opt.Accent).Bold(true).Render(right)
		}
	}

	lines := []string{left + " " + opt.EqualsGlyph + " " + right}
	if opt.ShowCaption {
		lines = append(lines, fmt.Sprintf("%s: %s → %s", c.Domain, c.From, c.To))
	}
	if c.Sanitized {
		lines = append(lines, "(input was not a number; used 0)")
	}

	box := lipgloss.NewStyle().Border(opt.Border).Padding(0, opt.Padding)
	return box.Render(strings.Join(lines, "\n")) + "\n"
}

func input(c api.ConversionV1) string {
	if s := strings.TrimSpace(c.Input); s != "" && !c.Sanitized {
		return s
	}
	return fmt.Sprintf("%g", c.Value)
}
