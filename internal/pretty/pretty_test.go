package pretty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"unitconv/pkg/api"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	// First-run: create golden if missing.
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

// plain disables colour so goldens do not depend on the terminal.
func plain() Options {
	o := DefaultOptions
	o.Accent = ""
	return o
}

func TestRenderMileToKm_Golden(t *testing.T) {
	c := api.ConversionV1{Domain: "length", Input: "1", Value: 1, From: "mile", To: "km", Result: 1.609344, Formatted: "1.609344"}
	got := RenderWithOptions(c, plain())
	path := filepath.Join("testdata", "mile_km.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderShape(t *testing.T) {
	c := api.ConversionV1{Domain: "temperature", Value: 100, From: "celsius", To: "fahrenheit", Result: 212, Formatted: "212"}
	got := RenderWithOptions(c, plain())
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines (border, equation, caption, border), got %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[3], "╰") {
		t.Fatalf("missing rounded border:\n%s", got)
	}
	if !strings.Contains(lines[1], "100 celsius = 212 fahrenheit") {
		t.Fatalf("equation line wrong: %q", lines[1])
	}
	if !strings.Contains(lines[2], "temperature: celsius → fahrenheit") {
		t.Fatalf("caption line wrong: %q", lines[2])
	}
}

func TestRenderErrorAndSanitized(t *testing.T) {
	c := api.ConversionV1{Domain: "length", Input: "abc", From: "m", To: "parsec", Sanitized: true, Error: `unknown unit "parsec" in length`}
	got := RenderWithOptions(c, plain())
	if !strings.Contains(got, `0 m = error: unknown unit "parsec" in length`) {
		t.Fatalf("error not rendered:\n%s", got)
	}
	if !strings.Contains(got, "used 0") {
		t.Fatalf("sanitized note missing:\n%s", got)
	}
}

func TestRenderNoCaptionCustomBorder(t *testing.T) {
	o := plain()
	o.ShowCaption = false
	o.Border = lipgloss.NormalBorder()
	o.EqualsGlyph = "->"
	c := api.ConversionV1{Domain: "weight", Input: "1", From: "kg", To: "g", Formatted: "1,000"}
	got := RenderWithOptions(c, o)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "┌") {
		t.Fatalf("unexpected render:\n%s", got)
	}
	if !strings.Contains(got, "1 kg -> 1,000 g") {
		t.Fatalf("custom glyph missing:\n%s", got)
	}
}
