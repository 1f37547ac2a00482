package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpLine = "←/→ domain · ↑/↓ from · [/] to · s swap · esc quit"

// View renders tabs, the value field, the unit selectors and the result.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles

	tabs := make([]string, len(m.domains))
	for i, d := range m.domains {
		if i == m.tab {
			tabs[i] = st.ActiveTab.Render(d.String())
		} else {
			tabs[i] = st.Tab.Render(d.String())
		}
	}

	var b strings.Builder
	b.WriteString(st.Title.Render("unitconv"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.unitLine("from", m.sel[m.Domain()].from))
	b.WriteString("\n")
	b.WriteString(m.unitLine("to", m.sel[m.Domain()].to))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(st.Error.Render("error: " + m.err.Error()))
	default:
		b.WriteString("= " + st.Result.Render(m.result.Formatted+" "+m.result.To))
		if m.result.Sanitized && strings.TrimSpace(m.input.Value()) != "" {
			b.WriteString("\n" + st.Warn.Render("not a number; showing 0"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(st.Help.Render(helpLine))

	return st.Frame.Render(b.String()) + "\n"
}

func (m Model) unitLine(label string, i int) string {
	d := m.Domain()
	name := m.unit(i)
	if ls := m.labels[d]; i >= 0 && i < len(ls) && ls[i] != "" {
		name += " (" + ls[i] + ")"
	}
	return m.styles.Label.Render(label) + m.styles.Unit.Render(name)
}
