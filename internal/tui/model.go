// Package tui is the interactive converter: a tab per domain, a value field
// that re-converts on every keystroke and from/to unit selectors.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"unitconv-core/convert"
	"unitconv-core/units"
)

// selection is the chosen (from, to) unit index pair of one domain.
type selection struct{ from, to int }

// Model is the bubbletea model of the converter.
type Model struct {
	conv    *convert.Converter
	domains []units.Domain
	tab     int

	symbols map[units.Domain][]string
	labels  map[units.Domain][]string
	sel     map[units.Domain]selection

	input  textinput.Model
	result convert.Result
	err    error

	styles   Styles
	width    int
	quitting bool
}

// New returns a model starting on domain start (the first domain when
// start is unknown). conv may be nil for the default registry.
func New(conv *convert.Converter, start units.Domain) Model {
	if conv == nil {
		conv = convert.New(nil)
	}
	m := Model{
		conv:    conv,
		domains: units.Domains(),
		symbols: make(map[units.Domain][]string),
		labels:  make(map[units.Domain][]string),
		sel:     make(map[units.Domain]selection),
		styles:  DefaultStyles(),
	}
	for i, d := range m.domains {
		if d == start {
			m.tab = i
		}
		us, err := conv.Units(d)
		if err != nil {
			continue
		}
		for _, u := range us {
			m.symbols[d] = append(m.symbols[d], u.Symbol)
			m.labels[d] = append(m.labels[d], u.Label)
		}
		to := 0
		if len(us) > 1 {
			to = 1
		}
		m.sel[d] = selection{from: 0, to: to}
	}

	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 32
	ti.Width = 24
	ti.Prompt = "› "
	ti.SetValue("1")
	ti.Focus()
	m.input = ti

	m.recompute()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key presses; anything that is not a command goes to the
// value field.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "right", "tab":
			m.tab = (m.tab + 1) % len(m.domains)
			m.recompute()
			return m, nil
		case "left", "shift+tab":
			m.tab = (m.tab + len(m.domains) - 1) % len(m.domains)
			m.recompute()
			return m, nil
		case "down":
			m.cycle(true, 1)
			return m, nil
		case "up":
			m.cycle(true, -1)
			return m, nil
		case "]", "shift+down":
			m.cycle(false, 1)
			return m, nil
		case "[", "shift+up":
			m.cycle(false, -1)
			return m, nil
		case "s":
			m.swap()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

// Domain is the active tab.
func (m Model) Domain() units.Domain { return m.domains[m.tab] }

// From and To are the selected unit symbols of the active tab.
func (m Model) From() string { return m.unit(m.sel[m.Domain()].from) }
func (m Model) To() string   { return m.unit(m.sel[m.Domain()].to) }

// Result is the conversion currently on screen.
func (m Model) Result() (convert.Result, error) { return m.result, m.err }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Summary is the one-line form of the current conversion, e.g.
// "1 mile = 1.609344 km".
func (m Model) Summary() string {
	if m.err != nil {
		return ""
	}
	in := strings.TrimSpace(m.input.Value())
	if m.result.Sanitized || in == "" {
		in = "0"
	}
	return in + " " + m.result.From + " = " + m.result.Formatted + " " + m.result.To
}

func (m Model) unit(i int) string {
	syms := m.symbols[m.Domain()]
	if i < 0 || i >= len(syms) {
		return ""
	}
	return syms[i]
}

func (m *Model) cycle(from bool, step int) {
	d := m.Domain()
	n := len(m.symbols[d])
	if n == 0 {
		return
	}
	s := m.sel[d]
	if from {
		s.from = (s.from + step + n) % n
	} else {
		s.to = (s.to + step + n) % n
	}
	m.sel[d] = s
	m.recompute()
}

func (m *Model) swap() {
	d := m.Domain()
	s := m.sel[d]
	s.from, s.to = s.to, s.from
	m.sel[d] = s
	m.recompute()
}

func (m *Model) recompute() {
	v, sanitized := convert.ParseValue(m.input.Value())
	res, err := m.conv.Do(convert.Request{Domain: m.Domain(), Value: v, From: m.From(), To: m.To()})
	res.Sanitized = sanitized
	m.result, m.err = res, err
}
