package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// header + footer rows around the viewport
const chromeHeight = 2

// styles is one theme's palette.
type styles struct {
	header   lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	notice   lipgloss.Style
}

// themeStyles maps a theme name to its palette. Unknown names fall back to
// the dark theme.
func themeStyles(name string) styles {
	switch name {
	case "light":
		return styles{
			header: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("153")).
				Padding(0, 1),
			selected: lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("25")),
			status: lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")),
			notice: lipgloss.NewStyle().
				Foreground(lipgloss.Color("130")),
		}
	default:
		return styles{
			header: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("57")).
				Padding(0, 1),
			selected: lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("220")),
			status: lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")),
			notice: lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")),
		}
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.renderHeader() + "\n" + m.vp.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := m.opts.Title
	if title == "" {
		title = "lazytail"
	}
	counts := fmt.Sprintf("%d/%d", len(m.visible), m.store.Len())
	return m.styles.header.Render(title) + " " + m.styles.status.Render(counts)
}

func (m Model) renderFooter() string {
	if m.filtering {
		return m.input.View()
	}

	parts := []string{
		fmt.Sprintf("detail %d/%d", m.detail, m.opts.Decoder.MaxDetailLevel()),
		"follow " + onOff(m.follow),
	}
	if q := m.query(); q != "" {
		parts = append(parts, "filter /"+q)
	}
	line := m.styles.status.Render(strings.Join(parts, "  •  "))
	if m.notice != "" {
		line += "  " + m.styles.notice.Render(m.notice)
	}
	return line
}

// renderEntries rebuilds the viewport content from the visible index set.
func (m *Model) renderEntries() {
	if !m.ready {
		return
	}

	lines := make([]string, len(m.visible))
	for pos, idx := range m.visible {
		line := m.opts.Decoder.FormatPreview(m.store.At(idx), m.detail)
		if pos == m.selected {
			line = m.styles.selected.Render(line)
		}
		lines[pos] = line
	}
	m.vp.SetContent(strings.Join(lines, "\n"))

	if m.follow {
		m.vp.GotoBottom()
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
