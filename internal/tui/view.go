package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" courbe ─ pulse timing waveform ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var plotView string
	switch {
	case m.showCoords:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.plotW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.plotH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.Place(lo.plotW, lo.plotH, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.plotW)
		m.ta.SetHeight(min(lo.plotH, 12))
		plotView = lipgloss.NewStyle().Width(lo.plotW).Height(lo.plotH).Render(m.ta.View())
	default:
		plotView = lipgloss.NewStyle().Width(lo.plotW).Height(lo.plotH).Render(m.renderPlot(lo.plotW, lo.plotH))
	}

	body := plotView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	}

	// Footer / help
	help := m.renderHelp()
	statusStyle := dimStyle
	if m.invalid {
		statusStyle = errStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = fmt.Sprintf("  x=%.1f y=%.1f", m.hoverX, m.hoverY)
		if m.hoverSample >= 0 {
			coords += fmt.Sprintf(" sample=%d", m.hoverSample)
		}
		coords = dimStyle.Render(coords + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Tab sidebar",
		"Enter open",
		"p paste",
		"a coords",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
