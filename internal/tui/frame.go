package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderFrame lays out a page: title line, body, help line.
func renderFrame(title, body string, bindings []key.Binding, width, height int) string {
	h := help.New()
	h.Width = width
	footer := h.ShortHelpView(bindings)

	header := titleStyle.Render(title)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer)-1, 1)
	body = lipgloss.NewStyle().Width(width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return strings.Join([]string{header, body, footer}, "\n")
}

// renderMessage centers a short message in the body area.
func renderMessage(style lipgloss.Style, msg string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(msg))
}
