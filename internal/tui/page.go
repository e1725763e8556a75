package tui

import tea "github.com/charmbracelet/bubbletea"

// Page represents a top-level screen in the TUI (directory, content, chart).
type Page interface {
	ID() string
	// Init is called every time the page becomes active. params carries
	// whatever the navigating page put into PageNav.Params.
	Init(params interface{}) tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to request a page switch.
type PageNav struct {
	PageID string
	Params interface{}
}

const (
	DirectoryPageID = "directory"
	ContentPageID   = "content"
	ChartPageID     = "chart"
)
