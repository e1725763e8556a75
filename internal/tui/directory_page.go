package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// DirectoryPage lists every series with its statistics.
type DirectoryPage struct {
	ctx     context.Context
	dir     *viewer.Directory
	keys    KeyMap
	table   table.Model
	rows    []model.DirectoryRow
	loading bool
	err     error
}

// NewDirectoryPage creates the directory page over dir.
func NewDirectoryPage(ctx context.Context, dir *viewer.Directory) *DirectoryPage {
	t := table.New(
		table.WithColumns(directoryColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return &DirectoryPage{
		ctx:   ctx,
		dir:   dir,
		keys:  DefaultKeyMap(),
		table: t,
	}
}

func (p *DirectoryPage) ID() string { return DirectoryPageID }

// Init reloads the directory every time the page is shown.
func (p *DirectoryPage) Init(_ interface{}) tea.Cmd {
	p.loading = true
	p.err = nil
	return tea.Batch(loadDirectoryCmd(p.ctx, p.dir), spinnerTick())
}

func (p *DirectoryPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case directoryLoadedMsg:
		p.loading = false
		p.err = msg.Err
		p.rows = msg.Rows
		p.table.SetRows(directoryRows(p.rows))
		p.table.SetCursor(0)
		return nil, nil

	case SpinnerTickMsg:
		return keepSpinning(p.loading), nil

	case tea.WindowSizeMsg:
		p.table.SetColumns(directoryColumns(msg.Width))
		p.table.SetHeight(max(msg.Height-6, 3))
		return nil, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Reload):
			return p.Init(nil), nil
		case key.Matches(msg, p.keys.Content):
			if id, ok := p.selected(); ok {
				return nil, &PageNav{PageID: ContentPageID, Params: id}
			}
			return nil, nil
		case key.Matches(msg, p.keys.Chart):
			if id, ok := p.selected(); ok {
				return nil, &PageNav{PageID: ChartPageID, Params: id}
			}
			return nil, nil
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd, nil
}

// selected returns the series under the cursor.
func (p *DirectoryPage) selected() (model.SeriesID, bool) {
	i := p.table.Cursor()
	if p.loading || i < 0 || i >= len(p.rows) {
		return "", false
	}
	return p.rows[i].SeriesID, true
}

func (p *DirectoryPage) View(width, height int) string {
	bodyHeight := max(height-3, 1)
	var body string
	switch {
	case p.loading:
		body = renderLoadingPlaceholder(width, bodyHeight)
	case p.err != nil:
		body = renderMessage(errorStyle, "Unable to load the list of time series.", width, bodyHeight)
	case len(p.rows) == 0:
		body = renderMessage(mutedStyle, "No time series.", width, bodyHeight)
	default:
		body = p.table.View()
	}

	bindings := []key.Binding{p.keys.Up, p.keys.Down, p.keys.Content, p.keys.Chart, p.keys.Reload, p.keys.Quit}
	return renderFrame("Time series ("+strconv.Itoa(len(p.rows))+")", body, bindings, width, height)
}

func directoryColumns(width int) []table.Column {
	const fixed = 12 + 14 + 24 + 24
	name := max(width-fixed-10, 16)
	return []table.Column{
		{Title: "Time series", Width: name},
		{Title: "Length", Width: 12},
		{Title: "Size on disk", Width: 14},
		{Title: "Open content", Width: 24},
		{Title: "Plot time series", Width: 24},
	}
}

func directoryRows(rows []model.DirectoryRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		length, size := strconv.FormatInt(r.Length, 10), strconv.FormatInt(r.Size, 10)+" B"
		if !r.OK() {
			length, size = "n/a", "n/a"
		}
		out[i] = table.Row{string(r.SeriesID), length, size, r.ContentLink, r.ChartLink}
	}
	return out
}
