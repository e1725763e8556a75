package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// ContentPage shows the display rows of one series, a page at a time.
type ContentPage struct {
	ctx     context.Context
	store   model.SeriesReader
	keys    KeyMap
	id      model.SeriesID
	rows    []model.DisplayRow
	table   table.Model
	pager   paginator.Model
	loading bool
	err     error
}

// NewContentPage creates the content page. pageLength is the number of
// rows per page; zero means model.DefaultPageLength.
func NewContentPage(ctx context.Context, store model.SeriesReader, pageLength int) *ContentPage {
	if pageLength <= 0 {
		pageLength = model.DefaultPageLength
	}
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = pageLength

	return &ContentPage{
		ctx:   ctx,
		store: store,
		keys:  DefaultKeyMap(),
		table: table.New(
			table.WithColumns(contentColumns(80)),
			table.WithFocused(true),
			table.WithHeight(pageLength),
		),
		pager: pager,
	}
}

func (p *ContentPage) ID() string { return ContentPageID }

// Init loads the series passed as a model.SeriesID param. Without one the
// page shows that no series is selected and fetches nothing.
func (p *ContentPage) Init(params interface{}) tea.Cmd {
	id, _ := params.(model.SeriesID)
	p.id = id
	p.rows = nil
	p.resetPager()
	p.table.SetRows(nil)
	if id == "" {
		p.loading = false
		p.err = viewer.ErrNoSeriesSelected
		return nil
	}
	p.loading = true
	p.err = nil
	return tea.Batch(loadContentCmd(p.ctx, p.store, id), spinnerTick())
}

func (p *ContentPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case contentLoadedMsg:
		if msg.ID != p.id {
			return nil, nil
		}
		p.loading = false
		p.err = msg.Err
		p.rows = msg.Rows
		p.resetPager()
		p.syncTable()
		return nil, nil

	case SpinnerTickMsg:
		return keepSpinning(p.loading), nil

	case tea.WindowSizeMsg:
		p.table.SetColumns(contentColumns(msg.Width))
		return nil, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Back):
			return nil, &PageNav{PageID: DirectoryPageID}
		case key.Matches(msg, p.keys.Chart):
			if p.id != "" {
				return nil, &PageNav{PageID: ChartPageID, Params: p.id}
			}
			return nil, nil
		case key.Matches(msg, p.keys.Reload):
			return p.Init(p.id), nil
		case key.Matches(msg, p.keys.NextPage):
			p.pager.NextPage()
			p.syncTable()
			return nil, nil
		case key.Matches(msg, p.keys.PrevPage):
			p.pager.PrevPage()
			p.syncTable()
			return nil, nil
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd, nil
}

// resetPager goes back to the first page. An empty series still has one page.
func (p *ContentPage) resetPager() {
	p.pager.Page = 0
	p.pager.TotalPages = max((len(p.rows)+p.pager.PerPage-1)/p.pager.PerPage, 1)
}

// syncTable shows the rows of the current pager page.
func (p *ContentPage) syncTable() {
	start, end := p.pager.GetSliceBounds(len(p.rows))
	out := make([]table.Row, 0, end-start)
	for _, r := range p.rows[start:end] {
		out = append(out, table.Row{strconv.FormatInt(r.Timestamp, 10), r.Metadata, r.DisplayValue})
	}
	p.table.SetRows(out)
	p.table.SetCursor(0)
}

func (p *ContentPage) View(width, height int) string {
	bodyHeight := max(height-3, 1)
	var body string
	switch {
	case p.err != nil && p.id == "":
		body = renderMessage(noticeStyle, "No time series selected.", width, bodyHeight)
	case p.loading:
		body = renderLoadingPlaceholder(width, bodyHeight)
	case p.err != nil:
		body = renderMessage(errorStyle, "Unable to load the content of this time series.", width, bodyHeight)
	case len(p.rows) == 0:
		body = renderMessage(mutedStyle, "This time series is empty.", width, bodyHeight)
	default:
		start, end := p.pager.GetSliceBounds(len(p.rows))
		status := mutedStyle.Render(fmt.Sprintf("%d items, showing %d-%d  page %s",
			len(p.rows), start+1, end, p.pager.View()))
		body = lipgloss.JoinVertical(lipgloss.Left, p.table.View(), status)
	}

	title := "Content"
	if p.id != "" {
		title = "Content of " + string(p.id)
	}
	bindings := []key.Binding{p.keys.Up, p.keys.Down, p.keys.PrevPage, p.keys.NextPage, p.keys.Chart, p.keys.Back, p.keys.Quit}
	return renderFrame(title, body, bindings, width, height)
}

func contentColumns(width int) []table.Column {
	const fixed = 16 + 24
	return []table.Column{
		{Title: "Timestamp", Width: 16},
		{Title: "Metadata", Width: 24},
		{Title: "Value", Width: max(width-fixed-8, 20)},
	}
}
