package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// ChartPage plots the numeric payload of one series as a line chart.
type ChartPage struct {
	ctx     context.Context
	store   model.SeriesReader
	keys    KeyMap
	id      model.SeriesID
	points  []model.ChartPoint
	notice  string
	loading bool
	err     error
}

// NewChartPage creates the chart page.
func NewChartPage(ctx context.Context, store model.SeriesReader) *ChartPage {
	return &ChartPage{
		ctx:   ctx,
		store: store,
		keys:  DefaultKeyMap(),
	}
}

func (p *ChartPage) ID() string { return ChartPageID }

// Init loads the series passed as a model.SeriesID param.
func (p *ChartPage) Init(params interface{}) tea.Cmd {
	id, _ := params.(model.SeriesID)
	p.id = id
	p.points = nil
	p.notice = ""
	if id == "" {
		p.loading = false
		p.err = viewer.ErrNoSeriesSelected
		return nil
	}
	p.loading = true
	p.err = nil
	return tea.Batch(loadChartCmd(p.ctx, p.store, id), spinnerTick())
}

func (p *ChartPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case chartLoadedMsg:
		if msg.ID != p.id {
			return nil, nil
		}
		p.loading = false
		p.points = msg.Points
		p.err = nil
		switch {
		case errors.Is(msg.Err, viewer.ErrNoNumericPayload):
			p.notice = viewer.NoNumericPayloadNotice
		case msg.Err != nil:
			p.err = msg.Err
		}
		return nil, nil

	case SpinnerTickMsg:
		return keepSpinning(p.loading), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Back):
			return nil, &PageNav{PageID: DirectoryPageID}
		case key.Matches(msg, p.keys.Content):
			if p.id != "" {
				return nil, &PageNav{PageID: ContentPageID, Params: p.id}
			}
		case key.Matches(msg, p.keys.Reload):
			return p.Init(p.id), nil
		}
	}
	return nil, nil
}

func (p *ChartPage) View(width, height int) string {
	bodyHeight := max(height-3, 1)
	var body string
	switch {
	case p.err != nil && p.id == "":
		body = renderMessage(noticeStyle, "No time series selected.", width, bodyHeight)
	case p.loading:
		body = renderLoadingPlaceholder(width, bodyHeight)
	case p.err != nil:
		body = renderMessage(errorStyle, "Unable to load the content of this time series.", width, bodyHeight)
	case p.notice != "":
		body = renderMessage(noticeStyle, p.notice, width, bodyHeight)
	default:
		status := mutedStyle.Render(fmt.Sprintf("%d points", len(p.points)))
		chart := renderLineChart(p.points, width-2, bodyHeight-1)
		body = lipgloss.JoinVertical(lipgloss.Left, status, chart)
	}

	title := "Chart"
	if p.id != "" {
		title = "Chart of " + string(p.id)
	}
	bindings := []key.Binding{p.keys.Content, p.keys.Reload, p.keys.Back, p.keys.Quit}
	return renderFrame(title, body, bindings, width, height)
}

// renderLineChart draws points in input order, joined by braille lines.
func renderLineChart(points []model.ChartPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}
	width, height = max(width, 20), max(height, 6)

	minX, maxX := float64(points[0].Timestamp), float64(points[0].Timestamp)
	minY, maxY := points[0].Value, points[0].Value
	for _, pt := range points[1:] {
		minX = min(minX, float64(pt.Timestamp))
		maxX = max(maxX, float64(pt.Timestamp))
		minY = min(minY, pt.Value)
		maxY = max(maxY, pt.Value)
	}
	// ntcharts needs a non-empty range on both axes.
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}

	lc := linechart.New(width, height, minX, maxX, minY, maxY,
		linechart.WithStyles(mutedStyle, mutedStyle, lineStyle))
	lc.DrawXYAxisAndLabel()

	prev := canvas.Float64Point{X: float64(points[0].Timestamp), Y: points[0].Value}
	if len(points) == 1 {
		lc.DrawBrailleLine(prev, prev)
	}
	for _, pt := range points[1:] {
		next := canvas.Float64Point{X: float64(pt.Timestamp), Y: pt.Value}
		lc.DrawBrailleLine(prev, next)
		prev = next
	}
	return lc.View()
}
