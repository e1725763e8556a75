package tui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// directoryLoadedMsg carries the outcome of a directory aggregation.
type directoryLoadedMsg struct {
	Rows []model.DirectoryRow
	Err  error
}

// contentLoadedMsg carries the display rows of one series.
type contentLoadedMsg struct {
	ID   model.SeriesID
	Rows []model.DisplayRow
	Err  error
}

// chartLoadedMsg carries the plottable points of one series.
type chartLoadedMsg struct {
	ID     model.SeriesID
	Points []model.ChartPoint
	Err    error
}

func loadDirectoryCmd(ctx context.Context, dir *viewer.Directory) tea.Cmd {
	return func() tea.Msg {
		rows, err := dir.Load(ctx)
		if err != nil {
			log.Printf("tui: directory load failed: %v", err)
		}
		return directoryLoadedMsg{Rows: rows, Err: err}
	}
}

func loadContentCmd(ctx context.Context, store model.SeriesReader, id model.SeriesID) tea.Cmd {
	return func() tea.Msg {
		rows, err := viewer.LoadContent(ctx, store, id)
		if err != nil {
			log.Printf("tui: %v", err)
		}
		return contentLoadedMsg{ID: id, Rows: rows, Err: err}
	}
}

func loadChartCmd(ctx context.Context, store model.SeriesReader, id model.SeriesID) tea.Cmd {
	return func() tea.Msg {
		points, err := viewer.LoadChart(ctx, store, id)
		return chartLoadedMsg{ID: id, Points: points, Err: err}
	}
}
