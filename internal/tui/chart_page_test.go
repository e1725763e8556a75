package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

func TestChartPage_NumericSeries(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	page := NewChartPage(context.Background(), store)
	page.Init(model.SeriesID("temp"))
	page.Update(loadChartCmd(context.Background(), store, "temp")())

	if page.err != nil || page.notice != "" {
		t.Fatalf("err = %v, notice = %q", page.err, page.notice)
	}
	if len(page.points) != 30 {
		t.Fatalf("points = %d, want 30", len(page.points))
	}
	if got := page.View(100, 30); !strings.Contains(got, "30 points") {
		t.Fatalf("view = %q", got)
	}
}

func TestChartPage_NoNumericPayload(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	page := NewChartPage(context.Background(), store)
	page.Init(model.SeriesID("blob"))
	page.Update(loadChartCmd(context.Background(), store, "blob")())

	if page.err != nil {
		t.Fatalf("err = %v", page.err)
	}
	if page.notice != viewer.NoNumericPayloadNotice {
		t.Fatalf("notice = %q", page.notice)
	}
	if got := page.View(100, 30); !strings.Contains(got, viewer.NoNumericPayloadNotice) {
		t.Fatalf("view = %q", got)
	}
}

func TestChartPage_Navigation(t *testing.T) {
	t.Parallel()

	page := NewChartPage(context.Background(), newTestStore())
	page.Init(model.SeriesID("temp"))

	_, nav := page.Update(runes("c"))
	if nav == nil || nav.PageID != ContentPageID || nav.Params != model.SeriesID("temp") {
		t.Fatalf("nav = %+v", nav)
	}
	_, nav = page.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if nav == nil || nav.PageID != DirectoryPageID {
		t.Fatalf("nav = %+v", nav)
	}
}

func TestRenderLineChart(t *testing.T) {
	t.Parallel()

	if got := renderLineChart(nil, 40, 10); got != "" {
		t.Fatalf("empty chart = %q", got)
	}
	single := renderLineChart([]model.ChartPoint{{Timestamp: 1, Value: 5}}, 40, 10)
	if strings.TrimSpace(single) == "" {
		t.Fatal("single point chart should render axes")
	}
	flat := renderLineChart([]model.ChartPoint{{Timestamp: 1, Value: 2}, {Timestamp: 2, Value: 2}}, 40, 10)
	if strings.TrimSpace(flat) == "" {
		t.Fatal("flat chart should render")
	}
}
