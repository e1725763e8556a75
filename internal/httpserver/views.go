package httpserver

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

const (
	chartWidth  = 900
	chartHeight = 320
	chartMargin = 10
)

// contentPage is one page of the content table.
type contentPage struct {
	Rows     []model.DisplayRow
	Total    int
	From     int // 1-based, inclusive
	To       int
	Page     int // 1-based
	Pages    int
	PrevLink string
	NextLink string
}

// paginate cuts rows into pages of pageLength and returns the requested one.
// Out-of-range page numbers are clamped.
func paginate(id model.SeriesID, rows []model.DisplayRow, page, pageLength int) contentPage {
	if pageLength <= 0 {
		pageLength = model.DefaultPageLength
	}
	pages := (len(rows) + pageLength - 1) / pageLength
	if pages == 0 {
		pages = 1
	}
	page = min(max(page, 1), pages)

	start := (page - 1) * pageLength
	end := min(start+pageLength, len(rows))

	p := contentPage{
		Rows:  rows[start:end],
		Total: len(rows),
		From:  start + 1,
		To:    end,
		Page:  page,
		Pages: pages,
	}
	if page > 1 {
		p.PrevLink = pageLink(id, page-1)
	}
	if page < pages {
		p.NextLink = pageLink(id, page+1)
	}
	return p
}

func pageLink(id model.SeriesID, page int) string {
	return viewer.ContentLink(id) + "&page=" + strconv.Itoa(page)
}

// pageParam reads the 1-based page number; anything unparsable means page 1.
func pageParam(values url.Values) int {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// chartView is the data of the inline SVG line chart.
type chartView struct {
	Count  int
	Width  int
	Height int
	MinX   int64
	MaxX   int64
	MinY   float64
	MaxY   float64
	Points string
}

// newChartView scales points into the SVG box. Points keep their input
// order; a flat series is drawn through the vertical middle.
func newChartView(points []model.ChartPoint) chartView {
	v := chartView{Count: len(points), Width: chartWidth, Height: chartHeight}
	if len(points) == 0 {
		return v
	}

	v.MinX, v.MaxX = points[0].Timestamp, points[0].Timestamp
	v.MinY, v.MaxY = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		v.MinX = min(v.MinX, p.Timestamp)
		v.MaxX = max(v.MaxX, p.Timestamp)
		v.MinY = min(v.MinY, p.Value)
		v.MaxY = max(v.MaxY, p.Value)
	}

	innerW := float64(chartWidth - 2*chartMargin)
	innerH := float64(chartHeight - 2*chartMargin)
	spanX := float64(v.MaxX - v.MinX)
	spanY := v.MaxY - v.MinY

	coords := make([]string, 0, len(points))
	for _, p := range points {
		x := innerW / 2
		if spanX > 0 {
			x = float64(p.Timestamp-v.MinX) / spanX * innerW
		}
		y := innerH / 2
		if spanY > 0 {
			y = innerH - (p.Value-v.MinY)/spanY*innerH
		}
		coords = append(coords,
			strconv.FormatFloat(x+chartMargin, 'f', 1, 64)+","+strconv.FormatFloat(y+chartMargin, 'f', 1, 64))
	}
	v.Points = strings.Join(coords, " ")
	return v
}
