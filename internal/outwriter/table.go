package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tinytelemetry/seriesview/internal/model"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	mutedColor = color.New(color.FgHiBlack)
)

func writeDirectoryTable(w io.Writer, rows []model.DirectoryRow, nameWidth int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedColor.Sprint("No time series."))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Time series", "Length", "Size on disk", "Content", "Chart"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignLeft, tw.AlignLeft}
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		length, size := strconv.FormatInt(r.Length, 10), formatBytes(r.Size)
		if !r.OK() {
			length = errorColor.Sprint("error")
			size = mutedColor.Sprint("n/a")
		}
		data = append(data, []string{truncate(string(r.SeriesID), nameWidth), length, size, r.ContentLink, r.ChartLink})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeContentTable(w io.Writer, rows []model.DisplayRow, valueWidth int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, mutedColor.Sprint("This time series is empty."))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Timestamp", "Metadata", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignLeft}
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{strconv.FormatInt(r.Timestamp, 10), r.Metadata, truncate(r.DisplayValue, valueWidth)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeChartTable(w io.Writer, points []model.ChartPoint) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Timestamp", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(points))
	for _, p := range points {
		data = append(data, []string{strconv.FormatInt(p.Timestamp, 10), formatValue(p.Value)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatBytes renders a size with a binary unit.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// truncate shortens s to maxWidth runes, marking the cut with "...".
func truncate(s string, maxWidth int) string {
	r := []rune(s)
	if len(r) <= maxWidth || maxWidth < 4 {
		return s
	}
	return string(r[:maxWidth-3]) + "..."
}
