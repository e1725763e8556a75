// Package outwriter renders viewer results for the command-line client.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tinytelemetry/seriesview/internal/model"
	"golang.org/x/term"
)

// Output formats.
const (
	TableOut = "table"
	JSONOut  = "json"
	CSVOut   = "csv"
	YAMLOut  = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", TableOut:
		return TableOut, nil
	case JSONOut, CSVOut, YAMLOut:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, csv or yaml)", s)
	}
}

// OutWriter writes directory, content and chart results in one format.
type OutWriter struct {
	w      io.Writer
	format string
	width  int
}

// NewOutWriter creates a writer for format. A zero width means the
// terminal width of stdout, or 80 when it cannot be detected.
func NewOutWriter(w io.Writer, format string, width int) (*OutWriter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &OutWriter{w: w, format: f, width: width}, nil
}

// WriteDirectory prints one line per series.
func (ow *OutWriter) WriteDirectory(rows []model.DirectoryRow) error {
	switch ow.format {
	case JSONOut:
		return writeJSON(ow.w, toDirectoryRecords(rows))
	case CSVOut:
		return writeDirectoryCSV(ow.w, rows)
	case YAMLOut:
		return writeYAML(ow.w, toDirectoryRecords(rows))
	default:
		return writeDirectoryTable(ow.w, rows, ow.valueWidth(40))
	}
}

// WriteContent prints the display rows of a series.
func (ow *OutWriter) WriteContent(rows []model.DisplayRow) error {
	switch ow.format {
	case JSONOut:
		return writeJSON(ow.w, nonNil(rows))
	case CSVOut:
		return writeContentCSV(ow.w, rows)
	case YAMLOut:
		return writeYAML(ow.w, nonNil(rows))
	default:
		return writeContentTable(ow.w, rows, ow.valueWidth(40))
	}
}

// WriteChart prints the plottable points of a series.
func (ow *OutWriter) WriteChart(points []model.ChartPoint) error {
	switch ow.format {
	case JSONOut:
		return writeJSON(ow.w, nonNil(points))
	case CSVOut:
		return writeChartCSV(ow.w, points)
	case YAMLOut:
		return writeYAML(ow.w, nonNil(points))
	default:
		return writeChartTable(ow.w, points)
	}
}

// valueWidth is the room left for the widest column once reserved
// columns and borders are taken.
func (ow *OutWriter) valueWidth(reserved int) int {
	available := terminalWidth(ow.width) - reserved
	if available < 20 {
		return 20
	}
	if available > 140 {
		return 140
	}
	return available
}

func terminalWidth(override int) int {
	if override > 0 {
		return override
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return 80
	}
	return detected
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
