package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/tinytelemetry/seriesview/internal/model"
	"gopkg.in/yaml.v3"
)

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

func writeDirectoryCSV(out io.Writer, rows []model.DirectoryRow) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"series", "length", "size", "content_link", "chart_link", "error"}); err != nil {
		return err
	}
	for _, r := range toDirectoryRecords(rows) {
		rec := []string{
			r.Series,
			strconv.FormatInt(r.Length, 10),
			strconv.FormatInt(r.Size, 10),
			r.ContentLink,
			r.ChartLink,
			r.Error,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeContentCSV(out io.Writer, rows []model.DisplayRow) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"timestamp", "metadata", "value"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{strconv.FormatInt(r.Timestamp, 10), r.Metadata, r.DisplayValue}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeChartCSV(out io.Writer, points []model.ChartPoint) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"timestamp", "value"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{strconv.FormatInt(p.Timestamp, 10), formatValue(p.Value)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
