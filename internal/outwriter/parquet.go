package outwriter

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/tinytelemetry/seriesview/internal/model"
)

// ContentRecord is one display row of a series in a parquet export.
type ContentRecord struct {
	Series    string `parquet:"series,snappy,dict"`
	Timestamp int64  `parquet:"timestamp,snappy"`
	Metadata  string `parquet:"metadata,snappy"`
	Value     string `parquet:"value,snappy"`
}

// ChartRecord is one plottable point of a series in a parquet export.
type ChartRecord struct {
	Series    string  `parquet:"series,snappy,dict"`
	Timestamp int64   `parquet:"timestamp,snappy"`
	Value     float64 `parquet:"value,snappy"`
}

// WriteContentParquet writes the display rows of id to outputPath.
func WriteContentParquet(id model.SeriesID, rows []model.DisplayRow, outputPath string) error {
	data := make([]ContentRecord, len(rows))
	for i, r := range rows {
		data[i] = ContentRecord{Series: string(id), Timestamp: r.Timestamp, Metadata: r.Metadata, Value: r.DisplayValue}
	}
	return writeParquet(data, outputPath)
}

// WriteChartParquet writes the chart points of id to outputPath.
func WriteChartParquet(id model.SeriesID, points []model.ChartPoint, outputPath string) error {
	data := make([]ChartRecord, len(points))
	for i, p := range points {
		data[i] = ChartRecord{Series: string(id), Timestamp: p.Timestamp, Value: p.Value}
	}
	return writeParquet(data, outputPath)
}

func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return file.Close()
}
