package outwriter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinytelemetry/seriesview/internal/model"
)

func TestContentRecordStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(ContentRecord))
	require.NotNil(t, schema)

	for _, colName := range []string{"series", "timestamp", "metadata", "value"} {
		_, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestWriteContentParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "content.parquet")
	rows := []model.DisplayRow{
		{Timestamp: 10, Metadata: "text/plain", DisplayValue: "1"},
		{Timestamp: 20, DisplayValue: "aGk= (base64)"},
	}
	require.NoError(t, WriteContentParquet("temp", rows, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ContentRecord](file)
	defer reader.Close()

	readData := make([]ContentRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)
	assert.Equal(t, ContentRecord{Series: "temp", Timestamp: 10, Metadata: "text/plain", Value: "1"}, readData[0])
	assert.Equal(t, "aGk= (base64)", readData[1].Value)
}

func TestWriteChartParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "chart.parquet")
	points := []model.ChartPoint{{Timestamp: 1, Value: 0.5}, {Timestamp: 2, Value: 2}, {Timestamp: 3, Value: -1}}
	require.NoError(t, WriteChartParquet("temp", points, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ChartRecord](file)
	defer reader.Close()

	assert.Equal(t, int64(3), reader.NumRows())
	readData := make([]ChartRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 3, n)
	assert.Equal(t, -1.0, readData[2].Value)
}

func TestWriteParquet_BadPath(t *testing.T) {
	err := WriteChartParquet("temp", nil, filepath.Join(t.TempDir(), "missing", "chart.parquet"))
	assert.Error(t, err)
}
