package viewer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tinytelemetry/seriesview/internal/model"
)

// ErrNoNumericPayload is returned with an empty point slice when no item of
// a series can be plotted. Surfaces show NoNumericPayloadNotice instead of
// treating it as a failure.
var ErrNoNumericPayload = errors.New("viewer: series has no numeric payload")

// NoNumericPayloadNotice is the user-facing text for ErrNoNumericPayload.
const NoNumericPayloadNotice = "This time series has no numeric payload!"

// ParseNumeric parses a content value as a finite decimal number.
// Go literal forms such as "1_000" or "0x1p4" are rejected.
func ParseNumeric(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.IndexFunc(value, notDecimal) >= 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

// ChartPoints keeps the non-binary numeric items, in input order.
func ChartPoints(items []model.ContentItem) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, len(items))
	for _, item := range items {
		if item.Binary {
			continue
		}
		v, ok := ParseNumeric(item.Value)
		if !ok {
			continue
		}
		points = append(points, model.ChartPoint{Timestamp: item.Timestamp, Value: v})
	}
	return points
}

// LoadChart fetches the whole content of a series and returns its plottable points.
// When nothing is plottable it returns an empty slice and ErrNoNumericPayload.
func LoadChart(ctx context.Context, store model.SeriesReader, id model.SeriesID) ([]model.ChartPoint, error) {
	if id == "" {
		return nil, ErrNoSeriesSelected
	}
	items, err := store.Content(ctx, id, model.ContentOpts{})
	if err != nil {
		return nil, fmt.Errorf("viewer: load chart of %q: %w", id, err)
	}
	points := ChartPoints(items)
	if len(points) == 0 {
		return points, ErrNoNumericPayload
	}
	return points, nil
}
