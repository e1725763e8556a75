package viewer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/tinytelemetry/seriesview/internal/model"
)

const (
	// MaxDisplayLength is the value length from which the raw value is hidden.
	MaxDisplayLength = 128

	tooLongMarker = "(too long)"
	base64Suffix  = " (base64)"
)

// DisplayValue renders the value column of one content item.
func DisplayValue(item model.ContentItem) string {
	if utf8.RuneCountInString(item.Value) >= MaxDisplayLength {
		return tooLongMarker
	}
	if item.Base64 {
		return item.Value + base64Suffix
	}
	return item.Value
}

// ContentRows maps every content item to a display row, keeping input order.
func ContentRows(items []model.ContentItem) []model.DisplayRow {
	rows := make([]model.DisplayRow, len(items))
	for i, item := range items {
		rows[i] = model.DisplayRow{
			Timestamp:    item.Timestamp,
			Metadata:     item.Metadata,
			DisplayValue: DisplayValue(item),
		}
	}
	return rows
}

// LoadContent fetches the whole content of a series and returns its display rows.
// An empty series yields an empty slice and no error.
func LoadContent(ctx context.Context, store model.SeriesReader, id model.SeriesID) ([]model.DisplayRow, error) {
	return LoadContentRange(ctx, store, id, model.ContentOpts{})
}

// LoadContentRange is LoadContent narrowed by opts.
func LoadContentRange(ctx context.Context, store model.SeriesReader, id model.SeriesID, opts model.ContentOpts) ([]model.DisplayRow, error) {
	if id == "" {
		return nil, ErrNoSeriesSelected
	}
	items, err := store.Content(ctx, id, opts)
	if err != nil {
		return nil, fmt.Errorf("viewer: load content of %q: %w", id, err)
	}
	return ContentRows(items), nil
}
