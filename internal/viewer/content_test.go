package viewer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer/viewertest"
)

func TestDisplayValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item model.ContentItem
		want string
	}{
		{name: "plain", item: model.ContentItem{Value: "3.14"}, want: "3.14"},
		{name: "base64", item: model.ContentItem{Value: "AAE=", Base64: true}, want: "AAE= (base64)"},
		{name: "just below limit", item: model.ContentItem{Value: strings.Repeat("x", 127)}, want: strings.Repeat("x", 127)},
		{name: "at limit", item: model.ContentItem{Value: strings.Repeat("x", 128)}, want: "(too long)"},
		{name: "too long base64", item: model.ContentItem{Value: strings.Repeat("A", 200), Base64: true}, want: "(too long)"},
		{name: "binary is not filtered", item: model.ContentItem{Value: "abc", Binary: true}, want: "abc"},
		{name: "multibyte counted as runes", item: model.ContentItem{Value: strings.Repeat("é", 127)}, want: strings.Repeat("é", 127)},
		{name: "empty", item: model.ContentItem{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayValue(tt.item); got != tt.want {
				t.Fatalf("DisplayValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentRows_PreservesOrderAndLength(t *testing.T) {
	t.Parallel()

	items := []model.ContentItem{
		{Timestamp: 3, Value: "c", Metadata: "m3"},
		{Timestamp: 1, Value: "a", Metadata: "m1", Binary: true},
		{Timestamp: 2, Value: "b", Metadata: "m2", Base64: true},
	}
	rows := ContentRows(items)
	if len(rows) != len(items) {
		t.Fatalf("rows = %d, want %d", len(rows), len(items))
	}
	for i, row := range rows {
		if row.Timestamp != items[i].Timestamp || row.Metadata != items[i].Metadata {
			t.Fatalf("row %d = %+v, want timestamp/metadata of %+v", i, row, items[i])
		}
	}
	if rows[2].DisplayValue != "b (base64)" {
		t.Fatalf("row 2 value = %q", rows[2].DisplayValue)
	}
}

func TestLoadContent(t *testing.T) {
	t.Parallel()

	store := &viewertest.Store{Items: map[model.SeriesID][]model.ContentItem{
		"pi":    {{Timestamp: 1, Value: "3.14", Metadata: "text/plain"}},
		"word":  {{Timestamp: 2, Value: "abc"}},
		"empty": {},
	}}
	ctx := context.Background()

	rows, err := LoadContent(ctx, store, "pi")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0] != (model.DisplayRow{Timestamp: 1, Metadata: "text/plain", DisplayValue: "3.14"}) {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	rows, err = LoadContent(ctx, store, "word")
	if err != nil || len(rows) != 1 || rows[0].DisplayValue != "abc" {
		t.Fatalf("word rows = %+v, err = %v", rows, err)
	}

	rows, err = LoadContent(ctx, store, "empty")
	if err != nil {
		t.Fatalf("empty content should not fail: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("empty content rows = %#v, want empty slice", rows)
	}
}

func TestLoadContent_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	store := &viewertest.Store{ContentErr: boom}

	if _, err := LoadContent(context.Background(), store, ""); !errors.Is(err, ErrNoSeriesSelected) {
		t.Fatalf("err = %v, want ErrNoSeriesSelected", err)
	}
	if _, err := LoadContent(context.Background(), store, "x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if got := len(store.Calls()); got != 1 {
		t.Fatalf("store calls = %d, want 1 (no call without a series)", got)
	}
}

func TestLoadContentRange_HonorsLimit(t *testing.T) {
	t.Parallel()

	store := &viewertest.Store{Items: map[model.SeriesID][]model.ContentItem{
		"s": {{Timestamp: 1, Value: "a"}, {Timestamp: 2, Value: "b"}, {Timestamp: 3, Value: "c"}},
	}}
	rows, err := LoadContentRange(context.Background(), store, "s", model.ContentOpts{Limit: 2})
	if err != nil {
		t.Fatalf("LoadContentRange: %v", err)
	}
	if len(rows) != 2 || rows[1].Timestamp != 2 {
		t.Fatalf("rows = %+v, want the first two items", rows)
	}
	if _, err := LoadContentRange(context.Background(), store, "", model.ContentOpts{Limit: 2}); !errors.Is(err, ErrNoSeriesSelected) {
		t.Fatalf("err = %v, want ErrNoSeriesSelected", err)
	}
}
