package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer/viewertest"
)

func TestParseNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"3.14", 3.14, true},
		{"  -2 ", -2, true},
		{"1e3", 1000, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"3.14abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-Infinity", 0, false},
		{"1e400", 0, false},
		{"1_000", 0, false},
		{"0x1p4", 0, false},
		{"0x10", 0, false},
		{"-.5", -0.5, true},
		{"+7E-1", 0.7, true},
	}
	for _, tt := range tests {
		got, ok := ParseNumeric(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseNumeric(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestChartPoints_FiltersBinaryAndNonNumeric(t *testing.T) {
	t.Parallel()

	items := []model.ContentItem{
		{Timestamp: 1, Value: "10"},
		{Timestamp: 2, Value: "20", Binary: true},
		{Timestamp: 3, Value: "abc"},
		{Timestamp: 4, Value: ""},
		{Timestamp: 5, Value: "5.5"},
		{Timestamp: 0, Value: "-1"},
	}
	got := ChartPoints(items)
	want := []model.ChartPoint{{Timestamp: 1, Value: 10}, {Timestamp: 5, Value: 5.5}, {Timestamp: 0, Value: -1}}
	if len(got) != len(want) {
		t.Fatalf("points = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(got) > len(ContentRows(items)) {
		t.Fatal("chart points must not outnumber display rows")
	}
}

func TestLoadChart_Scenarios(t *testing.T) {
	t.Parallel()

	store := &viewertest.Store{Items: map[model.SeriesID][]model.ContentItem{
		"pi":     {{Timestamp: 1, Value: "3.14"}},
		"word":   {{Timestamp: 2, Value: "abc"}},
		"binary": {{Timestamp: 3, Value: "42", Binary: true, Base64: true}},
		"empty":  {},
	}}
	ctx := context.Background()

	points, err := LoadChart(ctx, store, "pi")
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 || points[0] != (model.ChartPoint{Timestamp: 1, Value: 3.14}) {
		t.Fatalf("pi points = %+v", points)
	}

	for _, id := range []model.SeriesID{"word", "binary", "empty"} {
		points, err := LoadChart(ctx, store, id)
		if !errors.Is(err, ErrNoNumericPayload) {
			t.Fatalf("%s: err = %v, want ErrNoNumericPayload", id, err)
		}
		if points == nil || len(points) != 0 {
			t.Fatalf("%s: points = %#v, want empty slice", id, points)
		}
	}
}

func TestLoadChart_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	store := &viewertest.Store{ContentErr: boom}

	if _, err := LoadChart(context.Background(), store, ""); !errors.Is(err, ErrNoSeriesSelected) {
		t.Fatalf("err = %v, want ErrNoSeriesSelected", err)
	}
	_, err := LoadChart(context.Background(), store, "x")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if errors.Is(err, ErrNoNumericPayload) {
		t.Fatal("fetch failure must not look like an empty payload")
	}
}
