package viewer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/tinytelemetry/seriesview/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrListSeries wraps a failure of the series listing call.
var ErrListSeries = errors.New("viewer: unable to load series")

// Strategy selects how the directory fetches per-series statistics.
type Strategy string

const (
	// StrategySequential awaits each statistics call before issuing the next,
	// so rows come out in sorted order without a sort step.
	StrategySequential Strategy = "sequential"
	// StrategyConcurrent fans the statistics calls out and sorts the rows afterwards.
	StrategyConcurrent Strategy = "concurrent"
)

// ParseStrategy validates a configured strategy name. Empty means sequential.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategySequential:
		return StrategySequential, nil
	case StrategyConcurrent:
		return StrategyConcurrent, nil
	default:
		return "", fmt.Errorf("viewer: unknown fetch strategy %q", name)
	}
}

// DirectoryConfig tunes the directory aggregation.
type DirectoryConfig struct {
	Strategy    Strategy
	Concurrency int // StrategyConcurrent only; <= 0 uses model.DefaultFetchConcurrency
}

// Directory assembles the summary of every series in the store.
type Directory struct {
	store       model.SeriesReader
	strategy    Strategy
	concurrency int
}

// NewDirectory creates a directory aggregator over store.
func NewDirectory(store model.SeriesReader, cfg DirectoryConfig) *Directory {
	strategy := cfg.Strategy
	if strategy == "" {
		strategy = StrategySequential
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = model.DefaultFetchConcurrency
	}
	return &Directory{
		store:       store,
		strategy:    strategy,
		concurrency: concurrency,
	}
}

// Load lists the series and returns one row per distinct series, sorted by id.
// Only a listing failure is returned as an error; a failed statistics call
// produces a row with Err set.
func (d *Directory) Load(ctx context.Context) ([]model.DirectoryRow, error) {
	ids, err := d.store.ListSeries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListSeries, err)
	}
	ids = sortedUnique(ids)

	if d.strategy == StrategyConcurrent {
		return d.loadConcurrent(ctx, ids), nil
	}
	return foldRows(ids, make([]model.DirectoryRow, 0, len(ids)), func(id model.SeriesID) model.DirectoryRow {
		return d.fetchRow(ctx, id)
	}), nil
}

// foldRows threads acc through step for each id, in order. Each step is
// awaited before the next begins.
func foldRows(ids []model.SeriesID, acc []model.DirectoryRow, step func(model.SeriesID) model.DirectoryRow) []model.DirectoryRow {
	for _, id := range ids {
		acc = append(acc, step(id))
	}
	return acc
}

func (d *Directory) loadConcurrent(ctx context.Context, ids []model.SeriesID) []model.DirectoryRow {
	results := make(chan model.DirectoryRow, len(ids))

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			results <- d.fetchRow(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	rows := make([]model.DirectoryRow, 0, len(ids))
	for row := range results {
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b model.DirectoryRow) int {
		return strings.Compare(string(a.SeriesID), string(b.SeriesID))
	})
	return rows
}

func (d *Directory) fetchRow(ctx context.Context, id model.SeriesID) model.DirectoryRow {
	row := model.DirectoryRow{
		SeriesID:    id,
		ContentLink: ContentLink(id),
		ChartLink:   ChartLink(id),
	}
	stats, err := d.store.Statistics(ctx, id)
	if err != nil {
		log.Printf("viewer: statistics of %q failed: %v", id, err)
		row.Err = err
		return row
	}
	row.Length = stats.Length
	row.Size = stats.Size
	return row
}

func sortedUnique(ids []model.SeriesID) []model.SeriesID {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
