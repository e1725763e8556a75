// Package viewertest provides an in-memory model.SeriesReader for tests.
package viewertest

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/tinytelemetry/seriesview/internal/model"
)

// Store is an in-memory series store. Zero values are usable.
type Store struct {
	Series     []model.SeriesID
	Stats      map[model.SeriesID]model.Statistics
	StatsErr   map[model.SeriesID]error
	Items      map[model.SeriesID][]model.ContentItem
	ListErr    error
	ContentErr error

	mu    sync.Mutex
	calls []string
}

func (s *Store) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

// Calls returns the calls made so far, in arrival order.
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Store) ListSeries(_ context.Context) ([]model.SeriesID, error) {
	s.record("list")
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.SeriesID(nil), s.Series...), nil
}

func (s *Store) Statistics(_ context.Context, id model.SeriesID) (model.Statistics, error) {
	s.record("statistics:" + string(id))
	if err := s.StatsErr[id]; err != nil {
		return model.Statistics{}, err
	}
	stats, ok := s.Stats[id]
	if !ok {
		items := s.Items[id]
		stats = model.Statistics{Length: int64(len(items))}
		for _, item := range items {
			stats.Size += int64(len(item.Value))
		}
	}
	return stats, nil
}

func (s *Store) Content(_ context.Context, id model.SeriesID, opts model.ContentOpts) ([]model.ContentItem, error) {
	s.record("content:" + string(id))
	if s.ContentErr != nil {
		return nil, s.ContentErr
	}
	items, ok := s.Items[id]
	if !ok {
		return nil, fmt.Errorf("viewertest: unknown series %q", id)
	}
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return append([]model.ContentItem{}, items...), nil
}

// RawValue serves the first item at or after timestamp, decoding base64 values.
func (s *Store) RawValue(_ context.Context, id model.SeriesID, timestamp int64) (model.RawValue, error) {
	s.record(fmt.Sprintf("raw:%s:%d", id, timestamp))
	if s.ContentErr != nil {
		return model.RawValue{}, s.ContentErr
	}
	for _, item := range s.Items[id] {
		if item.Timestamp < timestamp {
			continue
		}
		data := []byte(item.Value)
		if item.Base64 {
			decoded, err := base64.StdEncoding.DecodeString(item.Value)
			if err != nil {
				return model.RawValue{}, err
			}
			data = decoded
		}
		contentType := item.Metadata
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return model.RawValue{ContentType: contentType, Data: data}, nil
	}
	return model.RawValue{}, fmt.Errorf("viewertest: no item of %q at or after %d", id, timestamp)
}
