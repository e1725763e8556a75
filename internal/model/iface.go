package model

import "context"

// ContentOpts narrows a content request. The zero value asks for every item.
type ContentOpts struct {
	Limit int    // 0 = no limit
	Since *int64 // seek to the item nearest this timestamp
	Last  bool   // start from the most recent item
}

// SeriesReader is the read-only contract of the remote time-series store.
type SeriesReader interface {
	ListSeries(ctx context.Context) ([]SeriesID, error)
	Statistics(ctx context.Context, id SeriesID) (Statistics, error)
	Content(ctx context.Context, id SeriesID, opts ContentOpts) ([]ContentItem, error)
}

// RawReader serves the undecoded payload of a single item. The store seeks to
// the item nearest timestamp.
type RawReader interface {
	RawValue(ctx context.Context, id SeriesID, timestamp int64) (RawValue, error)
}
