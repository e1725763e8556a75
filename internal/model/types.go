package model

// SeriesID names one time series in the store. It is opaque to the viewer.
type SeriesID string

// Statistics is the aggregate metadata of a series.
type Statistics struct {
	Length int64 `json:"length"` // number of items
	Size   int64 `json:"size"`   // bytes on disk
}

// ContentItem is one raw record as returned by the store.
// Binary defaults to false when the store omits it.
type ContentItem struct {
	Timestamp int64  `json:"timestamp"`
	Value     string `json:"value"`
	Metadata  string `json:"metadata"`
	Binary    bool   `json:"binary"`
	Base64    bool   `json:"base64"`
}

// RawValue is the stored payload of one item. ContentType is the item's
// metadata when it reads as a MIME type, application/octet-stream otherwise.
type RawValue struct {
	ContentType string
	Data        []byte
}

// DisplayRow is a content item prepared for the content table.
type DisplayRow struct {
	Timestamp    int64  `json:"timestamp" yaml:"timestamp"`
	Metadata     string `json:"metadata" yaml:"metadata"`
	DisplayValue string `json:"value" yaml:"value"`
}

// ChartPoint is one numeric sample of a series.
type ChartPoint struct {
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value" yaml:"value"`
}

// DirectoryRow summarizes one series in the directory.
// Err is set when the statistics of the series could not be fetched;
// Length and Size are zero in that case.
type DirectoryRow struct {
	SeriesID    SeriesID
	Length      int64
	Size        int64
	ContentLink string
	ChartLink   string
	Err         error
}

// OK reports whether the statistics of the row were fetched.
func (r DirectoryRow) OK() bool { return r.Err == nil }
