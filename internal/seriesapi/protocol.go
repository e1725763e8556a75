package seriesapi

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tinytelemetry/seriesview/internal/model"
)

// REST Route Reference
//
// The store exposes its series over plain HTTP GET. Only the read routes are
// used by the viewer.
//
//   Route                                  Query                     Result
//   ─────────────────────────────────────  ────────────────────────  ─────────────────────────────
//   /series                                (none)                    []string
//   /series/{id}/statistics                (none)                    {name, length, sizeMB, size: "123"}
//   /series/{id}/content                   limit, since, last        {content: []ContentItem}
//   /series/{id}/content/{timestamp}       (none)                    raw bytes, Content-Type = metadata
//
// limit defaults to 10 on the store side, limit=0 returns every item.
// since seeks to the nearest timestamp; last starts from the newest item.
// Non-2xx answers carry a plain text or JSON body, surfaced as APIError.
// The statistics route sends size as a decimal string.

// storeInt decodes an unsigned count sent either as a JSON number or as a
// decimal string.
type storeInt int64

func (n *storeInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(bytes.Trim(data, `"`))
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("seriesapi: invalid count %s", data)
	}
	*n = storeInt(v)
	return nil
}

// statisticsResponse is the answer of the statistics route.
type statisticsResponse struct {
	Name   string   `json:"name"`
	Length storeInt `json:"length"`
	SizeMB storeInt `json:"sizeMB"`
	Size   storeInt `json:"size"`
}

// contentResponse is the envelope of the content route.
type contentResponse struct {
	Content []model.ContentItem `json:"content"`
}

// APIError is returned when the store answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("seriesapi: status %d", e.StatusCode)
	}
	return fmt.Sprintf("seriesapi: status %d: %s", e.StatusCode, e.Message)
}

func seriesPath(id model.SeriesID, tail string) string {
	return "/series/" + url.PathEscape(string(id)) + tail
}

func contentQuery(opts model.ContentOpts) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Since != nil {
		q.Set("since", strconv.FormatInt(*opts.Since, 10))
	} else if opts.Last {
		q.Set("last", "")
	}
	return q
}
