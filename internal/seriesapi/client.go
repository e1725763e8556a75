package seriesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/seriesview/internal/model"
)

// maxErrorBody bounds how much of an error response is kept in APIError.
const maxErrorBody = 4 * 1024

// Client implements model.SeriesReader over the store's REST API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a client for the store rooted at baseURL.
// A zero timeout falls back to model.DefaultRequestTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = model.DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("seriesapi: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("seriesapi: unsupported base url scheme %q", u.Scheme)
	}
	if timeout <= 0 {
		timeout = model.DefaultRequestTimeout
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// BaseURL returns the store root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// do performs a GET request and returns the response of a 2xx answer.
// The caller closes the body.
func (c *Client) do(ctx context.Context, path string, query url.Values, accept string) (*http.Response, error) {
	// path segments are already escaped, so the URL is assembled as text.
	target := c.baseURL.String() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("seriesapi: build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	// The store sits behind caches that must not serve stale listings.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seriesapi: GET %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// get performs a GET request and decodes the JSON answer into dest.
func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	resp, err := c.do(ctx, path, query, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("seriesapi: decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) ListSeries(ctx context.Context) ([]model.SeriesID, error) {
	var names []string
	if err := c.get(ctx, "/series", nil, &names); err != nil {
		return nil, err
	}
	ids := make([]model.SeriesID, len(names))
	for i, name := range names {
		ids[i] = model.SeriesID(name)
	}
	return ids, nil
}

func (c *Client) Statistics(ctx context.Context, id model.SeriesID) (model.Statistics, error) {
	var resp statisticsResponse
	if err := c.get(ctx, seriesPath(id, "/statistics"), nil, &resp); err != nil {
		return model.Statistics{}, err
	}
	return model.Statistics{Length: int64(resp.Length), Size: int64(resp.Size)}, nil
}

func (c *Client) Content(ctx context.Context, id model.SeriesID, opts model.ContentOpts) ([]model.ContentItem, error) {
	var resp contentResponse
	if err := c.get(ctx, seriesPath(id, "/content"), contentQuery(opts), &resp); err != nil {
		return nil, err
	}
	if resp.Content == nil {
		return []model.ContentItem{}, nil
	}
	return resp.Content, nil
}

// RawValue fetches the stored bytes of the item nearest timestamp, undecoded.
func (c *Client) RawValue(ctx context.Context, id model.SeriesID, timestamp int64) (model.RawValue, error) {
	if timestamp < 0 {
		return model.RawValue{}, fmt.Errorf("seriesapi: negative timestamp %d", timestamp)
	}
	path := seriesPath(id, "/content/"+strconv.FormatInt(timestamp, 10))
	resp, err := c.do(ctx, path, nil, "*/*")
	if err != nil {
		return model.RawValue{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RawValue{}, fmt.Errorf("seriesapi: read %s: %w", path, err)
	}
	return model.RawValue{ContentType: resp.Header.Get("Content-Type"), Data: data}, nil
}
