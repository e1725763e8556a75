package seriesapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/seriesapi"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// newTestStore serves a minimal store with two series.
func newTestStore(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/series", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["temp","a/b"]`)
	})
	mux.HandleFunc("/series/temp/statistics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"length": 3, "size": 42}`)
	})
	mux.HandleFunc("/series/temp/content", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "0" {
			http.Error(w, "want limit=0", http.StatusBadRequest)
			return
		}
		if q.Has("last") {
			fmt.Fprint(w, `{"content":[{"timestamp":9,"value":"9","metadata":"text/plain","base64":false}]}`)
			return
		}
		fmt.Fprint(w, `{"content":[
			{"timestamp":1,"value":"3.14","metadata":"text/plain","base64":false},
			{"timestamp":2,"value":"AAE=","metadata":"application/octet-stream","base64":true,"binary":true}
		]}`)
	})
	mux.HandleFunc("/series/empty/content", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/series/broken/statistics", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown series", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) *seriesapi.Client {
	t.Helper()
	c, err := seriesapi.NewClient(baseURL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestRoundtrip(t *testing.T) {
	srv := newTestStore(t)
	client := newClient(t, srv.URL+"/")
	ctx := context.Background()

	t.Run("ListSeries", func(t *testing.T) {
		ids, err := client.ListSeries(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(ids) != 2 || ids[0] != "temp" || ids[1] != "a/b" {
			t.Fatalf("unexpected ids: %v", ids)
		}
	})

	t.Run("Statistics", func(t *testing.T) {
		stats, err := client.Statistics(ctx, "temp")
		if err != nil {
			t.Fatal(err)
		}
		if stats.Length != 3 || stats.Size != 42 {
			t.Fatalf("unexpected statistics: %+v", stats)
		}
	})

	t.Run("Content", func(t *testing.T) {
		items, err := client.Content(ctx, "temp", model.ContentOpts{})
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 2 {
			t.Fatalf("got %d items, want 2", len(items))
		}
		if items[0].Value != "3.14" || items[0].Binary {
			t.Fatalf("unexpected first item: %+v", items[0])
		}
		if !items[1].Binary || !items[1].Base64 {
			t.Fatalf("unexpected second item: %+v", items[1])
		}
	})

	t.Run("ContentLast", func(t *testing.T) {
		items, err := client.Content(ctx, "temp", model.ContentOpts{Last: true})
		if err != nil {
			t.Fatal(err)
		}
		if len(items) != 1 || items[0].Timestamp != 9 {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("EmptyContent", func(t *testing.T) {
		items, err := client.Content(ctx, "empty", model.ContentOpts{})
		if err != nil {
			t.Fatal(err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("want empty non-nil slice, got %#v", items)
		}
	})
}

func TestStatisticsAPIError(t *testing.T) {
	srv := newTestStore(t)
	client := newClient(t, srv.URL)

	_, err := client.Statistics(context.Background(), "broken")
	var apiErr *seriesapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "unknown series" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestSeriesIDIsPathEscaped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		fmt.Fprint(w, `{"length":0,"size":0}`)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	if _, err := client.Statistics(context.Background(), "a/b c"); err != nil {
		t.Fatal(err)
	}
	if want := "/series/a%2Fb%20c/statistics"; gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
}

func TestNewClientRejectsBadScheme(t *testing.T) {
	if _, err := seriesapi.NewClient("ftp://example.com", 0); err == nil {
		t.Fatal("expected error for ftp scheme")
	}
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	if _, err := client.ListSeries(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestStatisticsSizeAsString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"temp","length":3,"sizeMB":0,"size":"1024"}`)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	stats, err := client.Statistics(context.Background(), "temp")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Length != 3 || stats.Size != 1024 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}

func TestStatisticsRejectsBadCount(t *testing.T) {
	for _, body := range []string{`{"length":3,"size":"12kb"}`, `{"length":-1,"size":0}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))
		client := newClient(t, srv.URL)
		if _, err := client.Statistics(context.Background(), "temp"); err == nil {
			t.Errorf("%s: expected decode error", body)
		}
		srv.Close()
	}
}

func TestDirectoryAgainstStoreStatistics(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/series", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["temp"]`)
	})
	mux.HandleFunc("/series/temp/statistics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"temp","length":3,"sizeMB":0,"size":"1024"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	rows, err := viewer.NewDirectory(newClient(t, srv.URL), viewer.DirectoryConfig{}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || !rows[0].OK() || rows[0].Length != 3 || rows[0].Size != 1024 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestRawValue(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.URL.Path == "/series/temp/content/404" {
			http.Error(w, "", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	ctx := context.Background()

	value, err := client.RawValue(ctx, "a b", 1700000000)
	if err != nil {
		t.Fatal(err)
	}
	if want := "/series/a%20b/content/1700000000"; gotPath != want {
		t.Fatalf("path = %q, want %q", gotPath, want)
	}
	if value.ContentType != "image/png" || string(value.Data) != "\x89PNG" {
		t.Fatalf("unexpected value: %+v", value)
	}

	_, err = client.RawValue(ctx, "temp", 404)
	var apiErr *seriesapi.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 APIError, got %v", err)
	}

	if _, err := client.RawValue(ctx, "temp", -1); err == nil {
		t.Fatal("expected error for negative timestamp")
	}
}
