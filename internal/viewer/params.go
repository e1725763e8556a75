package viewer

import (
	"errors"
	"net/url"
	"strings"

	"github.com/tinytelemetry/seriesview/internal/model"
)

// SeriesParamName is the query parameter naming the series of a view.
const SeriesParamName = "id"

// ErrNoSeriesSelected is returned when a view is opened without a series.
var ErrNoSeriesSelected = errors.New("viewer: no series selected")

// SeriesParam extracts the series of a view from its query parameters.
// It reports false when the parameter is absent or blank.
func SeriesParam(values url.Values) (model.SeriesID, bool) {
	raw := strings.TrimSpace(values.Get(SeriesParamName))
	if raw == "" {
		return "", false
	}
	return model.SeriesID(raw), true
}

// SeriesParamFromURL is SeriesParam applied to a full view URL.
// A malformed URL or query string counts as no selection.
func SeriesParamFromURL(rawURL string) (model.SeriesID, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", false
	}
	return SeriesParam(values)
}

// ContentLink returns the relative link of the content view of a series.
func ContentLink(id model.SeriesID) string {
	return viewLink("content.html", id)
}

// ChartLink returns the relative link of the chart view of a series.
func ChartLink(id model.SeriesID) string {
	return viewLink("chart.html", id)
}

func viewLink(page string, id model.SeriesID) string {
	return page + "?" + SeriesParamName + "=" + url.QueryEscape(string(id))
}
