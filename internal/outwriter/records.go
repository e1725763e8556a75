package outwriter

import "github.com/tinytelemetry/seriesview/internal/model"

// directoryRecord is the serialised shape of a directory row.
type directoryRecord struct {
	Series      string `json:"series" yaml:"series"`
	Length      int64  `json:"length" yaml:"length"`
	Size        int64  `json:"size" yaml:"size"`
	ContentLink string `json:"content_link" yaml:"content_link"`
	ChartLink   string `json:"chart_link" yaml:"chart_link"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

func toDirectoryRecords(rows []model.DirectoryRow) []directoryRecord {
	out := make([]directoryRecord, len(rows))
	for i, r := range rows {
		out[i] = directoryRecord{
			Series:      string(r.SeriesID),
			Length:      r.Length,
			Size:        r.Size,
			ContentLink: r.ContentLink,
			ChartLink:   r.ChartLink,
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}
