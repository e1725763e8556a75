package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

const (
	noSeriesMessage      = "No time series selected."
	loadSeriesFailedMsg  = "Unable to load the list of time series."
	loadContentFailedMsg = "Unable to load the content of this time series."
)

// directoryEntry is the JSON shape of one directory row.
type directoryEntry struct {
	Series      model.SeriesID `json:"series"`
	Length      int64          `json:"length"`
	Size        int64          `json:"size"`
	ContentLink string         `json:"content_link"`
	ChartLink   string         `json:"chart_link"`
	Error       string         `json:"error,omitempty"`
}

func toDirectoryEntries(rows []model.DirectoryRow) []directoryEntry {
	entries := make([]directoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = directoryEntry{
			Series:      row.SeriesID,
			Length:      row.Length,
			Size:        row.Size,
			ContentLink: row.ContentLink,
			ChartLink:   row.ChartLink,
		}
		if row.Err != nil {
			entries[i].Error = row.Err.Error()
		}
	}
	return entries
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleDirectoryPage(c *gin.Context) {
	data := PageData{Title: "Time series"}
	rows, err := s.directory.Load(c.Request.Context())
	if err != nil {
		data.Error = loadSeriesFailedMsg
		s.pages.render(c, http.StatusBadGateway, "directory.html", data)
		return
	}
	data.Data = rows
	s.pages.render(c, http.StatusOK, "directory.html", data)
}

func (s *Server) handleContentPage(c *gin.Context) {
	data := PageData{Title: "Content"}
	query := c.Request.URL.Query()
	id, ok := viewer.SeriesParam(query)
	if !ok {
		data.Notice = noSeriesMessage
		s.pages.render(c, http.StatusBadRequest, "content.html", data)
		return
	}
	data.SeriesID = id
	data.Title = "Content of " + string(id)

	rows, err := viewer.LoadContent(c.Request.Context(), s.store, id)
	if err != nil {
		data.Error = loadContentFailedMsg
		s.pages.render(c, http.StatusBadGateway, "content.html", data)
		return
	}
	data.Data = paginate(id, rows, pageParam(query), s.pageLength)
	s.pages.render(c, http.StatusOK, "content.html", data)
}

func (s *Server) handleChartPage(c *gin.Context) {
	data := PageData{Title: "Chart"}
	id, ok := viewer.SeriesParam(c.Request.URL.Query())
	if !ok {
		data.Notice = noSeriesMessage
		s.pages.render(c, http.StatusBadRequest, "chart.html", data)
		return
	}
	data.SeriesID = id
	data.Title = "Chart of " + string(id)

	points, err := viewer.LoadChart(c.Request.Context(), s.store, id)
	switch {
	case errors.Is(err, viewer.ErrNoNumericPayload):
		data.Notice = viewer.NoNumericPayloadNotice
	case err != nil:
		data.Error = loadContentFailedMsg
		s.pages.render(c, http.StatusBadGateway, "chart.html", data)
		return
	default:
		data.Data = newChartView(points)
	}
	s.pages.render(c, http.StatusOK, "chart.html", data)
}

func (s *Server) handleDirectory(c *gin.Context) {
	rows, err := s.directory.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"series": toDirectoryEntries(rows),
		"count":  len(rows),
	})
}

func (s *Server) handleContent(c *gin.Context) {
	id, ok := viewer.SeriesParam(c.Request.URL.Query())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": viewer.ErrNoSeriesSelected.Error()})
		return
	}
	rows, err := viewer.LoadContent(c.Request.Context(), s.store, id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"series": id,
		"rows":   rows,
		"count":  len(rows),
	})
}

func (s *Server) handleChart(c *gin.Context) {
	id, ok := viewer.SeriesParam(c.Request.URL.Query())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": viewer.ErrNoSeriesSelected.Error()})
		return
	}
	points, err := viewer.LoadChart(c.Request.Context(), s.store, id)
	resp := gin.H{"series": id, "points": points, "count": len(points)}
	switch {
	case errors.Is(err, viewer.ErrNoNumericPayload):
		resp["notice"] = viewer.NoNumericPayloadNotice
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
