package httpserver

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// Config tunes the web viewer.
type Config struct {
	Addr       string
	PageLength int
	Gzip       bool
	Directory  viewer.DirectoryConfig
}

// Server serves the series viewer pages and their JSON counterparts.
type Server struct {
	addr       string
	store      model.SeriesReader
	directory  *viewer.Directory
	pageLength int
	gzip       bool
	pages      *renderer
	server     *http.Server
	ctx        context.Context
	cancel     context.CancelFunc
	startTime  time.Time
	listenAddr string
}

// NewServer creates a new web viewer server over store.
func NewServer(cfg Config, store model.SeriesReader) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:3000"
	}
	if cfg.PageLength <= 0 {
		cfg.PageLength = model.DefaultPageLength
	}
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:       cfg.Addr,
		store:      store,
		directory:  viewer.NewDirectory(store, cfg.Directory),
		pageLength: cfg.PageLength,
		gzip:       cfg.Gzip,
		pages:      pages,
		ctx:        ctx,
		cancel:     cancel,
		startTime:  time.Now(),
	}, nil
}

// routes builds the gin engine with every viewer route.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/", s.handleDirectoryPage)
	r.GET("/index.html", s.handleDirectoryPage)
	r.GET("/content.html", s.handleContentPage)
	r.GET("/chart.html", s.handleChartPage)

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/directory", s.handleDirectory)
	api.GET("/content", s.handleContent)
	api.GET("/chart", s.handleChart)

	return r
}

// Handler returns the HTTP handler of the viewer, gzip-wrapped when enabled.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.routes()
	if s.gzip {
		h = gzhttp.GzipHandler(h)
	}
	return h
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.listenAddr = listener.Addr().String()
	log.Printf("httpserver: listening on %s", s.listenAddr)

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("httpserver: serve error: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	return s.listenAddr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// requestLogger tags every request with an id and logs it once served.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)

		start := time.Now()
		c.Next()

		log.Printf("httpserver: %s %s %d %s id=%s",
			c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start).Round(time.Microsecond), id)
	}
}
