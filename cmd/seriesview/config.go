package main

import (
	"time"

	"github.com/tinytelemetry/seriesview/internal/model"
)

const (
	defaultBaseURL          = model.DefaultBaseURL
	defaultRequestTimeout   = model.DefaultRequestTimeout
	defaultFetchStrategy    = model.DefaultFetchStrategy
	defaultFetchConcurrency = model.DefaultFetchConcurrency
	defaultPageLength       = model.DefaultPageLength
	defaultBindHost         = "127.0.0.1"
	defaultListenPort       = 3000
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	BaseURL          string        `mapstructure:"base-url"`
	RequestTimeout   time.Duration `mapstructure:"request-timeout"`
	FetchStrategy    string        `mapstructure:"fetch-strategy"`
	FetchConcurrency int           `mapstructure:"fetch-concurrency"`
	PageLength       int           `mapstructure:"page-length"`
	ListenPort       int           `mapstructure:"listen-port"`
	ListenAddr       string        `mapstructure:"listen-addr"`
	Gzip             bool          `mapstructure:"gzip"`
	ConfigPath       string        `mapstructure:"-"` // not from config file
}
