package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

const defaultSkin = "default"

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	BaseURL          string        `mapstructure:"base-url"`
	RequestTimeout   time.Duration `mapstructure:"request-timeout"`
	FetchStrategy    string        `mapstructure:"fetch-strategy"`
	FetchConcurrency int           `mapstructure:"fetch-concurrency"`
	PageLength       int           `mapstructure:"page-length"`
	Skin             string        `mapstructure:"skin"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SERIESVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", model.DefaultBaseURL)
	v.SetDefault("request-timeout", model.DefaultRequestTimeout)
	v.SetDefault("fetch-strategy", model.DefaultFetchStrategy)
	v.SetDefault("fetch-concurrency", model.DefaultFetchConcurrency)
	v.SetDefault("page-length", model.DefaultPageLength)
	v.SetDefault("skin", defaultSkin)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "seriesview", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.PageLength <= 0 {
		return cfg, fmt.Errorf("invalid page-length: %d", cfg.PageLength)
	}
	if cfg.FetchConcurrency <= 0 {
		return cfg, fmt.Errorf("invalid fetch-concurrency: %d", cfg.FetchConcurrency)
	}
	if _, err := viewer.ParseStrategy(cfg.FetchStrategy); err != nil {
		return cfg, err
	}

	return cfg, nil
}
