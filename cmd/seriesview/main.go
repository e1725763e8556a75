package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/seriesview/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("seriesview - Time Series Web Viewer\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SERIESVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", defaultBaseURL)
	v.SetDefault("request-timeout", defaultRequestTimeout)
	v.SetDefault("fetch-strategy", defaultFetchStrategy)
	v.SetDefault("fetch-concurrency", defaultFetchConcurrency)
	v.SetDefault("page-length", defaultPageLength)
	v.SetDefault("listen-port", defaultListenPort)
	v.SetDefault("listen-addr", "")
	v.SetDefault("gzip", true)

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
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}

	if cfg.ListenPort <= 0 || cfg.ListenPort > 65535 {
		return cfg, fmt.Errorf("invalid listen-port: %d", cfg.ListenPort)
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

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.ListenPort))
	}

	return cfg, nil
}
