package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Errorf("base-url = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.ListenAddr != "127.0.0.1:3000" {
		t.Errorf("listen-addr = %q", cfg.ListenAddr)
	}
	if cfg.PageLength != 25 || !cfg.Gzip || cfg.FetchStrategy != "sequential" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("config path = %q, want empty without a file", cfg.ConfigPath)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SERIESVIEW_PAGE_LENGTH", "50")
	path := writeConfig(t, "base-url: http://store:8042\nrequest-timeout: 5s\nlisten-port: 8080\nfetch-strategy: concurrent\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "http://store:8042" || cfg.RequestTimeout != 5*time.Second {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("listen-addr = %q", cfg.ListenAddr)
	}
	if cfg.PageLength != 50 {
		t.Errorf("page-length = %d, want 50 from env", cfg.PageLength)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cases := map[string]string{
		"listen-port":    "listen-port: 70000\n",
		"page-length":    "page-length: 0\n",
		"fetch-strategy": "fetch-strategy: parallel\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if name != "fetch-strategy" && !strings.Contains(err.Error(), name) {
				t.Errorf("error %q should name %s", err, name)
			}
		})
	}
}
