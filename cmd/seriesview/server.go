package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/seriesview/internal/httpserver"
	"github.com/tinytelemetry/seriesview/internal/seriesapi"
	"github.com/tinytelemetry/seriesview/internal/viewer"
	"golang.org/x/sync/errgroup"
)

// runServer serves the web viewer until SIGINT or SIGTERM.
func runServer(cfg appConfig) error {
	configureRuntimeLogger()

	client, err := seriesapi.NewClient(cfg.BaseURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}
	strategy, err := viewer.ParseStrategy(cfg.FetchStrategy)
	if err != nil {
		return err
	}

	srv, err := httpserver.NewServer(httpserver.Config{
		Addr:       cfg.ListenAddr,
		PageLength: cfg.PageLength,
		Gzip:       cfg.Gzip,
		Directory: viewer.DirectoryConfig{
			Strategy:    strategy,
			Concurrency: cfg.FetchConcurrency,
		},
	}, client)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start web server: %w", err)
	}

	// Set up context and signal handling before errgroup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg, client.BaseURL())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownDone := make(chan error, 1)
		go func() { shutdownDone <- srv.Stop() }()
		select {
		case err := <-shutdownDone:
			return err
		case <-time.After(10 * time.Second):
			return fmt.Errorf("shutdown timed out")
		}
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: errgroup exited with error: %v", err)
		return err
	}
	return nil
}

// configureRuntimeLogger sends the request log to stderr, leaving stdout
// to the banner.
func configureRuntimeLogger() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetOutput(os.Stderr)
}

func printStartupBanner(cfg appConfig, storeURL string) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╔═╗╦═╗╦╔═╗╔═╗  ╦  ╦╦╔═╗╦ ╦
    ╚═╗║╣ ╠╦╝║║╣ ╚═╗  ╚╗╔╝║║╣ ║║║
    ╚═╝╚═╝╩╚═╩╚═╝╚═╝   ╚╝ ╩╚═╝╚╩╝`)

	separator := dim.Render("    ─────────────────────────────────")

	lines := []string{"", logo, "    " + dim.Render("v"+version), "", separator, ""}

	lines = append(lines, bold.Render("    Viewer"), "")
	lines = append(lines, fmt.Sprintf("    %s  Web pages      %s", check, cyan.Render("http://"+cfg.ListenAddr+"/")))
	lines = append(lines, fmt.Sprintf("    %s  JSON API       %s", check, cyan.Render("http://"+cfg.ListenAddr+"/api/directory")))
	if cfg.Gzip {
		lines = append(lines, fmt.Sprintf("    %s  Compression    %s", check, dim.Render("gzip")))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Compression    %s", dot, dim.Render("disabled")))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Store"), "")
	lines = append(lines, fmt.Sprintf("    %s  REST API       %s", check, cyan.Render(storeURL)))
	lines = append(lines, fmt.Sprintf("    %s  Fetching       %s", check,
		dim.Render(fmt.Sprintf("%s (concurrency %d, timeout %s)", cfg.FetchStrategy, cfg.FetchConcurrency, cfg.RequestTimeout))))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"), "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "", separator, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"), "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
