package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/outwriter"
	"github.com/tinytelemetry/seriesview/internal/seriesapi"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// All linker flags will be set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every subcommand needs. openStore is swapped out in tests.
type app struct {
	v         *viper.Viper
	out       io.Writer
	errOut    io.Writer
	openStore func(baseURL string, timeout time.Duration) (model.SeriesReader, error)
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		v:         viper.New(),
		out:       out,
		errOut:    errOut,
		openStore: openClient,
	}
}

func openClient(baseURL string, timeout time.Duration) (model.SeriesReader, error) {
	c, err := seriesapi.NewClient(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "seriesctl",
		Short:              "Browse the series of a time-series store.",
		Long:               `seriesctl lists the series of a store, prints their content and plottable points, and exports them to parquet.`,
		Version:            version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default is $HOME/.config/seriesview/config.yml)")
	rootCmd.PersistentFlags().String("base-url", model.DefaultBaseURL, "REST API root of the store")
	rootCmd.PersistentFlags().Duration("request-timeout", model.DefaultRequestTimeout, "Timeout of each store request")
	rootCmd.PersistentFlags().String("fetch-strategy", model.DefaultFetchStrategy, "Statistics fetching: sequential or concurrent")
	rootCmd.PersistentFlags().Int("fetch-concurrency", model.DefaultFetchConcurrency, "Parallel statistics requests with the concurrent strategy")
	rootCmd.PersistentFlags().StringP("output", "o", outwriter.TableOut, "Output format: table or json or csv or yaml")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	// Binding only fails on a nil flag.
	_ = a.v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newSeriesCmd(a),
		newContentCmd(a),
		newChartCmd(a),
		newRawCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// initConfig layers the config file and SERIESVIEW_* variables under the flags.
func (a *app) initConfig() error {
	v := a.v
	v.SetEnvPrefix("SERIESVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".config", "seriesview", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if _, err := outwriter.ParseFormat(v.GetString("output")); err != nil {
		return err
	}
	if _, err := viewer.ParseStrategy(v.GetString("fetch-strategy")); err != nil {
		return err
	}
	if n := v.GetInt("fetch-concurrency"); n <= 0 {
		return fmt.Errorf("invalid fetch-concurrency: %d", n)
	}
	return nil
}

func (a *app) store() (model.SeriesReader, error) {
	return a.openStore(a.v.GetString("base-url"), a.v.GetDuration("request-timeout"))
}

func (a *app) directoryConfig() viewer.DirectoryConfig {
	// Validated in initConfig.
	strategy, _ := viewer.ParseStrategy(a.v.GetString("fetch-strategy"))
	return viewer.DirectoryConfig{
		Strategy:    strategy,
		Concurrency: a.v.GetInt("fetch-concurrency"),
	}
}

func (a *app) writer() (*outwriter.OutWriter, error) {
	return outwriter.NewOutWriter(a.out, a.v.GetString("output"), a.v.GetInt("width"))
}
