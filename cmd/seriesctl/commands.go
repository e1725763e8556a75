package main

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tinytelemetry/seriesview/internal/model"
	"github.com/tinytelemetry/seriesview/internal/outwriter"
	"github.com/tinytelemetry/seriesview/internal/viewer"
)

// errNoNumericPayload ends the process with exitNoNumeric.
var errNoNumericPayload = errors.New("no numeric payload")

// newSeriesCmd lists every series with its statistics.
func newSeriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "List the time series of the store with their length and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			ow, err := a.writer()
			if err != nil {
				return err
			}
			rows, err := viewer.NewDirectory(store, a.directoryConfig()).Load(cmd.Context())
			if err != nil {
				return err
			}
			return ow.WriteDirectory(rows)
		},
	}
}

// newContentCmd prints the display rows of one series.
func newContentCmd(a *app) *cobra.Command {
	var (
		since int64
		last  bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "content <series>",
		Short: "Print the content of a time series",
		Long: `Print the timestamp, metadata and display value of every item of a series.

Values of 128 characters or more are shown as "(too long)"; base64 payloads are
marked with " (base64)".

Examples:
  # Everything
  seriesctl content temperature

  # The ten items nearest a timestamp, as JSON
  seriesctl content temperature --since 1700000000 --limit 10 -o json

  # Start from the most recent item
  seriesctl content temperature --last --limit 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			ow, err := a.writer()
			if err != nil {
				return err
			}
			opts := model.ContentOpts{Limit: limit, Last: last}
			if cmd.Flags().Changed("since") {
				if since < 0 {
					return fmt.Errorf("invalid --since %d: timestamps are not negative", since)
				}
				opts.Since = &since
			}
			rows, err := viewer.LoadContentRange(cmd.Context(), store, model.SeriesID(args[0]), opts)
			if err != nil {
				return err
			}
			return ow.WriteContent(rows)
		},
	}
	cmd.Flags().Int64Var(&since, "since", 0, "Start at the item nearest this timestamp")
	cmd.Flags().BoolVar(&last, "last", false, "Start at the most recent item")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items (0 = all)")
	cmd.MarkFlagsMutuallyExclusive("since", "last")
	return cmd
}

// newChartCmd prints the plottable points of one series.
func newChartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chart <series>",
		Short: "Print the numeric points of a time series",
		Long: `Print the (timestamp, value) points a chart of the series would plot.

Binary items and values that are not numbers are skipped. When nothing is left
a notice is printed on stderr and the exit status is 3.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ow, err := a.writer()
			if err != nil {
				return err
			}
			points, err := a.loadChart(cmd, model.SeriesID(args[0]))
			if err != nil {
				return err
			}
			return ow.WriteChart(points)
		},
	}
}

// newRawCmd writes the stored bytes of one item to stdout.
func newRawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <series> <timestamp>",
		Short: "Print the full stored value of one item of a time series",
		Long: `Print the stored bytes of the item at the given timestamp, or of the first
item after it. Values shown as "(too long)" by the content command are printed
in full; base64 payloads are written decoded.

Examples:
  seriesctl raw temperature 1700000000
  seriesctl raw camera 42 > frame.jpg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			timestamp, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || timestamp < 0 {
				return fmt.Errorf("invalid timestamp %q", args[1])
			}
			store, err := a.store()
			if err != nil {
				return err
			}
			raw, ok := store.(model.RawReader)
			if !ok {
				return errors.New("store does not serve raw values")
			}
			value, err := raw.RawValue(cmd.Context(), model.SeriesID(args[0]), timestamp)
			if err != nil {
				return err
			}
			_, err = a.out.Write(value.Data)
			return err
		},
	}
}

// loadChart prints the no-numeric-payload notice itself so callers only
// need to propagate the error.
func (a *app) loadChart(cmd *cobra.Command, id model.SeriesID) ([]model.ChartPoint, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	points, err := viewer.LoadChart(cmd.Context(), store, id)
	if errors.Is(err, viewer.ErrNoNumericPayload) {
		fmt.Fprintln(a.errOut, viewer.NoNumericPayloadNotice)
		return nil, errNoNumericPayload
	}
	return points, err
}

// newExportCmd writes the content or chart points of a series to parquet.
func newExportCmd(a *app) *cobra.Command {
	var (
		outPath string
		what    string
	)
	cmd := &cobra.Command{
		Use:   "export <series>",
		Short: "Export the content or chart points of a time series to a parquet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.SeriesID(args[0])
			var n int
			switch what {
			case "content":
				store, err := a.store()
				if err != nil {
					return err
				}
				rows, err := viewer.LoadContent(cmd.Context(), store, id)
				if err != nil {
					return err
				}
				if err := outwriter.WriteContentParquet(id, rows, outPath); err != nil {
					return err
				}
				n = len(rows)
			case "chart":
				points, err := a.loadChart(cmd, id)
				if err != nil {
					return err
				}
				if err := outwriter.WriteChartParquet(id, points, outPath); err != nil {
					return err
				}
				n = len(points)
			default:
				return fmt.Errorf("unknown export %q (want content or chart)", what)
			}
			fmt.Fprintf(a.out, "Exported %d %s rows of %s to: %s\n", n, what, id, outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "Parquet file to write")
	cmd.Flags().StringVar(&what, "what", "content", "What to export: content or chart")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// newVersionCmd shows the verbose version for diagnostic purposes.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of seriesctl.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("seriesctl CLI\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Commit:  %s\n", commit)
			cmd.Printf("  Built:   %s\n", date)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
