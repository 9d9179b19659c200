// Command benchreport turns Amp engine benchmark results into a performance
// report and a machine-readable summary.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bradyjeong/ampbench/benchmark"
	"github.com/bradyjeong/ampbench/config"
	"github.com/bradyjeong/ampbench/report"
)

var (
	formatFlag  string
	csvFlag     bool
	watchFlag   bool
	noColorFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "benchreport <results_directory>",
	Short: "Generate a performance report from Amp engine benchmark results",
	Long: `benchreport reads the benchmark_*.json files the engine's benchmark
runner writes, prints a per-scene report with budget assessments, and saves
benchmark_summary.json back into the results directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&formatFlag, "format", config.FormatText, "output format: text or json")
	cmd.Flags().BoolVar(&csvFlag, "csv", false, "also write benchmark_summary.csv")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "regenerate whenever the results directory changes")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable styled assessment output")
	cmd.Flags().StringVar(&configFlag, "config", "", "YAML file with option defaults")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; runtime failures should not dump
	// usage text.
	cmd.SilenceUsage = true

	resultsDir := args[0]
	if _, err := os.Stat(resultsDir); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("results directory does not exist: %s", resultsDir)
		}
		return errors.Wrap(err, "results directory not accessible")
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	run := func() error { return generate(resultsDir, opts, os.Stdout, os.Stderr) }

	if err := run(); err != nil {
		return err
	}

	if !watchFlag {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s for changes (interrupt to stop)\n", resultsDir)
	if err := report.Watch(ctx, resultsDir, opts.Debounce(), run); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadOptions layers config-file values under flags set explicitly on the
// command line.
func loadOptions(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()

	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	if cmd.Flags().Changed("format") {
		opts.Format = formatFlag
	}
	if cmd.Flags().Changed("csv") {
		opts.CSV = csvFlag
	}
	if noColorFlag {
		opts.Color = config.ColorNever
	}

	return opts, opts.Validate()
}

// generate runs the load → report → summarize pipeline once. Load
// diagnostics go to stderr in both modes so stdout stays parseable.
func generate(resultsDir string, opts config.Options, stdout, stderr io.Writer) error {
	results, err := benchmark.LoadResults(resultsDir, stderr)
	if err != nil {
		return err
	}

	if opts.Format == config.FormatJSON {
		// stdout carries only the summary document in this mode; the saved
		// path notices move to stderr.
		summary := report.BuildSummary(resultsDir, results)
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return errors.Wrap(err, "summary encoding failed")
		}
		fmt.Fprintln(stdout, string(data))

		if _, err := summary.Save(stderr); err != nil {
			return err
		}
		if opts.CSV {
			if _, err := report.SaveSummaryCSV(resultsDir, results, stderr); err != nil {
				return err
			}
		}
		return nil
	}

	writer := report.NewWriter(stdout)
	writer.Color = colorEnabled(opts)
	writer.WriteReport(resultsDir, results, benchmark.DefaultTargets())

	if _, err := report.SaveSummary(resultsDir, results, stdout); err != nil {
		return err
	}
	if opts.CSV {
		if _, err := report.SaveSummaryCSV(resultsDir, results, stdout); err != nil {
			return err
		}
	}
	return nil
}

func colorEnabled(opts config.Options) bool {
	switch opts.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return report.StdoutIsTerminal()
	}
}
