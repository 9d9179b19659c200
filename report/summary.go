package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/bradyjeong/ampbench/benchmark"
)

// SummaryFileName is the machine-readable artifact written into the results
// directory on every run, overwriting the previous one.
const SummaryFileName = "benchmark_summary.json"

// Summary mirrors the printed report for downstream consumers.
type Summary struct {
	Timestamp      string         `json:"timestamp"`
	ResultsDir     string         `json:"results_dir"`
	BenchmarkCount int            `json:"benchmark_count"`
	Benchmarks     []SummaryEntry `json:"benchmarks"`
}

// SummaryEntry pairs one analyzed scene with its source file.
type SummaryEntry struct {
	Scene    string              `json:"scene"`
	File     string              `json:"file"`
	Analysis *benchmark.Analysis `json:"analysis"`
}

// BuildSummary assembles the summary document for the loaded results.
//
// Analysis runs here independently of the report writer. BenchmarkCount
// covers every loaded record; records without frame samples get no
// Benchmarks entry.
func BuildSummary(resultsDir string, results []benchmark.Result) Summary {
	summary := Summary{
		Timestamp:      time.Now().Format(time.RFC3339),
		ResultsDir:     resultsDir,
		BenchmarkCount: len(results),
		Benchmarks:     make([]SummaryEntry, 0, len(results)),
	}

	for _, result := range results {
		analysis := benchmark.Analyze(result)
		if analysis == nil {
			continue
		}

		summary.Benchmarks = append(summary.Benchmarks, SummaryEntry{
			Scene:    result.Scene,
			File:     result.File,
			Analysis: analysis,
		})
	}

	return summary
}

// Save writes the summary document into its results directory and prints
// the path to out.
//
// Returns:
// - string: Path of the written file.
// - error: Write failures propagate unretried; the caller treats them as
//   fatal.
func (s Summary) Save(out io.Writer) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "summary encoding failed")
	}

	path := filepath.Join(s.ResultsDir, SummaryFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "summary write failed")
	}

	fmt.Fprintf(out, "Summary saved to: %s\n", path)
	return path, nil
}

// SaveSummary builds and writes the summary in one step.
func SaveSummary(resultsDir string, results []benchmark.Result, out io.Writer) (string, error) {
	return BuildSummary(resultsDir, results).Save(out)
}
