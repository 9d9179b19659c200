// Package report - Rendering and persistence of Amp benchmark reports.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bradyjeong/ampbench/benchmark"
)

// ruleWidth is the dash count of the separator between scene blocks.
const ruleWidth = 60

// Writer renders the per-scene text report.
type Writer struct {
	// Out receives the rendered report.
	Out io.Writer
	// Color styles the assessment lines when set; plain bytes otherwise.
	Color bool
}

// NewWriter returns a Writer printing plain text to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

// WriteReport renders the full report for the loaded results.
//
// Records whose analysis is empty produce no block and no error. An empty
// collection prints a notice and nothing else; the summary is still written
// separately by the caller.
func (w *Writer) WriteReport(resultsDir string, results []benchmark.Result, targets benchmark.Targets) {
	if len(results) == 0 {
		fmt.Fprintln(w.Out, "No benchmark results found")
		return
	}

	fmt.Fprintln(w.Out, "=== Amp Game Engine Benchmark Report ===")
	fmt.Fprintf(w.Out, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w.Out, "Results Directory: %s\n", resultsDir)
	fmt.Fprintf(w.Out, "Total Benchmarks: %d\n", len(results))
	fmt.Fprintln(w.Out)

	for _, result := range results {
		analysis := benchmark.Analyze(result)
		if analysis == nil {
			continue
		}
		w.writeScene(result, analysis, targets)
	}
}

func (w *Writer) writeScene(result benchmark.Result, analysis *benchmark.Analysis, targets benchmark.Targets) {
	fmt.Fprintf(w.Out, "=== Scene: %s ===\n", result.Scene)
	fmt.Fprintf(w.Out, "File: %s\n", result.File)
	fmt.Fprintf(w.Out, "Frames: %d\n", analysis.FrameCount)
	fmt.Fprintln(w.Out)

	fmt.Fprintln(w.Out, "Frame Time Analysis:")
	fmt.Fprintf(w.Out, "  Average: %.2fms\n", analysis.AvgFrameTimeMS)
	fmt.Fprintf(w.Out, "  P95: %.2fms\n", analysis.P95FrameTimeMS)
	fmt.Fprintf(w.Out, "  P99: %.2fms\n", analysis.P99FrameTimeMS)
	fmt.Fprintf(w.Out, "  Min: %.2fms\n", analysis.MinFrameTimeMS)
	fmt.Fprintf(w.Out, "  Max: %.2fms\n", analysis.MaxFrameTimeMS)
	fmt.Fprintln(w.Out)

	fmt.Fprintln(w.Out, "FPS Analysis:")
	fmt.Fprintf(w.Out, "  Average: %.1f FPS\n", analysis.AvgFPS)
	fmt.Fprintf(w.Out, "  Minimum: %.1f FPS\n", analysis.MinFPS)
	fmt.Fprintln(w.Out)

	fmt.Fprintln(w.Out, "System Performance:")
	fmt.Fprintf(w.Out, "  GPU Culling: %.2fms\n", analysis.GPUCullingTimeMS)
	fmt.Fprintf(w.Out, "  Batch Processing: %.2fms\n", analysis.BatchProcessingTimeMS)
	fmt.Fprintf(w.Out, "  LOD Updates: %.2fms\n", analysis.LODUpdateTimeMS)
	fmt.Fprintf(w.Out, "  Streaming: %.2fms\n", analysis.StreamingTimeMS)
	fmt.Fprintln(w.Out)

	fmt.Fprintln(w.Out, "Resource Usage:")
	fmt.Fprintf(w.Out, "  Visible Instances: %s\n", comma(analysis.VisibleInstances))
	fmt.Fprintf(w.Out, "  Culled Instances: %s\n", comma(analysis.CulledInstances))
	fmt.Fprintf(w.Out, "  Batch Count: %s\n", comma(analysis.BatchCount))
	fmt.Fprintf(w.Out, "  Memory Usage: %.1f MB\n", analysis.MemoryUsageMB)
	fmt.Fprintln(w.Out)

	fmt.Fprintln(w.Out, "Performance Assessment:")
	for _, check := range benchmark.Assess(analysis, targets) {
		fmt.Fprintf(w.Out, "  %s\n", w.renderCheck(check))
	}
	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, strings.Repeat("-", ruleWidth))
	fmt.Fprintln(w.Out)
}

func (w *Writer) renderCheck(check benchmark.Check) string {
	if !w.Color {
		return check.String()
	}
	return statusStyles[check.Status].Render(check.String())
}

// comma formats a count with thousands separators.
func comma(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	if neg {
		return "-" + s
	}
	return s
}
