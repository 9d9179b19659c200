package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/bradyjeong/ampbench/benchmark"
)

// CSVFileName is the optional spreadsheet sidecar next to the JSON summary.
const CSVFileName = "benchmark_summary.csv"

// csvHeader columns line up with the Sprintf verbs in SaveSummaryCSV.
const csvHeader = "Scene,File,Frames," +
	"Avg_Frame_Time_ms,Min_Frame_Time_ms,Max_Frame_Time_ms,P95_Frame_Time_ms,P99_Frame_Time_ms," +
	"Avg_FPS,Min_FPS," +
	"GPU_Culling_ms,Batch_Processing_ms,LOD_Updates_ms,Streaming_ms," +
	"Visible_Instances,Culled_Instances,Batch_Count,Memory_MB\n"

// SaveSummaryCSV writes one row per analyzed scene into the results
// directory and prints the path to out. Records without frame samples are
// skipped, matching the JSON summary.
func SaveSummaryCSV(resultsDir string, results []benchmark.Result, out io.Writer) (string, error) {
	path := filepath.Join(resultsDir, CSVFileName)

	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "csv create failed")
	}
	defer file.Close()

	if _, err := file.WriteString(csvHeader); err != nil {
		return "", errors.Wrap(err, "csv write failed")
	}

	for _, result := range results {
		analysis := benchmark.Analyze(result)
		if analysis == nil {
			continue
		}

		line := fmt.Sprintf("%s,%s,%d,%.2f,%.2f,%.2f,%.2f,%.2f,%.1f,%.1f,%.2f,%.2f,%.2f,%.2f,%d,%d,%d,%.1f\n",
			csvField(result.Scene),
			csvField(result.File),
			analysis.FrameCount,
			analysis.AvgFrameTimeMS,
			analysis.MinFrameTimeMS,
			analysis.MaxFrameTimeMS,
			analysis.P95FrameTimeMS,
			analysis.P99FrameTimeMS,
			analysis.AvgFPS,
			analysis.MinFPS,
			analysis.GPUCullingTimeMS,
			analysis.BatchProcessingTimeMS,
			analysis.LODUpdateTimeMS,
			analysis.StreamingTimeMS,
			analysis.VisibleInstances,
			analysis.CulledInstances,
			analysis.BatchCount,
			analysis.MemoryUsageMB,
		)
		if _, err := file.WriteString(line); err != nil {
			return "", errors.Wrap(err, "csv write failed")
		}
	}

	fmt.Fprintf(out, "CSV saved to: %s\n", path)
	return path, nil
}

// csvField quotes a free-text value that would otherwise break the row.
// Scene names come from the producer and may carry commas; the numeric
// columns never need this.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
