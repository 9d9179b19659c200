package benchmark

import "sort"

// Analysis is the normalized per-scene analysis derived from one result.
// Field order mirrors the summary document layout.
type Analysis struct {
	AvgFrameTimeMS        float64 `json:"avg_frame_time_ms"`
	MinFrameTimeMS        float64 `json:"min_frame_time_ms"`
	MaxFrameTimeMS        float64 `json:"max_frame_time_ms"`
	P95FrameTimeMS        float64 `json:"p95_frame_time_ms"`
	P99FrameTimeMS        float64 `json:"p99_frame_time_ms"`
	AvgFPS                float64 `json:"avg_fps"`
	MinFPS                float64 `json:"min_fps"`
	FrameCount            int     `json:"frame_count"`
	GPUCullingTimeMS      float64 `json:"gpu_culling_time_ms"`
	BatchProcessingTimeMS float64 `json:"batch_processing_time_ms"`
	LODUpdateTimeMS       float64 `json:"lod_update_time_ms"`
	StreamingTimeMS       float64 `json:"streaming_time_ms"`
	VisibleInstances      int64   `json:"visible_instances"`
	CulledInstances       int64   `json:"culled_instances"`
	BatchCount            int64   `json:"batch_count"`
	MemoryUsageMB         float64 `json:"memory_usage_mb"`
}

// Analyze computes frame-time statistics for one benchmark record and
// copies its subsystem metrics through. Pure: the input record is not
// modified.
//
// Arguments:
// - result: One loaded benchmark record.
//
// Returns:
// - *Analysis: The analysis, or nil when the record has no frame samples.
//   A nil analysis means "nothing to report" and is skipped by callers,
//   not treated as an error.
//
// @example
// analysis := benchmark.Analyze(result)
// fmt.Printf("%.1f FPS over %d frames\n", analysis.AvgFPS, analysis.FrameCount)
func Analyze(result Result) *Analysis {
	frameTimes := result.Metrics.FrameTimes
	if len(frameTimes) == 0 {
		return nil
	}

	sorted := make([]float64, len(frameTimes))
	copy(sorted, frameTimes)
	sort.Float64s(sorted)

	// Calculate mean.
	sum := 0.0
	for _, t := range frameTimes {
		sum += t
	}
	avg := sum / float64(len(frameTimes))
	maxTime := sorted[len(sorted)-1]

	// 1000ms per second; a frame time of 0 would divide by zero, so it
	// reports as 0 FPS instead.
	avgFPS := 0.0
	if avg > 0 {
		avgFPS = 1000.0 / avg
	}
	minFPS := 0.0
	if maxTime > 0 {
		minFPS = 1000.0 / maxTime
	}

	return &Analysis{
		AvgFrameTimeMS:        avg,
		MinFrameTimeMS:        sorted[0],
		MaxFrameTimeMS:        maxTime,
		P95FrameTimeMS:        percentile(sorted, 0.95),
		P99FrameTimeMS:        percentile(sorted, 0.99),
		AvgFPS:                avgFPS,
		MinFPS:                minFPS,
		FrameCount:            len(frameTimes),
		GPUCullingTimeMS:      result.Metrics.GPUCullingTimeMS,
		BatchProcessingTimeMS: result.Metrics.BatchProcessingTimeMS,
		LODUpdateTimeMS:       result.Metrics.LODUpdateTimeMS,
		StreamingTimeMS:       result.Metrics.StreamingTimeMS,
		VisibleInstances:      result.Metrics.VisibleInstances,
		CulledInstances:       result.Metrics.CulledInstances,
		BatchCount:            result.Metrics.BatchCount,
		MemoryUsageMB:         result.Metrics.MemoryUsageMB,
	}
}

// percentile selects from an ascending-sorted, non-empty slice by
// truncating rank: index int(n*p). The estimator is part of the summary
// format; do not swap in an interpolating method.
func percentile(sorted []float64, p float64) float64 {
	return sorted[int(float64(len(sorted))*p)]
}
