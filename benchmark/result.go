// Package benchmark - Loading and analysis of Amp engine benchmark results.
package benchmark

import (
	"encoding/json"
	"fmt"
)

// Metrics holds the raw measurements the engine's benchmark runner records
// for one scene. Keys absent from the source document decode to their zero
// values, so a sparse document still yields a fully populated struct.
type Metrics struct {
	// FrameTimes is the per-frame render duration sequence in milliseconds.
	FrameTimes []float64 `json:"frame_times"`
	// GPUCullingTimeMS is the GPU culling cost per frame in milliseconds.
	GPUCullingTimeMS float64 `json:"gpu_culling_time_ms"`
	// BatchProcessingTimeMS is the batch processing cost per frame in milliseconds.
	BatchProcessingTimeMS float64 `json:"batch_processing_time_ms"`
	// LODUpdateTimeMS is the level-of-detail update cost per frame in milliseconds.
	LODUpdateTimeMS float64 `json:"lod_update_time_ms"`
	// StreamingTimeMS is the world streaming cost per frame in milliseconds.
	StreamingTimeMS float64 `json:"streaming_time_ms"`
	// VisibleInstances is the number of instances that survived culling.
	VisibleInstances int64 `json:"visible_instances"`
	// CulledInstances is the number of instances removed by culling.
	CulledInstances int64 `json:"culled_instances"`
	// BatchCount is the number of draw batches submitted.
	BatchCount int64 `json:"batch_count"`
	// MemoryUsageMB is the resident memory footprint in megabytes.
	MemoryUsageMB float64 `json:"memory_usage_mb"`
}

// Result is one benchmark record: a scene name plus the metrics captured
// while that scene ran. Results are created by the loader and read-only
// afterward.
type Result struct {
	Scene   string  `json:"scene"`
	Metrics Metrics `json:"metrics"`

	// File is the base name of the source file, assigned at load time.
	File string `json:"-"`
}

// ParseResult decodes a single benchmark document.
//
// Arguments:
// - data: Raw JSON bytes of one benchmark_*.json document.
//
// Returns:
// - Result: The decoded record, with a missing scene defaulted to "unknown".
// - error: Error if the document does not decode against the schema.
func ParseResult(data []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, fmt.Errorf("failed to unmarshal benchmark result: %w", err)
	}

	if result.Scene == "" {
		result.Scene = "unknown"
	}

	return result, nil
}
