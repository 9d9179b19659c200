package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	data := []byte(`{
		"scene": "downtown_drive",
		"metrics": {
			"frame_times": [16.2, 15.8, 17.1],
			"gpu_culling_time_ms": 0.21,
			"batch_processing_time_ms": 2.1,
			"lod_update_time_ms": 0.8,
			"streaming_time_ms": 1.2,
			"visible_instances": 12500,
			"culled_instances": 87500,
			"batch_count": 340,
			"memory_usage_mb": 512.5
		}
	}`)

	result, err := ParseResult(data)
	require.NoError(t, err, "well-formed result should parse")

	assert.Equal(t, "downtown_drive", result.Scene)
	assert.Equal(t, []float64{16.2, 15.8, 17.1}, result.Metrics.FrameTimes)
	assert.Equal(t, 0.21, result.Metrics.GPUCullingTimeMS)
	assert.Equal(t, 2.1, result.Metrics.BatchProcessingTimeMS)
	assert.Equal(t, 0.8, result.Metrics.LODUpdateTimeMS)
	assert.Equal(t, 1.2, result.Metrics.StreamingTimeMS)
	assert.Equal(t, int64(12500), result.Metrics.VisibleInstances)
	assert.Equal(t, int64(87500), result.Metrics.CulledInstances)
	assert.Equal(t, int64(340), result.Metrics.BatchCount)
	assert.Equal(t, 512.5, result.Metrics.MemoryUsageMB)
	assert.Empty(t, result.File, "file tag is assigned by the loader, not the parser")
}

func TestParseResultDefaultsScene(t *testing.T) {
	// Missing scene name.
	result, err := ParseResult([]byte(`{"metrics": {"frame_times": [16.0]}}`))
	require.NoError(t, err)
	assert.Equal(t, "unknown", result.Scene)

	// Explicitly empty scene name.
	result, err = ParseResult([]byte(`{"scene": "", "metrics": {"frame_times": [16.0]}}`))
	require.NoError(t, err)
	assert.Equal(t, "unknown", result.Scene)
}

func TestParseResultSparseMetrics(t *testing.T) {
	result, err := ParseResult([]byte(`{"scene": "minimal", "metrics": {}}`))
	require.NoError(t, err)

	assert.Equal(t, "minimal", result.Scene)
	assert.Empty(t, result.Metrics.FrameTimes)
	assert.Zero(t, result.Metrics.GPUCullingTimeMS)
	assert.Zero(t, result.Metrics.VisibleInstances)
	assert.Zero(t, result.Metrics.MemoryUsageMB)
}

func TestParseResultEmptyObject(t *testing.T) {
	result, err := ParseResult([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "unknown", result.Scene)
	assert.Empty(t, result.Metrics.FrameTimes)
}

func TestParseResultMalformed(t *testing.T) {
	_, err := ParseResult([]byte(`{"scene": "broken"`))
	assert.Error(t, err)

	_, err = ParseResult([]byte(`not json at all`))
	assert.Error(t, err)

	// Wrong type for a known field is an error, not a silent zero.
	_, err = ParseResult([]byte(`{"scene": "typed", "metrics": {"frame_times": "fast"}}`))
	assert.Error(t, err)
}
