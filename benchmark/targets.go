package benchmark

// Targets is the fixed set of budgets a scene's analysis is assessed
// against. One instance covers a whole report generation; the values are
// not configurable at runtime.
type Targets struct {
	TargetFPS               float64
	WarningFPS              float64
	CriticalFPS             float64
	TargetFrameTimeMS       float64
	WarningFrameTimeMS      float64
	CriticalFrameTimeMS     float64
	GPUCullingBudgetMS      float64
	BatchProcessingBudgetMS float64
	LODUpdateBudgetMS       float64
	StreamingBudgetMS       float64
}

// DefaultTargets returns the engine's performance budgets. The critical
// thresholds are carried for completeness; no assessment currently reads
// them.
func DefaultTargets() Targets {
	return Targets{
		TargetFPS:               60,
		WarningFPS:              30,
		CriticalFPS:             15,
		TargetFrameTimeMS:       16.67, // one 60Hz frame
		WarningFrameTimeMS:      33.33, // one 30Hz frame
		CriticalFrameTimeMS:     66.67,
		GPUCullingBudgetMS:      0.25,
		BatchProcessingBudgetMS: 2.5,
		LODUpdateBudgetMS:       1.0,
		StreamingBudgetMS:       1.5,
	}
}
