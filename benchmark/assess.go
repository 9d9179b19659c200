// Package benchmark - Assessment of analyzed scenes against frame budgets.
package benchmark

// Status classifies one assessment check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// Symbol returns the glyph the report prints for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	default:
		return "✗"
	}
}

// Check is one assessment outcome: a status plus the label the report
// prints next to the status glyph.
type Check struct {
	Status Status
	Text   string
}

// String renders the check the way the report prints it.
func (c Check) String() string {
	return c.Status.Symbol() + " " + c.Text
}

// Assess evaluates an analysis against the targets.
//
// Six checks in fixed order: frame time and FPS are three-tier
// (EXCELLENT / ACCEPTABLE / POOR), the four subsystem budgets are two-tier
// (WITHIN BUDGET / OVER BUDGET).
func Assess(analysis *Analysis, targets Targets) []Check {
	checks := make([]Check, 0, 6)

	switch {
	case analysis.AvgFrameTimeMS <= targets.TargetFrameTimeMS:
		checks = append(checks, Check{Status: StatusPass, Text: "Frame time: EXCELLENT"})
	case analysis.AvgFrameTimeMS <= targets.WarningFrameTimeMS:
		checks = append(checks, Check{Status: StatusWarn, Text: "Frame time: ACCEPTABLE"})
	default:
		checks = append(checks, Check{Status: StatusFail, Text: "Frame time: POOR"})
	}

	switch {
	case analysis.AvgFPS >= targets.TargetFPS:
		checks = append(checks, Check{Status: StatusPass, Text: "FPS: EXCELLENT"})
	case analysis.AvgFPS >= targets.WarningFPS:
		checks = append(checks, Check{Status: StatusWarn, Text: "FPS: ACCEPTABLE"})
	default:
		checks = append(checks, Check{Status: StatusFail, Text: "FPS: POOR"})
	}

	checks = append(checks,
		budgetCheck("GPU Culling", analysis.GPUCullingTimeMS, targets.GPUCullingBudgetMS),
		budgetCheck("Batch Processing", analysis.BatchProcessingTimeMS, targets.BatchProcessingBudgetMS),
		budgetCheck("LOD Updates", analysis.LODUpdateTimeMS, targets.LODUpdateBudgetMS),
		budgetCheck("Streaming", analysis.StreamingTimeMS, targets.StreamingBudgetMS),
	)

	return checks
}

func budgetCheck(name string, timeMS, budgetMS float64) Check {
	if timeMS <= budgetMS {
		return Check{Status: StatusPass, Text: name + ": WITHIN BUDGET"}
	}
	return Check{Status: StatusFail, Text: name + ": OVER BUDGET"}
}
