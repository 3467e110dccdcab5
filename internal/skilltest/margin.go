package skilltest

import (
	"math"

	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

// Margin is the signed difference between an achieved roll value and a
// skill's difficulty. Non-negative means success: ties favor the roller.
type Margin int

// Success reports whether the margin clears the difficulty threshold.
func (m Margin) Success() bool { return m >= 0 }

// MarginService compares a roll result against a difficulty threshold.
// Stateless; the zero value is ready to use.
type MarginService struct{}

// Calculate returns rollResult.Value - difficulty. Total over all realistic
// inputs; the overflow guard exists only for hostile difficulty values and is
// surfaced, never clamped.
func (MarginService) Calculate(roll RollResult, difficulty int) (Margin, error) {
	if difficulty < 0 && roll.Value > math.MaxInt+difficulty {
		return 0, dErrors.New(dErrors.CodeInternal, "margin calculation overflowed")
	}
	if difficulty > 0 && roll.Value < math.MinInt+difficulty {
		return 0, dErrors.New(dErrors.CodeInternal, "margin calculation underflowed")
	}
	return Margin(roll.Value - difficulty), nil
}
