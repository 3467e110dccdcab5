package skilltest

import (
	"github.com/ratto/EDaemonCore/internal/catalog"
)

// Percentile die bounds. A base roll is always in [1,100]; the final value
// may legally leave that range once modifiers apply.
const (
	d100Min = 1
	d100Max = 100
)

// RollService produces roll results from a base d100 roll and aggregated
// modifiers. All randomness comes from the injected RandomSource, so a fixed
// source makes results exactly reproducible.
type RollService struct {
	random     RandomSource
	aggregator *Aggregator
}

// NewRollService builds a RollService. The aggregator may carry an attribute
// modifier table; pass NewAggregator() when none is needed.
func NewRollService(random RandomSource, aggregator *Aggregator) *RollService {
	if aggregator == nil {
		aggregator = NewAggregator()
	}
	return &RollService{random: random, aggregator: aggregator}
}

// Roll obtains a base roll in [1,100], aggregates the modifier set plus the
// skill's attribute-derived delta, and returns the combined result.
//
// The final value is intentionally not clamped: modifiers can push a test
// above 100 or below 1, and whether that should be capped is a game-content
// decision, not an engine one.
func (s *RollService) Roll(skill catalog.Skill, mods ModifierSet) (RollResult, error) {
	baseRoll := s.random.Next(d100Min, d100Max)

	total, err := s.aggregator.Aggregate(mods)
	if err != nil {
		return RollResult{}, err
	}
	total, err = addChecked(total, s.aggregator.AttributeDelta(skill.Attribute))
	if err != nil {
		return RollResult{}, err
	}

	value, err := addChecked(baseRoll, total)
	if err != nil {
		return RollResult{}, err
	}

	return RollResult{
		BaseRoll:      baseRoll,
		Modifiers:     mods,
		ModifierTotal: total,
		Value:         value,
	}, nil
}
