// Package skilltest implements the deterministic rule-evaluation engine for
// percentile skill tests: a use-case orchestrator that sequences the roll and
// margin calculations and records each step as an ordered, immutable event.
//
// The package performs no I/O of its own. Skill lookup and durable event
// storage are injected capability interfaces; randomness is an injected
// RandomSource so results are exactly reproducible under test.
package skilltest

import (
	"maps"

	"github.com/ratto/EDaemonCore/internal/catalog"
	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// ModifierSet is a named collection of signed integer modifiers. It is built
// once per request and never mutated afterwards; only the sum matters, so
// iteration order is irrelevant.
type ModifierSet struct {
	values map[string]int
}

// NewModifierSet copies the given mapping so later mutation of the argument
// cannot leak into the engine.
func NewModifierSet(values map[string]int) ModifierSet {
	if len(values) == 0 {
		return ModifierSet{}
	}
	return ModifierSet{values: maps.Clone(values)}
}

// Len returns the number of named modifiers.
func (m ModifierSet) Len() int { return len(m.values) }

// Value returns the modifier with the given name.
func (m ModifierSet) Value(name string) (int, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Values returns a copy of the underlying mapping.
func (m ModifierSet) Values() map[string]int {
	if m.values == nil {
		return map[string]int{}
	}
	return maps.Clone(m.values)
}

// Request describes one skill test to execute. Caller-supplied and validated
// before any port is invoked.
type Request struct {
	CharacterID id.CharacterID
	SkillID     id.SkillID
	Modifiers   ModifierSet
}

// RollResult combines a base percentile roll with the aggregated modifiers.
// Value is fully determined by BaseRoll and ModifierTotal; there is no hidden
// state, and the value is deliberately not clamped to [1,100].
type RollResult struct {
	BaseRoll      int
	Modifiers     ModifierSet
	ModifierTotal int
	Value         int
}

// Result is the single object returned to the caller: an immutable snapshot
// of the resolved skill, the roll, the margin, and the full ordered event
// trace of the invocation.
type Result struct {
	TestID  id.TestID
	Skill   catalog.Skill
	Roll    RollResult
	Margin  Margin
	Success bool
	Events  []Event
}
