package skilltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratto/EDaemonCore/internal/catalog"
)

func TestRollService_Roll(t *testing.T) {
	skill := catalog.Skill{ID: "athletics", Difficulty: 40, Attribute: "Strength"}

	t.Run("value is base roll plus modifier total", func(t *testing.T) {
		svc := NewRollService(NewFixedSource(45), NewAggregator())

		result, err := svc.Roll(skill, NewModifierSet(map[string]int{"Strength": 5}))
		require.NoError(t, err)
		assert.Equal(t, 45, result.BaseRoll)
		assert.Equal(t, 5, result.ModifierTotal)
		assert.Equal(t, 50, result.Value)
	})

	t.Run("empty modifiers leave the base roll unchanged", func(t *testing.T) {
		svc := NewRollService(NewFixedSource(1), NewAggregator())

		result, err := svc.Roll(skill, NewModifierSet(nil))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Value)
		assert.Equal(t, 0, result.ModifierTotal)
	})

	t.Run("attribute table delta is folded into the modifier total", func(t *testing.T) {
		agg := NewAggregator(WithAttributeTable(AttributeModifierTable{"Strength": 2}))
		svc := NewRollService(NewFixedSource(45), agg)

		result, err := svc.Roll(skill, NewModifierSet(map[string]int{"blessed": 3}))
		require.NoError(t, err)
		assert.Equal(t, 5, result.ModifierTotal)
		assert.Equal(t, 50, result.Value)
	})

	t.Run("value above 100 is not clamped", func(t *testing.T) {
		svc := NewRollService(NewFixedSource(98), NewAggregator())

		result, err := svc.Roll(skill, NewModifierSet(map[string]int{"heroic": 10}))
		require.NoError(t, err)
		assert.Equal(t, 108, result.Value)
	})

	t.Run("value below 1 is not clamped", func(t *testing.T) {
		svc := NewRollService(NewFixedSource(2), NewAggregator())

		result, err := svc.Roll(skill, NewModifierSet(map[string]int{"cursed": -10}))
		require.NoError(t, err)
		assert.Equal(t, -8, result.Value)
	})

	t.Run("nil aggregator is replaced with a plain one", func(t *testing.T) {
		svc := NewRollService(NewFixedSource(45), nil)

		result, err := svc.Roll(skill, NewModifierSet(map[string]int{"Strength": 5}))
		require.NoError(t, err)
		assert.Equal(t, 50, result.Value)
	})
}
