package skilltest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

func TestAggregator_Aggregate(t *testing.T) {
	agg := NewAggregator()

	t.Run("empty set sums to zero", func(t *testing.T) {
		total, err := agg.Aggregate(NewModifierSet(nil))
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("sums positive and negative modifiers", func(t *testing.T) {
		total, err := agg.Aggregate(NewModifierSet(map[string]int{
			"Strength": 5,
			"fatigued": -2,
			"blessed":  3,
		}))
		require.NoError(t, err)
		assert.Equal(t, 6, total)
	})

	t.Run("order of entries does not affect the sum", func(t *testing.T) {
		// Map iteration order varies; repeated aggregation must not.
		mods := NewModifierSet(map[string]int{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5})
		first, err := agg.Aggregate(mods)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := agg.Aggregate(mods)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("overflow is surfaced as an internal error", func(t *testing.T) {
		_, err := agg.Aggregate(NewModifierSet(map[string]int{
			"a": math.MaxInt,
			"b": math.MaxInt,
		}))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("underflow is surfaced as an internal error", func(t *testing.T) {
		_, err := agg.Aggregate(NewModifierSet(map[string]int{
			"a": math.MinInt,
			"b": math.MinInt,
		}))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func TestAggregator_AttributeDelta(t *testing.T) {
	t.Run("no table means zero delta", func(t *testing.T) {
		assert.Equal(t, 0, NewAggregator().AttributeDelta("Strength"))
	})

	t.Run("table supplies deltas for mapped attributes only", func(t *testing.T) {
		agg := NewAggregator(WithAttributeTable(AttributeModifierTable{
			"Strength": 2,
			"Agility":  -1,
		}))
		assert.Equal(t, 2, agg.AttributeDelta("Strength"))
		assert.Equal(t, -1, agg.AttributeDelta("Agility"))
		assert.Equal(t, 0, agg.AttributeDelta("Willpower"))
		assert.Equal(t, 0, agg.AttributeDelta(""))
	})
}
