package skilltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierSet(t *testing.T) {
	t.Run("construction copies the input map", func(t *testing.T) {
		input := map[string]int{"Strength": 5}
		mods := NewModifierSet(input)

		input["Strength"] = 99
		input["injected"] = 1

		v, ok := mods.Value("Strength")
		assert.True(t, ok)
		assert.Equal(t, 5, v)
		assert.Equal(t, 1, mods.Len())
	})

	t.Run("Values returns a copy", func(t *testing.T) {
		mods := NewModifierSet(map[string]int{"Strength": 5})

		out := mods.Values()
		out["Strength"] = 99

		v, _ := mods.Value("Strength")
		assert.Equal(t, 5, v)
	})

	t.Run("zero value behaves as an empty set", func(t *testing.T) {
		var mods ModifierSet
		assert.Equal(t, 0, mods.Len())
		assert.Empty(t, mods.Values())
		_, ok := mods.Value("anything")
		assert.False(t, ok)
	})
}
