package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCharacterID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseCharacterID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseCharacterID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseCharacterID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, CharacterID(validUUID), id)
	})

	t.Run("test ID parses the same way", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseTestID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, TestID(validUUID), id)
	})
}

func TestNewTestID(t *testing.T) {
	a := NewTestID()
	b := NewTestID()
	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
}

func TestParseSkillID(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseSkillID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects uppercase slugs", func(t *testing.T) {
		_, err := ParseSkillID("Athletics")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects oversized slugs", func(t *testing.T) {
		long := make([]byte, maxSkillIDLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := ParseSkillID(string(long))
		require.Error(t, err)
	})

	t.Run("accepts a catalog slug", func(t *testing.T) {
		id, err := ParseSkillID("arcane-lore")
		require.NoError(t, err)
		assert.Equal(t, SkillID("arcane-lore"), id)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety.
// This is a compile-time check - if this compiles, the invariant holds.
func TestTypeDistinction(t *testing.T) {
	characterID := CharacterID(uuid.New())
	testID := TestID(uuid.New())

	// These would fail to compile if types were interchangeable:
	// var _ CharacterID = testID   // compile error
	// var _ TestID = characterID   // compile error

	// Verify they're distinct at runtime too
	assert.NotEqual(t, uuid.UUID(characterID), uuid.UUID(testID))
}
