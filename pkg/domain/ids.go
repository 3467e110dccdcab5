// Package domain holds shared domain primitives: typed identifiers that make
// cross-type assignment a compile error, parsed and validated at trust
// boundaries so services never see a malformed ID.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

// CharacterID identifies the character attempting a skill test.
type CharacterID uuid.UUID

// TestID correlates all events produced by one skill-test invocation.
type TestID uuid.UUID

// NewTestID allocates a fresh correlation ID for an invocation.
func NewTestID() TestID {
	return TestID(uuid.New())
}

// ParseCharacterID validates and returns a CharacterID.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseCharacterID(s string) (CharacterID, error) {
	u, err := parseUUID(s, "character id")
	if err != nil {
		return CharacterID{}, err
	}
	return CharacterID(u), nil
}

// ParseTestID validates and returns a TestID.
func ParseTestID(s string) (TestID, error) {
	u, err := parseUUID(s, "test id")
	if err != nil {
		return TestID{}, err
	}
	return TestID(u), nil
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", what)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be the nil UUID", what)
	}
	return u, nil
}

func (id CharacterID) String() string { return uuid.UUID(id).String() }
func (id CharacterID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id TestID) String() string { return uuid.UUID(id).String() }
func (id TestID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// SkillID identifies a skill within the catalog. Unlike the UUID-backed IDs
// above it is a human-readable slug ("athletics", "arcane-lore") because the
// catalog is content-authored, not machine-allocated.
type SkillID string

const maxSkillIDLength = 64

// ParseSkillID validates a catalog slug: non-empty, lowercase, bounded length.
func ParseSkillID(s string) (SkillID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "skill id is required")
	}
	if len(s) > maxSkillIDLength {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "skill id exceeds %d characters", maxSkillIDLength)
	}
	if s != strings.ToLower(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "skill id must be lowercase")
	}
	return SkillID(s), nil
}

func (id SkillID) String() string { return string(id) }
func (id SkillID) IsNil() bool    { return id == "" }
