package eventlog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
)

func testEvent(seq int, payload skilltest.Payload) skilltest.Event {
	return skilltest.Event{
		ID:         uuid.New(),
		TestID:     id.NewTestID(),
		Seq:        seq,
		OccurredAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Payload:    payload,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	payloads := []skilltest.Payload{
		skilltest.SkillLoadedPayload{SkillID: "athletics", Difficulty: 40},
		skilltest.SkillRolledPayload{SkillID: "athletics", BaseRoll: 45, ModifierTotal: 5, RollValue: 50},
		skilltest.SuccessMarginCalculatedPayload{Margin: -5, Success: false},
	}
	for _, payload := range payloads {
		t.Run(string(payload.Kind()), func(t *testing.T) {
			ev := testEvent(1, payload)

			raw, err := Encode(ev)
			require.NoError(t, err)

			got, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, ev, got)
		})
	}
}

func TestCodec_WireContract(t *testing.T) {
	// Downstream consumers key off these envelope fields; renaming them is a
	// breaking change.
	ev := testEvent(0, skilltest.SkillRolledPayload{SkillID: "athletics", BaseRoll: 45, RollValue: 50})
	raw, err := Encode(ev)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	for _, field := range []string{"id", "test_id", "seq", "occurred_at", "kind", "payload"} {
		assert.Contains(t, envelope, field)
	}

	var kind string
	require.NoError(t, json.Unmarshal(envelope["kind"], &kind))
	assert.Equal(t, "skill_rolled", kind)
}

func TestCodec_Errors(t *testing.T) {
	t.Run("encode rejects unknown payload types", func(t *testing.T) {
		_, err := Encode(skilltest.Event{ID: uuid.New(), TestID: id.NewTestID()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown payload")
	})

	t.Run("decode rejects malformed json", func(t *testing.T) {
		_, err := Decode([]byte("{not json"))
		require.Error(t, err)
	})

	t.Run("decode rejects unknown kinds", func(t *testing.T) {
		ev := testEvent(0, skilltest.SkillLoadedPayload{SkillID: "athletics"})
		raw, err := Encode(ev)
		require.NoError(t, err)

		var envelope map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &envelope))
		envelope["kind"] = json.RawMessage(`"skill_forgotten"`)
		mutated, err := json.Marshal(envelope)
		require.NoError(t, err)

		_, err = Decode(mutated)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown kind")
	})

	t.Run("decode rejects invalid ids", func(t *testing.T) {
		ev := testEvent(0, skilltest.SkillLoadedPayload{SkillID: "athletics"})
		raw, err := Encode(ev)
		require.NoError(t, err)

		var envelope map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &envelope))
		envelope["test_id"] = json.RawMessage(`"not-a-uuid"`)
		mutated, err := json.Marshal(envelope)
		require.NoError(t, err)

		_, err = Decode(mutated)
		require.Error(t, err)
	})
}
