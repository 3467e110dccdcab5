package skilltest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/ratto/EDaemonCore/pkg/domain"
)

func TestRecorder(t *testing.T) {
	testID := id.NewTestID()
	captureTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	newRecorder := func() *Recorder {
		return NewRecorder(testID, WithRecorderClock(func() time.Time { return captureTime }))
	}

	t.Run("stamps correlation id, sequence, and capture time", func(t *testing.T) {
		rec := newRecorder()

		first := rec.Record(SkillRolledPayload{SkillID: "athletics", BaseRoll: 45, RollValue: 50})
		second := rec.Record(SuccessMarginCalculatedPayload{Margin: 10, Success: true})

		assert.Equal(t, testID, first.TestID)
		assert.Equal(t, testID, second.TestID)
		assert.Equal(t, 0, first.Seq)
		assert.Equal(t, 1, second.Seq)
		assert.Equal(t, captureTime, first.OccurredAt)
		assert.NotEqual(t, uuid.Nil, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 2, rec.Len())
	})

	t.Run("snapshot preserves append order", func(t *testing.T) {
		rec := newRecorder()
		rec.Record(SkillLoadedPayload{SkillID: "athletics", Difficulty: 40})
		rec.Record(SkillRolledPayload{SkillID: "athletics", BaseRoll: 45, RollValue: 50})
		rec.Record(SuccessMarginCalculatedPayload{Margin: 10, Success: true})

		events := rec.Snapshot()
		require.Len(t, events, 3)
		assert.Equal(t, EventSkillLoaded, events[0].Kind())
		assert.Equal(t, EventSkillRolled, events[1].Kind())
		assert.Equal(t, EventSuccessMarginCalculated, events[2].Kind())
	})

	t.Run("snapshot is a copy, not a view", func(t *testing.T) {
		rec := newRecorder()
		rec.Record(SkillRolledPayload{SkillID: "athletics"})

		events := rec.Snapshot()
		events[0] = Event{}
		rec.Record(SuccessMarginCalculatedPayload{})

		again := rec.Snapshot()
		require.Len(t, again, 2)
		assert.Equal(t, EventSkillRolled, again[0].Kind())
	})

	t.Run("empty recorder snapshots to an empty slice", func(t *testing.T) {
		rec := newRecorder()
		assert.Empty(t, rec.Snapshot())
		assert.Equal(t, 0, rec.Len())
	})
}
