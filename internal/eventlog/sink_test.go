package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratto/EDaemonCore/internal/skilltest"
)

// failingSink always rejects, for exercising fanout abort behavior.
type failingSink struct{ calls int }

func (s *failingSink) LogEvent(context.Context, skilltest.Event) error {
	s.calls++
	return errors.New("sink down")
}

func TestStoreSink(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	sink := NewStoreSink(store)

	ev := testEvent(0, skilltest.SkillRolledPayload{SkillID: "athletics", BaseRoll: 45})
	require.NoError(t, sink.LogEvent(ctx, ev))

	events, err := store.ListByTest(ctx, ev.TestID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
}

func TestFanoutSink(t *testing.T) {
	ctx := context.Background()
	ev := testEvent(0, skilltest.SkillRolledPayload{SkillID: "athletics", BaseRoll: 45})

	t.Run("delivers to every child in order", func(t *testing.T) {
		first := NewInMemoryStore()
		second := NewInMemoryStore()
		fanout := NewFanoutSink(NewStoreSink(first), NewStoreSink(second))

		require.NoError(t, fanout.LogEvent(ctx, ev))

		for _, store := range []*InMemoryStore{first, second} {
			events, err := store.ListByTest(ctx, ev.TestID)
			require.NoError(t, err)
			assert.Len(t, events, 1)
		}
	})

	t.Run("stops at the first failing child", func(t *testing.T) {
		failing := &failingSink{}
		after := NewInMemoryStore()
		fanout := NewFanoutSink(failing, NewStoreSink(after))

		err := fanout.LogEvent(ctx, ev)
		require.Error(t, err)
		assert.Equal(t, 1, failing.calls)

		events, listErr := after.ListByTest(ctx, ev.TestID)
		require.NoError(t, listErr)
		assert.Empty(t, events, "children after the failure must not receive the event")
	})

	t.Run("empty fanout accepts silently", func(t *testing.T) {
		assert.NoError(t, NewFanoutSink().LogEvent(ctx, ev))
	})
}
