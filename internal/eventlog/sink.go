package eventlog

import (
	"context"

	"github.com/ratto/EDaemonCore/internal/skilltest"
)

// StoreSink adapts a Store to the engine's EventSink port. Appends are
// synchronous and fail-closed: if the store cannot persist the event, the
// invocation that produced it fails.
type StoreSink struct {
	store Store
}

func NewStoreSink(store Store) *StoreSink {
	return &StoreSink{store: store}
}

func (s *StoreSink) LogEvent(ctx context.Context, event skilltest.Event) error {
	return s.store.Append(ctx, event)
}

// FanoutSink forwards each event to every child sink in order, stopping at
// the first failure so the engine sees it.
type FanoutSink struct {
	sinks []skilltest.EventSink
}

func NewFanoutSink(sinks ...skilltest.EventSink) *FanoutSink {
	return &FanoutSink{sinks: sinks}
}

func (s *FanoutSink) LogEvent(ctx context.Context, event skilltest.Event) error {
	for _, sink := range s.sinks {
		if err := sink.LogEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
