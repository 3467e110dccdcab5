package eventlog

import (
	"context"
	"log/slog"

	"github.com/ratto/EDaemonCore/internal/skilltest"
)

// ChannelSink hands events to a background Worker through a buffered channel.
// LogEvent blocks only when the buffer is full, which keeps slow storage off
// the skill-test hot path at the cost of fail-open delivery: use the
// synchronous StoreSink where events must not be lost.
type ChannelSink struct {
	inbox chan<- skilltest.Event
}

func (s *ChannelSink) LogEvent(ctx context.Context, event skilltest.Event) error {
	select {
	case s.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Worker consumes events from a channel and persists them. It keeps
// background processing testable without wiring queue implementations.
type Worker struct {
	store  Store
	inbox  chan skilltest.Event
	logger *slog.Logger
}

// NewWorker builds a Worker with the given buffer size and returns it with
// the ChannelSink that feeds it.
func NewWorker(store Store, buffer int, logger *slog.Logger) (*Worker, *ChannelSink) {
	inbox := make(chan skilltest.Event, buffer)
	return &Worker{store: store, inbox: inbox, logger: logger}, &ChannelSink{inbox: inbox}
}

// Run drains the inbox until the context is cancelled. Persistence failures
// are logged and skipped; the producer already considers the event emitted.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.ErrorContext(ctx, "event persistence failed",
						"test_id", event.TestID,
						"seq", event.Seq,
						"error", err,
					)
				}
			}
		}
	}
}
