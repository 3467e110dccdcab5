package eventlog

import (
	"context"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// Store persists recorded domain events for later replay of a test's decision
// trace. Swap with concrete storage without touching the engine.
//
// The log is append-only: Append returns sentinel.ErrConflict (wrapped) when
// a sequence position is already taken for the test.
type Store interface {
	Append(ctx context.Context, event skilltest.Event) error
	ListByTest(ctx context.Context, testID id.TestID) ([]skilltest.Event, error)
	ListRecent(ctx context.Context, limit int) ([]skilltest.Event, error)
}
