package eventlog

import (
	"context"
	"fmt"
	"sync"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// InMemoryStore keeps events in process memory, grouped by test. Used in dev
// mode and tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	byTest map[id.TestID][]skilltest.Event
	all    []skilltest.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byTest: make(map[id.TestID][]skilltest.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event skilltest.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byTest[event.TestID] {
		if existing.Seq == event.Seq {
			return fmt.Errorf("event %s/%d: %w", event.TestID, event.Seq, sentinel.ErrConflict)
		}
	}
	s.byTest[event.TestID] = append(s.byTest[event.TestID], event)
	s.all = append(s.all, event)
	return nil
}

func (s *InMemoryStore) ListByTest(_ context.Context, testID id.TestID) ([]skilltest.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]skilltest.Event{}, s.byTest[testID]...), nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]skilltest.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.all) - limit
	if start < 0 {
		start = 0
	}
	return append([]skilltest.Event{}, s.all[start:]...), nil
}

// Clear empties the store between tests.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byTest = make(map[id.TestID][]skilltest.Event)
	s.all = nil
}
