package skilltest

import (
	"time"

	"github.com/google/uuid"

	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// Recorder is the per-invocation, append-only event log. It stamps each
// recorded payload with the invocation's correlation ID, a monotonically
// increasing sequence position, and a capture timestamp.
//
// One Recorder serves exactly one Execute invocation on a single goroutine;
// it is not shared and therefore takes no locks. Events are never reordered,
// deduplicated, or removed once appended.
type Recorder struct {
	testID id.TestID
	clock  func() time.Time
	events []Event
	seq    int
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithRecorderClock sets the capture-timestamp clock for testability.
func WithRecorderClock(clock func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// NewRecorder builds an empty Recorder for one invocation.
func NewRecorder(testID id.TestID, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		testID: testID,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends the payload with the next sequence position and returns the
// stamped event.
func (r *Recorder) Record(p Payload) Event {
	ev := Event{
		ID:         uuid.New(),
		TestID:     r.testID,
		Seq:        r.seq,
		OccurredAt: r.clock(),
		Payload:    p,
	}
	r.events = append(r.events, ev)
	r.seq++
	return ev
}

// Snapshot returns the ordered event sequence as a copy. The underlying
// buffer is not cleared and callers cannot mutate it through the result.
func (r *Recorder) Snapshot() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }
