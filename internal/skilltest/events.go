package skilltest

import (
	"time"

	"github.com/google/uuid"

	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// EventKind tags the payload variant carried by an Event.
type EventKind string

const (
	EventSkillLoaded             EventKind = "skill_loaded"
	EventSkillRolled             EventKind = "skill_rolled"
	EventSuccessMarginCalculated EventKind = "success_margin_calculated"
)

// Payload is the kind-specific body of a domain event. The closed set of
// implementations below keeps the union exhaustively matchable on Kind.
type Payload interface {
	Kind() EventKind
}

// SkillLoadedPayload records that the catalog resolved a skill for this test.
type SkillLoadedPayload struct {
	SkillID    id.SkillID
	Difficulty int
}

func (SkillLoadedPayload) Kind() EventKind { return EventSkillLoaded }

// SkillRolledPayload records the completed roll stage.
type SkillRolledPayload struct {
	SkillID       id.SkillID
	BaseRoll      int
	ModifierTotal int
	RollValue     int
}

func (SkillRolledPayload) Kind() EventKind { return EventSkillRolled }

// SuccessMarginCalculatedPayload records the completed margin stage.
type SuccessMarginCalculatedPayload struct {
	Margin  int
	Success bool
}

func (SuccessMarginCalculatedPayload) Kind() EventKind { return EventSuccessMarginCalculated }

// Event is one immutable record of a completed calculation step. The envelope
// fields are stamped by the Recorder; TestID groups all events of a single
// Execute invocation and Seq orders them within it.
//
// Events are never mutated or removed once recorded. They live only for the
// invocation unless an EventSink persists them.
type Event struct {
	ID         uuid.UUID
	TestID     id.TestID
	Seq        int
	OccurredAt time.Time
	Payload    Payload
}

// Kind returns the payload's variant tag.
func (e Event) Kind() EventKind {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.Kind()
}
