// Package eventlog provides sink adapters for the engine's domain events:
// in-memory capture, a PostgreSQL outbox, a Kafka publisher, and a
// channel-fed background worker. The engine only sees the EventSink port;
// everything here is swappable infrastructure.
package eventlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// wireEvent is the JSON envelope written to the outbox and to Kafka. Field
// names are part of the wire contract with downstream consumers.
type wireEvent struct {
	ID         string          `json:"id"`
	TestID     string          `json:"test_id"`
	Seq        int             `json:"seq"`
	OccurredAt time.Time       `json:"occurred_at"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
}

type wireSkillLoaded struct {
	SkillID    string `json:"skill_id"`
	Difficulty int    `json:"difficulty"`
}

type wireSkillRolled struct {
	SkillID       string `json:"skill_id"`
	BaseRoll      int    `json:"base_roll"`
	ModifierTotal int    `json:"modifier_total"`
	RollValue     int    `json:"roll_value"`
}

type wireMarginCalculated struct {
	Margin  int  `json:"margin"`
	Success bool `json:"success"`
}

// Encode serializes a domain event into its wire envelope.
func Encode(ev skilltest.Event) ([]byte, error) {
	var payload any
	switch p := ev.Payload.(type) {
	case skilltest.SkillLoadedPayload:
		payload = wireSkillLoaded{SkillID: p.SkillID.String(), Difficulty: p.Difficulty}
	case skilltest.SkillRolledPayload:
		payload = wireSkillRolled{
			SkillID:       p.SkillID.String(),
			BaseRoll:      p.BaseRoll,
			ModifierTotal: p.ModifierTotal,
			RollValue:     p.RollValue,
		}
	case skilltest.SuccessMarginCalculatedPayload:
		payload = wireMarginCalculated{Margin: p.Margin, Success: p.Success}
	default:
		return nil, fmt.Errorf("encode event: unknown payload %T", ev.Payload)
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}
	return json.Marshal(wireEvent{
		ID:         ev.ID.String(),
		TestID:     ev.TestID.String(),
		Seq:        ev.Seq,
		OccurredAt: ev.OccurredAt,
		Kind:       string(ev.Kind()),
		Payload:    rawPayload,
	})
}

// Decode deserializes a wire envelope back into a domain event.
func Decode(raw []byte) (skilltest.Event, error) {
	var we wireEvent
	if err := json.Unmarshal(raw, &we); err != nil {
		return skilltest.Event{}, fmt.Errorf("decode event: %w", err)
	}

	eventID, err := uuid.Parse(we.ID)
	if err != nil {
		return skilltest.Event{}, fmt.Errorf("decode event id: %w", err)
	}
	testID, err := id.ParseTestID(we.TestID)
	if err != nil {
		return skilltest.Event{}, fmt.Errorf("decode test id: %w", err)
	}

	var payload skilltest.Payload
	switch skilltest.EventKind(we.Kind) {
	case skilltest.EventSkillLoaded:
		var p wireSkillLoaded
		if err := json.Unmarshal(we.Payload, &p); err != nil {
			return skilltest.Event{}, fmt.Errorf("decode payload: %w", err)
		}
		payload = skilltest.SkillLoadedPayload{SkillID: id.SkillID(p.SkillID), Difficulty: p.Difficulty}
	case skilltest.EventSkillRolled:
		var p wireSkillRolled
		if err := json.Unmarshal(we.Payload, &p); err != nil {
			return skilltest.Event{}, fmt.Errorf("decode payload: %w", err)
		}
		payload = skilltest.SkillRolledPayload{
			SkillID:       id.SkillID(p.SkillID),
			BaseRoll:      p.BaseRoll,
			ModifierTotal: p.ModifierTotal,
			RollValue:     p.RollValue,
		}
	case skilltest.EventSuccessMarginCalculated:
		var p wireMarginCalculated
		if err := json.Unmarshal(we.Payload, &p); err != nil {
			return skilltest.Event{}, fmt.Errorf("decode payload: %w", err)
		}
		payload = skilltest.SuccessMarginCalculatedPayload{Margin: p.Margin, Success: p.Success}
	default:
		return skilltest.Event{}, fmt.Errorf("decode event: unknown kind %q", we.Kind)
	}

	return skilltest.Event{
		ID:         eventID,
		TestID:     testID,
		Seq:        we.Seq,
		OccurredAt: we.OccurredAt,
		Payload:    payload,
	}, nil
}
