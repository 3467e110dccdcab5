package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// PostgresStore implements Store using a transactional-outbox-style table.
// Each event row carries the full wire envelope; the outbox worker (or a
// Kafka sink) is responsible for downstream delivery.
//
// Expected schema:
//
//	CREATE TABLE skill_test_events (
//	    id          UUID PRIMARY KEY,
//	    test_id     UUID NOT NULL,
//	    seq         INTEGER NOT NULL,
//	    kind        TEXT NOT NULL,
//	    occurred_at TIMESTAMPTZ NOT NULL,
//	    envelope    JSONB NOT NULL,
//	    UNIQUE (test_id, seq)
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a PostgreSQL-backed event store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event skilltest.Event) error {
	envelope, err := Encode(event)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO skill_test_events (id, test_id, seq, kind, occurred_at, envelope)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query,
		event.ID.String(), event.TestID.String(), event.Seq,
		string(event.Kind()), event.OccurredAt, envelope)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("event %s/%d: %w", event.TestID, event.Seq, sentinel.ErrConflict)
		}
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByTest(ctx context.Context, testID id.TestID) ([]skilltest.Event, error) {
	query := `
		SELECT envelope
		FROM skill_test_events
		WHERE test_id = $1
		ORDER BY seq
	`
	return s.queryEvents(ctx, query, testID.String())
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]skilltest.Event, error) {
	query := `
		SELECT envelope
		FROM (
			SELECT envelope, occurred_at, seq
			FROM skill_test_events
			ORDER BY occurred_at DESC, seq DESC
			LIMIT $1
		) recent
		ORDER BY occurred_at, seq
	`
	return s.queryEvents(ctx, query, limit)
}

func (s *PostgresStore) queryEvents(ctx context.Context, query string, args ...any) ([]skilltest.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []skilltest.Event
	for rows.Next() {
		var envelope []byte
		if err := rows.Scan(&envelope); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event, err := Decode(envelope)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
