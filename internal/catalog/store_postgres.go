package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "github.com/ratto/EDaemonCore/pkg/domain"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// PostgresStore persists the skill catalog in PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE skills (
//	    id          TEXT PRIMARY KEY,
//	    name        TEXT NOT NULL,
//	    difficulty  INTEGER NOT NULL,
//	    attribute   TEXT NOT NULL DEFAULT '',
//	    description TEXT NOT NULL DEFAULT ''
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed skill catalog.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetByID(ctx context.Context, skillID id.SkillID) (Skill, error) {
	query := `
		SELECT id, name, difficulty, attribute, description
		FROM skills
		WHERE id = $1
	`
	var skill Skill
	err := s.db.QueryRowContext(ctx, query, skillID.String()).Scan(
		&skill.ID, &skill.Name, &skill.Difficulty, &skill.Attribute, &skill.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Skill{}, fmt.Errorf("skill %q: %w", skillID, sentinel.ErrNotFound)
	}
	if err != nil {
		return Skill{}, fmt.Errorf("get skill: %w", err)
	}
	return skill, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Skill, error) {
	query := `
		SELECT id, name, difficulty, attribute, description
		FROM skills
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var skill Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Difficulty, &skill.Attribute, &skill.Description); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

func (s *PostgresStore) Put(ctx context.Context, skill Skill) error {
	query := `
		INSERT INTO skills (id, name, difficulty, attribute, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			difficulty = EXCLUDED.difficulty,
			attribute = EXCLUDED.attribute,
			description = EXCLUDED.description
	`
	_, err := s.db.ExecContext(ctx, query,
		skill.ID.String(), skill.Name, skill.Difficulty, skill.Attribute, skill.Description)
	if err != nil {
		return fmt.Errorf("put skill: %w", err)
	}
	return nil
}
