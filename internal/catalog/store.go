package catalog

import (
	"context"

	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// Store abstracts skill catalog persistence. Implementations must be safe for
// concurrent use; the engine may resolve skills from many invocations at once.
//
// GetByID returns sentinel.ErrNotFound (possibly wrapped) when the skill does
// not exist.
type Store interface {
	GetByID(ctx context.Context, skillID id.SkillID) (Skill, error)
	List(ctx context.Context) ([]Skill, error)
	Put(ctx context.Context, skill Skill) error
}
