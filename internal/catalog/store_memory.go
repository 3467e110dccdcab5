package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	id "github.com/ratto/EDaemonCore/pkg/domain"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// InMemoryStore keeps the catalog in process memory. Used in dev mode and as
// the backing store for unit tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	skills map[id.SkillID]Skill
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{skills: make(map[id.SkillID]Skill)}
}

func (s *InMemoryStore) GetByID(_ context.Context, skillID id.SkillID) (Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	skill, ok := s.skills[skillID]
	if !ok {
		return Skill{}, fmt.Errorf("skill %q: %w", skillID, sentinel.ErrNotFound)
	}
	return skill, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Skill, 0, len(s.skills))
	for _, skill := range s.skills {
		out = append(out, skill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) Put(_ context.Context, skill Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills[skill.ID] = skill
	return nil
}

// Clear empties the store between tests.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = make(map[id.SkillID]Skill)
}
