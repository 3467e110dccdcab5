package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	id "github.com/ratto/EDaemonCore/pkg/domain"
)

// CachedStore fronts another Store with a Redis read-through cache. Cache
// failures degrade to the underlying store; they never fail a lookup.
//
// List and Put always hit the underlying store; Put invalidates the cached
// entry so readers cannot observe a stale difficulty after a content update.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// CachedStoreOption configures a CachedStore.
type CachedStoreOption func(*CachedStore)

// WithCacheLogger sets a logger for cache degradation warnings.
func WithCacheLogger(logger *slog.Logger) CachedStoreOption {
	return func(s *CachedStore) {
		s.logger = logger
	}
}

// NewCachedStore wraps next with a Redis cache using the given TTL.
func NewCachedStore(next Store, client *redis.Client, ttl time.Duration, opts ...CachedStoreOption) *CachedStore {
	s := &CachedStore{next: next, client: client, ttl: ttl}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cacheKey(skillID id.SkillID) string {
	return "skill:" + skillID.String()
}

func (s *CachedStore) GetByID(ctx context.Context, skillID id.SkillID) (Skill, error) {
	raw, err := s.client.Get(ctx, cacheKey(skillID)).Bytes()
	if err == nil {
		var skill Skill
		if err := json.Unmarshal(raw, &skill); err == nil {
			return skill, nil
		}
		// Corrupt entry: fall through to the source and overwrite below.
	} else if !errors.Is(err, redis.Nil) && s.logger != nil {
		s.logger.WarnContext(ctx, "skill cache read failed", "skill_id", skillID, "error", err)
	}

	skill, err := s.next.GetByID(ctx, skillID)
	if err != nil {
		return Skill{}, err
	}
	s.put(ctx, skill)
	return skill, nil
}

func (s *CachedStore) List(ctx context.Context) ([]Skill, error) {
	return s.next.List(ctx)
}

func (s *CachedStore) Put(ctx context.Context, skill Skill) error {
	if err := s.next.Put(ctx, skill); err != nil {
		return err
	}
	if err := s.client.Del(ctx, cacheKey(skill.ID)).Err(); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "skill cache invalidation failed", "skill_id", skill.ID, "error", err)
	}
	return nil
}

// Warm preloads every catalog entry into the cache. Used at startup so the
// first wave of skill tests does not stampede the backing store.
func (s *CachedStore) Warm(ctx context.Context) error {
	skills, err := s.next.List(ctx)
	if err != nil {
		return fmt.Errorf("warm catalog cache: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, skill := range skills {
		g.Go(func() error {
			s.put(ctx, skill)
			return nil
		})
	}
	return g.Wait()
}

func (s *CachedStore) put(ctx context.Context, skill Skill) {
	raw, err := json.Marshal(skill)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, cacheKey(skill.ID), raw, s.ttl).Err(); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "skill cache write failed", "skill_id", skill.ID, "error", err)
	}
}
