package skilltest

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies uniformly distributed integers over a closed range.
// Implementations must never fail for any valid range 1 <= min <= max, and
// must be safe for concurrent use when shared across invocations.
type RandomSource interface {
	Next(min, max int) int
}

// SeededSource is a RandomSource backed by a seeded PRNG. Deterministic with
// respect to its seed, which makes dev runs and replays reproducible.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource builds a SeededSource. A zero seed falls back to the clock
// so unseeded processes still vary run to run.
func NewSeededSource(seed int64) *SeededSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Next(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(max-min+1) + min
}

// FixedSource replays a fixed sequence of values, cycling when exhausted.
// Swap it in for the SeededSource to make roll outcomes exact in tests.
type FixedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewFixedSource builds a FixedSource over the given values. At least one
// value is required.
func NewFixedSource(values ...int) *FixedSource {
	if len(values) == 0 {
		panic("skilltest: FixedSource requires at least one value")
	}
	return &FixedSource{values: values}
}

func (s *FixedSource) Next(_, _ int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
