package allocation

import (
	"math/rand"
	"sync"
	"time"
)

// Seeder hands out seeds for draws that do not bring their own. Each draw
// runs on its own *rand.Rand built from the seed, so a returned seed replays
// the same draw.
type Seeder interface {
	Seed() int64
}

// SeederFunc adapts a function to Seeder.
type SeederFunc func() int64

// Seed implements Seeder.
func (f SeederFunc) Seed() int64 { return f() }

// FixedSeed returns a Seeder that always yields seed.
func FixedSeed(seed int64) Seeder {
	return SeederFunc(func() int64 { return seed })
}

// lockedSeeder draws seeds from a shared source. *rand.Rand is not safe
// for concurrent use, hence the mutex.
type lockedSeeder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTimeSeeder returns a concurrency-safe Seeder seeded from the clock.
func NewTimeSeeder() Seeder {
	return &lockedSeeder{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // team draws are not security sensitive
	}
}

func (s *lockedSeeder) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}
