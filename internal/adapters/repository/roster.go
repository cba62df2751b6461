package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/metrics"
)

// MemoryRoster is an in-memory RosterStore safe for concurrent use.
type MemoryRoster struct {
	mu      sync.RWMutex
	players map[string]model.Player
	newID   func() string

	metricsUpdateInterval time.Duration
	wg                    sync.WaitGroup
	stopChan              chan struct{}
}

// NewMemoryRoster constructs an empty roster and starts its metrics updater,
// which runs until ctx is done or Close is called.
func NewMemoryRoster(ctx context.Context, opts ...RosterOption) *MemoryRoster {
	s := &MemoryRoster{
		players:               make(map[string]model.Player),
		newID:                 uuid.NewString,
		metricsUpdateInterval: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.stopChan = make(chan struct{})
	s.startMetricsUpdater(ctx)

	return s
}

// Close stops the background metrics updater.
func (s *MemoryRoster) Close() error {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
	s.wg.Wait()
	return nil
}

// Create implements RosterStore.Create.
func (s *MemoryRoster) Create(ctx context.Context, p model.Player) (model.Player, error) {
	p = normalize(p)
	if err := p.Validate(); err != nil {
		metrics.RecordErrorByComponent("repository", "invalid_player")
		return model.Player{}, err
	}

	s.mu.Lock()
	p.ID = s.newID()
	if _, exists := s.players[p.ID]; exists {
		s.mu.Unlock()
		return model.Player{}, fmt.Errorf("player %s: %w", p.ID, ErrDuplicate)
	}
	s.players[p.ID] = p
	s.mu.Unlock()

	metrics.RecordRosterOperation("create")
	return p, nil
}

// Get implements RosterStore.Get.
func (s *MemoryRoster) Get(ctx context.Context, id string) (model.Player, error) {
	s.mu.RLock()
	p, ok := s.players[id]
	s.mu.RUnlock()

	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Player{}, fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// GetMany implements RosterStore.GetMany.
func (s *MemoryRoster) GetMany(ctx context.Context, ids []string) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := s.players[id]
		if !ok {
			metrics.RecordErrorByComponent("repository", "not_found")
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		out = append(out, p)
	}
	return out, nil
}

// Update implements RosterStore.Update.
func (s *MemoryRoster) Update(ctx context.Context, p model.Player) (model.Player, error) {
	p = normalize(p)
	if err := p.Validate(); err != nil {
		metrics.RecordErrorByComponent("repository", "invalid_player")
		return model.Player{}, err
	}

	s.mu.Lock()
	if _, ok := s.players[p.ID]; !ok {
		s.mu.Unlock()
		metrics.RecordErrorByComponent("repository", "not_found")
		return model.Player{}, fmt.Errorf("player %s: %w", p.ID, ErrNotFound)
	}
	s.players[p.ID] = p
	s.mu.Unlock()

	metrics.RecordRosterOperation("update")
	return p, nil
}

// Delete implements RosterStore.Delete.
func (s *MemoryRoster) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.players[id]
	delete(s.players, id)
	s.mu.Unlock()

	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return fmt.Errorf("player %s: %w", id, ErrNotFound)
	}
	metrics.RecordRosterOperation("delete")
	return nil
}

// List implements RosterStore.List.
func (s *MemoryRoster) List(ctx context.Context) []model.Player {
	s.mu.RLock()
	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sortRoster(out)
	return out
}

// Count implements RosterStore.Count.
func (s *MemoryRoster) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// sortRoster orders goalkeepers first, then stronger tiers, then by name.
// ID breaks remaining ties so the order is stable across calls.
func sortRoster(players []model.Player) {
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Goalkeeper != b.Goalkeeper {
			return a.Goalkeeper
		}
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}

// normalize trims the name and clears fields owned by the allocator.
func normalize(p model.Player) model.Player {
	p.Name = strings.TrimSpace(p.Name)
	p.Phantom = false
	return p
}

func (s *MemoryRoster) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

func (s *MemoryRoster) updateMetrics() {
	s.mu.RLock()
	total, keepers := len(s.players), 0
	for _, p := range s.players {
		if p.Goalkeeper {
			keepers++
		}
	}
	s.mu.RUnlock()

	metrics.UpdateRosterSize(total, keepers)
}
