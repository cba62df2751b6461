// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/share"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Service owns the roster, the draw history and the allocator.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster    repository.RosterStore
	draws     repository.DrawStore
	allocator *allocation.Allocator

	// store is the roster supplied through WithRosterStore; the caller owns
	// it. closeRoster releases a roster built by Start.
	store       repository.RosterStore
	closeRoster func() error

	// Configuration
	teamSize      int
	maxTeams      int
	historySize   int
	phantomPrefix string
	seeder        allocation.Seeder
	now           func() time.Time

	started bool
	logger  logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		teamSize:      allocation.DefaultTeamSize,
		maxTeams:      6,
		historySize:   repository.DefaultDrawCapacity,
		phantomPrefix: allocation.DefaultPhantomPrefix,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the stores and the allocator. Calling it twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.roster = s.store
	if s.roster == nil {
		mem := repository.NewMemoryRoster(ctx)
		s.roster = mem
		s.closeRoster = mem.Close
	}
	s.draws = repository.NewDrawHistory(repository.WithCapacity(s.historySize))

	allocOpts := []allocation.Option{
		allocation.WithTeamSize(s.teamSize),
		allocation.WithPhantomPrefix(s.phantomPrefix),
		allocation.WithLogger(s.logger),
	}
	if s.seeder != nil {
		allocOpts = append(allocOpts, allocation.WithSeeder(s.seeder))
	}
	s.allocator = allocation.New(allocOpts...)

	s.started = true
	s.logger.Info(ctx, "lineup service started",
		logger.Int("teamSize", s.teamSize),
		logger.Int("maxTeams", s.maxTeams),
		logger.Int("drawHistory", s.historySize),
	)

	return nil
}

// Stop releases background resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.closeRoster != nil {
		_ = s.closeRoster()
		s.closeRoster = nil
	}

	s.started = false
	s.logger.Info(context.Background(), "lineup service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// CreatePlayer registers a player and returns it with its new ID.
func (s *Service) CreatePlayer(ctx context.Context, p model.Player) (model.Player, error) {
	if err := s.ready(); err != nil {
		return model.Player{}, err
	}
	created, err := s.roster.Create(ctx, p)
	if err != nil {
		return model.Player{}, err
	}
	s.logger.Debug(ctx, "player created",
		logger.String("id", created.ID),
		logger.String("tier", created.Tier.String()),
		logger.Bool("goalkeeper", created.Goalkeeper),
	)
	return created, nil
}

// GetPlayer returns a registered player.
func (s *Service) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	if err := s.ready(); err != nil {
		return model.Player{}, err
	}
	return s.roster.Get(ctx, id)
}

// UpdatePlayer replaces the player stored under id.
func (s *Service) UpdatePlayer(ctx context.Context, id string, p model.Player) (model.Player, error) {
	if err := s.ready(); err != nil {
		return model.Player{}, err
	}
	p.ID = id
	return s.roster.Update(ctx, p)
}

// DeletePlayer removes a player from the roster. Past draws keep their copy.
func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.roster.Delete(ctx, id)
}

// ListPlayers returns the roster, goalkeepers first.
func (s *Service) ListPlayers(ctx context.Context) ([]model.Player, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.roster.List(ctx), nil
}

// Draw splits the selected players into teams and keeps the result in the
// draw history. Duplicate IDs in the selection count once.
func (s *Service) Draw(ctx context.Context, req types.DrawRequest) (model.Draw, error) {
	if err := s.ready(); err != nil {
		return model.Draw{}, err
	}

	if req.NumTeams > s.maxTeams {
		metrics.RecordDraw(metrics.OutcomeInvalidTeams)
		return model.Draw{}, fmt.Errorf("%w: %d requested, at most %d", ErrTooManyTeams, req.NumTeams, s.maxTeams)
	}

	players, err := s.roster.GetMany(ctx, lo.Uniq(req.PlayerIDs))
	if err != nil {
		metrics.RecordDraw(metrics.OutcomeUnknownID)
		return model.Draw{}, err
	}

	res, err := s.allocator.Allocate(ctx, allocation.Request{
		Players:  players,
		NumTeams: req.NumTeams,
		Seed:     req.Seed,
	})
	if err != nil {
		return model.Draw{}, err
	}

	d := model.Draw{
		ID:                     uuid.NewString(),
		CreatedAt:              s.now().UTC(),
		Seed:                   res.Seed,
		NumTeams:               req.NumTeams,
		PhantomsInserted:       res.PhantomsInserted,
		PhantomGoalkeepers:     res.PhantomGoalkeepers,
		TeamsWithoutGoalkeeper: res.TeamsWithoutGoalkeeper,
		TierSpread:             model.TierSpread(res.Teams),
		Teams:                  res.Teams,
	}
	if err := s.draws.Save(ctx, d); err != nil {
		return model.Draw{}, fmt.Errorf("save draw: %w", err)
	}

	s.logger.Info(ctx, "draw completed",
		logger.String("draw", d.ID),
		logger.Int("players", len(players)),
		logger.Int("teams", d.NumTeams),
		logger.Int("phantoms", d.PhantomsInserted),
		logger.Int64("seed", d.Seed),
	)
	return d, nil
}

// GetDraw returns a draw from history.
func (s *Service) GetDraw(ctx context.Context, id string) (model.Draw, error) {
	if err := s.ready(); err != nil {
		return model.Draw{}, err
	}
	return s.draws.Get(ctx, id)
}

// ShareDraw renders a stored draw as a chat message and WhatsApp link.
func (s *Service) ShareDraw(ctx context.Context, id string) (types.Share, error) {
	d, err := s.GetDraw(ctx, id)
	if err != nil {
		return types.Share{}, err
	}
	return types.Share{
		Message: share.Message(d.Teams),
		Link:    share.WhatsAppLink(d.Teams),
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.Stats{
		Started:     s.started,
		TeamSize:    s.teamSize,
		MaxTeams:    s.maxTeams,
		DrawHistory: s.historySize,
	}

	if s.started {
		ctx := context.Background()
		players := s.roster.List(ctx)
		stats.Players = len(players)
		stats.Goalkeepers = lo.CountBy(players, func(p model.Player) bool { return p.Goalkeeper })
		stats.Draws = s.draws.Len()

		metrics.UpdateRosterSize(stats.Players, stats.Goalkeepers)
		metrics.UpdateDrawHistorySize(stats.Draws)
	}

	return stats
}
