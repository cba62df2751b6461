// Package allocation splits a selected roster into equal-size teams,
// spreading goalkeepers and skill tiers across them.
//
// A draw is a single pass: pad the roster with placeholders, categorize,
// give each team a goalkeeper, anchor each team with a strong player, deal
// the remaining tiers greedily (weakest first) and top up with unused
// placeholders. Randomness comes only from the goalkeeper and tier
// shuffles, which run on a per-draw source seeded from the request.
package allocation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
)

// Default allocation configuration constants.
const (
	DefaultTeamSize      = 5
	DefaultPhantomPrefix = "Fill-in"
)

// Request is one draw: the selected players and the number of teams.
// A nil Seed lets the allocator pick one.
type Request struct {
	Players  []model.Player
	NumTeams int
	Seed     *int64
}

// Result is a completed draw.
type Result struct {
	Teams []model.Team
	// Seed replays this draw when sent back in a Request.
	Seed int64
	// PhantomsInserted is non-zero when placeholders completed the roster.
	PhantomsInserted int
	// PhantomGoalkeepers counts placeholders promoted to goalkeeper.
	PhantomGoalkeepers int
	// TeamsWithoutGoalkeeper counts teams left without a keeper.
	TeamsWithoutGoalkeeper int
}

// Allocator draws balanced teams. It holds no per-draw state and is safe
// for concurrent use.
type Allocator struct {
	teamSize      int
	phantomPrefix string
	seeder        Seeder
	logger        logger.Logger
}

// New creates an Allocator with configuration options.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		teamSize:      DefaultTeamSize,
		phantomPrefix: DefaultPhantomPrefix,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.seeder == nil {
		a.seeder = NewTimeSeeder()
	}
	if a.logger == nil {
		a.logger = logger.Named("allocation")
	}

	return a
}

// TeamSize returns the configured number of players per team.
func (a *Allocator) TeamSize() int { return a.teamSize }

// Allocate runs a draw. Structural problems with the request (no players,
// fewer than two teams, surplus or shortfall) are returned before any team
// is built; otherwise every returned team has exactly TeamSize players.
func (a *Allocator) Allocate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("allocation cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RecordDrawLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()
	metrics.RecordDrawRequest(len(req.Players), req.NumTeams)

	for _, p := range req.Players {
		if !p.Tier.Valid() {
			metrics.RecordDraw(metrics.OutcomeInvalidPlayer)
			return Result{}, fmt.Errorf("%w: %q has %s", model.ErrInvalidPlayer, p.Name, p.Tier)
		}
	}

	padded, phantoms, err := Pad(req.Players, req.NumTeams, a.teamSize, a.phantomPrefix)
	if err != nil {
		metrics.RecordDraw(outcomeOf(err))
		metrics.RecordErrorByComponent("allocation", outcomeOf(err))
		a.logger.Warn(ctx, "draw rejected",
			logger.Int("selected", len(req.Players)),
			logger.Int("teams", req.NumTeams),
			logger.Error(err),
		)
		return Result{}, err
	}

	seed := a.seeder.Seed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	if phantoms > 0 {
		a.logger.Info(ctx, "placeholder players inserted",
			logger.Int("phantoms", phantoms),
			logger.Int("selected", len(req.Players)),
			logger.Int("teams", req.NumTeams),
		)
		metrics.RecordPhantomsInserted(phantoms)
	}

	d := newDraw(padded, req.NumTeams, a.teamSize, rand.New(rand.NewSource(seed))) //nolint:gosec // reproducible draws

	d.goalkeepers()
	d.minimum()
	d.greedy(d.pools.Tier3)
	d.greedy(d.pools.Tier2)
	d.greedy(d.pools.Tier1)
	d.greedy(d.spareKeepers)
	d.complete()

	teams, err := d.result()
	if err != nil {
		metrics.RecordErrorByComponent("allocation", "incomplete")
		a.logger.Error(ctx, "draw left a team incomplete", logger.Int64("seed", seed), logger.Error(err))
		return Result{}, err
	}

	for i := 0; i < d.promoted; i++ {
		metrics.RecordPhantomGoalkeeper()
	}
	for i := 0; i < d.withoutKeeper; i++ {
		metrics.RecordTeamWithoutGoalkeeper()
	}
	spread := model.TierSpread(teams)
	metrics.RecordTierSpread(spread)
	metrics.RecordDraw(metrics.OutcomeOK)

	a.logger.Debug(ctx, "teams drawn",
		logger.Int("teams", len(teams)),
		logger.Int64("seed", seed),
		logger.Int("tierSpread", spread),
		logger.Int("phantomGoalkeepers", d.promoted),
		logger.Int("teamsWithoutGoalkeeper", d.withoutKeeper),
	)

	return Result{
		Teams:                  teams,
		Seed:                   seed,
		PhantomsInserted:       phantoms,
		PhantomGoalkeepers:     d.promoted,
		TeamsWithoutGoalkeeper: d.withoutKeeper,
	}, nil
}

// outcomeOf maps a rejection to its metrics outcome label.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrNoPlayers):
		return metrics.OutcomeNoPlayers
	case errors.Is(err, ErrInvalidTeamCount):
		return metrics.OutcomeInvalidTeams
	case errors.Is(err, ErrSurplus):
		return metrics.OutcomeSurplus
	case errors.Is(err, ErrInsufficientPlayers):
		return metrics.OutcomeInsufficient
	default:
		return "error"
	}
}
