package drawcli

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/domain/share"
	"github.com/okian/lineup/pkg/logger"
)

// Run loads the roster, draws the teams and writes them to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	roster, err := LoadRoster(ctx, cfg.RosterFile)
	if err != nil {
		return err
	}

	numTeams := cfg.NumTeams
	if numTeams == 0 {
		numTeams = roster.Teams
	}

	logger.Get().Debug(ctx, "roster loaded",
		logger.String("file", cfg.RosterFile),
		logger.Int("players", len(roster.Players)),
		logger.Int("absent", roster.Absent),
		logger.Int("teams", numTeams),
	)

	alloc := allocation.New(
		allocation.WithTeamSize(cfg.TeamSize),
		allocation.WithLogger(logger.Named("draw")),
	)
	res, err := alloc.Allocate(ctx, allocation.Request{
		Players:  roster.Players,
		NumTeams: numTeams,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return err
	}

	if err := WriteTeams(out, res.Teams); err != nil {
		return fmt.Errorf("write teams: %w", err)
	}
	if res.PhantomsInserted > 0 {
		fmt.Fprintf(out, "\n* %d placeholder(s) completed the teams\n", res.PhantomsInserted)
	}
	if res.TeamsWithoutGoalkeeper > 0 {
		fmt.Fprintf(out, "%d team(s) have no goalkeeper\n", res.TeamsWithoutGoalkeeper)
	}
	fmt.Fprintf(out, "\nseed: %d\n", res.Seed)

	if cfg.Share {
		fmt.Fprintf(out, "\n%s\n%s\n", share.Message(res.Teams), share.WhatsAppLink(res.Teams))
	}
	return nil
}
