package service

import (
	"time"

	"github.com/okian/lineup/internal/adapters/repository"
	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTeamSize sets the number of players per team.
func WithTeamSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.teamSize = size
		}
	}
}

// WithMaxTeams caps the number of teams a single draw may ask for.
func WithMaxTeams(n int) Option {
	return func(s *Service) {
		if n >= 2 {
			s.maxTeams = n
		}
	}
}

// WithDrawHistorySize sets how many draws are kept for later lookup.
func WithDrawHistorySize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historySize = n
		}
	}
}

// WithPhantomPrefix sets the name prefix of placeholder players.
func WithPhantomPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.phantomPrefix = prefix
		}
	}
}

// WithSeeder sets the seed source for draws that carry no seed.
func WithSeeder(seeder allocation.Seeder) Option {
	return func(s *Service) {
		if seeder != nil {
			s.seeder = seeder
		}
	}
}

// WithClock replaces the clock used to stamp draws.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRosterStore makes the service keep players in store instead of a
// private in-memory roster. Stop leaves store open.
func WithRosterStore(store repository.RosterStore) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}
