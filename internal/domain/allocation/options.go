package allocation

import (
	"github.com/okian/lineup/pkg/logger"
)

// Option applies a configuration option to the Allocator.
type Option func(*Allocator)

// WithTeamSize sets the number of players per team.
func WithTeamSize(size int) Option {
	return func(a *Allocator) {
		if size > 0 {
			a.teamSize = size
		}
	}
}

// WithPhantomPrefix sets the name prefix of placeholder players.
func WithPhantomPrefix(prefix string) Option {
	return func(a *Allocator) {
		if prefix != "" {
			a.phantomPrefix = prefix
		}
	}
}

// WithSeeder sets the source of seeds for requests that carry none.
func WithSeeder(s Seeder) Option {
	return func(a *Allocator) {
		if s != nil {
			a.seeder = s
		}
	}
}

// WithLogger sets a custom logger for the allocator.
func WithLogger(l logger.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.logger = l
		}
	}
}
