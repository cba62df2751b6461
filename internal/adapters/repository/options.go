package repository

import "time"

// RosterOption applies a configuration option to the MemoryRoster.
type RosterOption func(*MemoryRoster)

// WithMetricsUpdateInterval sets the interval for background roster gauge updates.
func WithMetricsUpdateInterval(interval time.Duration) RosterOption {
	return func(s *MemoryRoster) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}

// WithIDGenerator replaces the UUID generator used for new players.
func WithIDGenerator(gen func() string) RosterOption {
	return func(s *MemoryRoster) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// DrawOption applies a configuration option to the DrawHistory.
type DrawOption func(*DrawHistory)

// WithCapacity sets how many draws are kept before the oldest is evicted.
func WithCapacity(n int) DrawOption {
	return func(h *DrawHistory) {
		if n > 0 {
			h.capacity = n
		}
	}
}
