package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted   = errors.New("service not started")
	ErrTooManyTeams = errors.New("team count above the configured maximum")
)
