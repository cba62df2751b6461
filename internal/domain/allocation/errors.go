package allocation

import (
	"errors"
	"fmt"
)

// Sentinel kinds for allocation errors. The typed errors below match them
// through errors.Is.
var (
	ErrNoPlayers           = errors.New("no players selected")
	ErrInvalidTeamCount    = errors.New("at least two teams are required")
	ErrSurplus             = errors.New("selected players exceed team capacity")
	ErrInsufficientPlayers = errors.New("not enough players to complete the teams")
	ErrIncompleteTeams     = errors.New("allocation left a team incomplete")
)

// SurplusError reports more selected players than the requested teams can
// hold. ExtraTeams is how many more teams would absorb every player.
type SurplusError struct {
	Selected   int
	Capacity   int
	ExtraTeams int
}

func (e *SurplusError) Error() string {
	return fmt.Sprintf("%d players selected but the teams hold %d: add %d more team(s)",
		e.Selected, e.Capacity, e.ExtraTeams)
}

// Is matches ErrSurplus.
func (e *SurplusError) Is(target error) bool { return target == ErrSurplus }

// InsufficientPlayersError reports a shortfall larger than placeholders may
// cover. ExtraTeams is the shortfall expressed in whole teams and MaxTeams
// the largest team count the selected players can still fill.
type InsufficientPlayersError struct {
	Selected   int
	Required   int
	Missing    int
	ExtraTeams int
	MaxTeams   int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("%d players selected but %d are required: %d missing (%d team(s) worth), at most %d team(s) possible",
		e.Selected, e.Required, e.Missing, e.ExtraTeams, e.MaxTeams)
}

// Is matches ErrInsufficientPlayers.
func (e *InsufficientPlayersError) Is(target error) bool { return target == ErrInsufficientPlayers }
