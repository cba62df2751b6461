package model

import "time"

// Draw is a completed allocation as kept in history and returned to clients.
type Draw struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	// Seed replays the draw for the same selection.
	Seed                   int64  `json:"seed"`
	NumTeams               int    `json:"num_teams"`
	PhantomsInserted       int    `json:"phantoms_inserted"`
	PhantomGoalkeepers     int    `json:"phantom_goalkeepers"`
	TeamsWithoutGoalkeeper int    `json:"teams_without_goalkeeper"`
	TierSpread             int    `json:"tier_spread"`
	Teams                  []Team `json:"teams"`
}
