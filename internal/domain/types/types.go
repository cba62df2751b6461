// Package types contains request and response shapes shared by the service
// and its adapters.
package types

// DrawRequest selects registered players by ID and asks for NumTeams teams.
// A nil Seed draws a fresh one.
type DrawRequest struct {
	PlayerIDs []string `json:"player_ids"`
	NumTeams  int      `json:"num_teams"`
	Seed      *int64   `json:"seed,omitempty"`
}

// Share is a draw rendered for a chat app.
type Share struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Stats is a point-in-time view of the service.
type Stats struct {
	Started     bool `json:"started"`
	TeamSize    int  `json:"team_size"`
	MaxTeams    int  `json:"max_teams"`
	Players     int  `json:"players"`
	Goalkeepers int  `json:"goalkeepers"`
	Draws       int  `json:"draws"`
	DrawHistory int  `json:"draw_history"`
}
