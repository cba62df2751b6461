package drawcli

// Config holds the options of one offline draw.
type Config struct {
	RosterFile string // YAML roster path
	NumTeams   int    // 0 takes the roster file's teams key
	TeamSize   int    // players per team
	Seed       *int64 // nil draws a fresh seed
	Share      bool   // also print the WhatsApp message and link
	Verbose    bool   // enable debug logging
}

// rosterEntry is a player line of the roster file. Absent players stay in
// the file but sit out the draw.
type rosterEntry struct {
	Name       string `koanf:"name"`
	Tier       int    `koanf:"tier"`
	Goalkeeper bool   `koanf:"goalkeeper"`
	Photo      string `koanf:"photo"`
	Absent     bool   `koanf:"absent"`
}
