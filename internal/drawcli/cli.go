// Package drawcli draws teams offline from a YAML roster file.
package drawcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/okian/lineup/internal/domain/allocation"
)

// ErrHelp is returned by ParseFlags when -help was given.
var ErrHelp = errors.New("help requested")

// ParseFlags reads the command line into a Config.
func ParseFlags(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	var seed int64
	var help bool

	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { ShowHelp(stderr) }
	fs.StringVar(&cfg.RosterFile, "roster", "roster.yaml", "YAML roster file")
	fs.IntVar(&cfg.NumTeams, "teams", 0, "number of teams (default: roster file's teams key)")
	fs.IntVar(&cfg.TeamSize, "size", allocation.DefaultTeamSize, "players per team")
	fs.Int64Var(&seed, "seed", 0, "replay a draw with this seed")
	fs.BoolVar(&cfg.Share, "share", false, "print the WhatsApp message and link")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&help, "help", false, "show this help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}
	if help {
		ShowHelp(stderr)
		return nil, ErrHelp
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = &seed
		}
	})
	return cfg, nil
}

// ShowHelp prints usage information for the draw tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Lineup Draw Tool
================

Draws balanced futsal teams from a YAML roster without running the server.

Usage:
  go run ./cmd/draw [options]

Options:
  -roster string
        YAML roster file (default "roster.yaml")
  -teams int
        Number of teams (default: the roster file's teams key)
  -size int
        Players per team (default 5)
  -seed int
        Replay a previous draw
  -share
        Also print the WhatsApp message and link
  -verbose
        Enable debug logging
  -help
        Show this help message

Roster file:
  teams: 4
  players:
    - name: Ana
      tier: 1          # 1 strongest, 3 weakest
      goalkeeper: true
    - name: Bia
      tier: 2
      absent: true     # sits out this draw

Examples:
  go run ./cmd/draw -roster friday.yaml -teams 4
  go run ./cmd/draw -roster friday.yaml -seed 1718 -share
`)
}
