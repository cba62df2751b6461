package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/drawcli"
	"github.com/okian/lineup/pkg/logger"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitStructural = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := drawcli.ParseFlags(args, os.Stderr)
	if errors.Is(err, drawcli.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitFailure
	}

	if err := logger.InitWithOptions(os.Stderr, logger.FormatText); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return exitFailure
	}
	level := "warn"
	if cfg.Verbose {
		level = "debug"
	}
	_ = logger.SetLevelString(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := drawcli.Run(ctx, cfg, os.Stdout); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		if isStructural(err) {
			return exitStructural
		}
		return exitFailure
	}
	return exitOK
}

// isStructural reports whether err is a problem with the selection rather
// than with the tool.
func isStructural(err error) bool {
	return errors.Is(err, allocation.ErrNoPlayers) ||
		errors.Is(err, allocation.ErrInvalidTeamCount) ||
		errors.Is(err, allocation.ErrSurplus) ||
		errors.Is(err, allocation.ErrInsufficientPlayers)
}
