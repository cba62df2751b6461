// Package repository stores the player roster and the history of draws.
package repository

import (
	"context"

	"github.com/okian/lineup/internal/domain/model"
)

// RosterStore provides read/write access to registered players.
type RosterStore interface {
	// Create validates p, assigns it a fresh ID and stores it.
	Create(ctx context.Context, p model.Player) (model.Player, error)
	// Get returns the player with id or ErrNotFound.
	Get(ctx context.Context, id string) (model.Player, error)
	// GetMany returns the players for ids in the given order. The first
	// unknown id fails the whole lookup with ErrNotFound.
	GetMany(ctx context.Context, ids []string) ([]model.Player, error)
	// Update replaces the stored player with the same ID.
	Update(ctx context.Context, p model.Player) (model.Player, error)
	// Delete removes the player with id.
	Delete(ctx context.Context, id string) error
	// List returns every player, goalkeepers first, then by tier and name.
	List(ctx context.Context) []model.Player
	// Count returns the number of registered players.
	Count(ctx context.Context) int
}

// DrawStore keeps recent draws so they can be fetched and shared later.
type DrawStore interface {
	// Save records d. When the store is full the oldest draw is evicted.
	Save(ctx context.Context, d model.Draw) error
	// Get returns the draw with id or ErrNotFound.
	Get(ctx context.Context, id string) (model.Draw, error)
	// Len returns the number of draws held.
	Len() int
}

var (
	_ RosterStore = (*MemoryRoster)(nil)
	_ DrawStore   = (*DrawHistory)(nil)
)
