// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tier is a coarse skill bucket. Lower is stronger: 1 is the best tier and
// 3 the weakest acceptable one.
type Tier int

// Known tiers.
const (
	TierStrong  Tier = 1
	TierAverage Tier = 2
	TierWeak    Tier = 3
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t >= TierStrong && t <= TierWeak
}

func (t Tier) String() string {
	return fmt.Sprintf("tier %d", int(t))
}

// Player is a roster entry as seen by the allocator. Players are values;
// the allocator copies them into teams and never mutates the caller's slice.
type Player struct {
	ID         string `json:"id" yaml:"id" koanf:"id"`
	Name       string `json:"name" yaml:"name" koanf:"name" validate:"required,notblank,max=64"`
	Tier       Tier   `json:"tier" yaml:"tier" koanf:"tier" validate:"oneof=1 2 3"`
	Goalkeeper bool   `json:"goalkeeper" yaml:"goalkeeper" koanf:"goalkeeper"`
	// Photo is an opaque reference owned by the presentation layer.
	Photo string `json:"photo,omitempty" yaml:"photo" koanf:"photo"`
	// Phantom marks a placeholder synthesized to complete a short roster.
	Phantom bool `json:"phantom,omitempty" yaml:"-" koanf:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate checks the player's name and tier.
func (p Player) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
	}
	return nil
}

// Role returns a human label for the player's position.
func (p Player) Role() string {
	if p.Goalkeeper {
		return "goalkeeper"
	}
	return "outfield"
}
