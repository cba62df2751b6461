package model

import "errors"

// Sentinel kinds for model errors.
var (
	ErrInvalidPlayer = errors.New("invalid player")
)
