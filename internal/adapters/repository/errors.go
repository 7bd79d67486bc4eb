package repository

import "errors"

// Sentinel kinds for save store errors.
var (
	ErrNotFound    = errors.New("save slot not found")
	ErrInvalidSlot = errors.New("invalid save slot name")
	ErrNilState    = errors.New("snapshot has no game state")
)
