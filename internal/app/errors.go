package service

import "errors"

// Sentinel errors returned by the career service.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrNoStore        = errors.New("no save store configured")
	ErrInvalidLeague  = errors.New("invalid league")
	ErrNoUserTeam     = errors.New("user team not found")
	ErrQueueFull      = errors.New("fixture queue full")
	ErrAlreadyApplied = errors.New("results already applied")
	ErrUnknownTeam    = errors.New("result for unknown team")
)
