package config

import "errors"

// Sentinel kinds returned by Load and Validate.
var (
	ErrInvalidConfig = errors.New("invalid matchday config")
	ErrLoadConfig    = errors.New("load matchday config")
)
