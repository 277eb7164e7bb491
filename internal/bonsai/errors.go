package bonsai

import (
	"errors"
	"fmt"
)

// Configuration errors. Growth arithmetic is undefined for these inputs.
var (
	// ErrInvalidLife indicates a non-positive starting life.
	ErrInvalidLife = errors.New("bonsai: starting life must be positive")

	// ErrInvalidMultiplier indicates a non-positive branch multiplier.
	ErrInvalidMultiplier = errors.New("bonsai: branch multiplier must be positive")

	// ErrInvalidBounds indicates a drawing area with no cells.
	ErrInvalidBounds = errors.New("bonsai: drawing area must be at least 1x1")

	// ErrInvalidBaseOffset indicates a base reservation outside the screen.
	ErrInvalidBaseOffset = errors.New("bonsai: base offset out of range")
)

// ConfigError wraps a configuration error with the offending field.
type ConfigError struct {
	Field   string
	Value   int
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s=%d)", e.Wrapped.Error(), e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
