package spincube

import "errors"

// Sentinel errors for the spincube package.
var (
	// Turn errors
	ErrTurnInProgress = errors.New("spincube: turn already in progress")
	ErrSlicesDisabled = errors.New("spincube: slice moves are disabled")

	// Parsing errors
	ErrInvalidNotation = errors.New("spincube: invalid move notation")
)
