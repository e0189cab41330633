package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrGameNotFound     = errors.New("game not found")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrCapacityExceeded = errors.New("game code space exhausted")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotAuthorized  = errors.New("token does not authorize this action")

	// Archive errors
	ErrArchiveNotFound = errors.New("archive record not found")
)
