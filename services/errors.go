package services

import (
	"errors"
)

// Every failed operation returns one of these kinds, raised by precondition
// checks before any state is written. Handlers translate them to HTTP statuses.
var (
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientItems   = errors.New("insufficient item supply")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrOwnershipNotFound   = errors.New("game not owned")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrTournamentEnded     = errors.New("tournament ended or full")
)
