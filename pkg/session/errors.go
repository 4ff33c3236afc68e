package session

import "errors"

// ErrInvalidOpponents is returned when the number of opponents is outside MinOpponents..MaxOpponents
var ErrInvalidOpponents = errors.New("opponents must be between 1 and 8")

// ErrBoardFull is returned when more than five community cards are supplied
var ErrBoardFull = errors.New("the board already has five community cards")

// ErrNotEnoughCommunity is returned when an operation needs more community cards than have been revealed
var ErrNotEnoughCommunity = errors.New("not enough community cards")

// ErrNotFound is returned when a session does not exist in the registry
var ErrNotFound = errors.New("session not found")

// ErrRegistryFull is returned when the registry cannot hold any more sessions
var ErrRegistryFull = errors.New("too many open sessions")
