package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameTaken      = errors.New("player name is already taken")
	ErrInvalidName    = errors.New("player name must be 2-20 characters")

	// Transaction errors
	ErrInvalidAmount = errors.New("amount must be a positive integer")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrMissingTarget = errors.New("transfer requires a target player")
	ErrSelfTransfer  = errors.New("transfer requires a different target player")
	ErrTransferLimit = errors.New("transfer would leave the sender with less than the minimum balance")

	// Board errors
	ErrFieldNotFound   = errors.New("board field not found")
	ErrNoActivePlayers = errors.New("no active players")
)
