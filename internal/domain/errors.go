package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every command rejection wraps exactly one of these;
// callers classify with errors.Is and translate to their own surface.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")

	// ErrStorage marks persistence failures. Unlike the categories above it
	// is retriable at the caller's discretion.
	ErrStorage = errors.New("storage failure")
)

var (
	ErrInvalidName          = fmt.Errorf("%w: player name must be 1-50 characters", ErrInvalidInput)
	ErrInvalidPlayerID      = fmt.Errorf("%w: player id required", ErrInvalidInput)
	ErrInvalidCode          = fmt.Errorf("%w: room code must be 6 characters A-Z 0-9", ErrInvalidInput)
	ErrInvalidCard          = fmt.Errorf("%w: unknown card value", ErrInvalidInput)
	ErrInvalidBreakoutCount = fmt.Errorf("%w: breakout count must be between 2 and 10", ErrInvalidInput)

	ErrRoomNotFound     = fmt.Errorf("room %w", ErrNotFound)
	ErrPlayerNotFound   = fmt.Errorf("player %w", ErrNotFound)
	ErrBreakoutNotFound = fmt.Errorf("breakout room %w", ErrNotFound)

	ErrNotCreator = fmt.Errorf("%w: only the room creator can manage breakout rooms", ErrForbidden)

	ErrRoomFull           = fmt.Errorf("%w: room already has %d players", ErrConflict, MaxPlayersPerRoom)
	ErrCodeSpaceExhausted = fmt.Errorf("%w: could not allocate an unused room code", ErrConflict)
	ErrNotEnoughPlayers   = fmt.Errorf("%w: at least 4 voting players are needed to split into breakout rooms", ErrConflict)
	ErrRoundInProgress    = fmt.Errorf("%w: cannot create breakout rooms while a voting round is in progress", ErrConflict)
	ErrObserverInBreakout = fmt.Errorf("%w: observers cannot join breakout rooms", ErrConflict)
)
