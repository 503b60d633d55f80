// Package domain holds the planning poker entities and the closed card
// deck. Transition logic lives in internal/engine; entities carry only
// validation and small read helpers.
package domain

import (
	"strings"
	"time"
)

const (
	MaxPlayerNameLen  = 50
	MaxPlayersPerRoom = 50
)

// PlayerID is client-asserted and never authenticated; it is only
// required to be unique within a room.
type PlayerID string

type Player struct {
	ID         PlayerID  `json:"id"`
	Name       string    `json:"name"`
	Vote       Card      `json:"vote,omitempty"`
	IsObserver bool      `json:"isObserver"`
	LastSeen   time.Time `json:"lastSeen"`
}

// NewPlayer validates and trims the display name before construction.
func NewPlayer(id PlayerID, name string, observer bool, now time.Time) (*Player, error) {
	if id == "" {
		return nil, ErrInvalidPlayerID
	}
	trimmed, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Player{
		ID:         id,
		Name:       trimmed,
		Vote:       NoVote,
		IsObserver: observer,
		LastSeen:   now,
	}, nil
}

// NormalizeName trims surrounding whitespace and enforces the 1-50
// character bound.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len([]rune(trimmed)) > MaxPlayerNameLen {
		return "", ErrInvalidName
	}
	return trimmed, nil
}
