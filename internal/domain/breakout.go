package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// BreakoutRoom is a sub-session of voting players with its own votes and
// reveal flag. Membership is a copy of parent player entries; a member's
// breakout vote is independent of their main-room vote.
type BreakoutRoom struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Code     string    `json:"code"`
	Players  []*Player `json:"players"`
	Revealed bool      `json:"revealed"`
}

// NewBreakoutRoom labels the breakout by its creation order within the
// parent room. The code is a display label, not an independent lookup key.
func NewBreakoutRoom(parentCode string, index int) *BreakoutRoom {
	return &BreakoutRoom{
		ID:      uuid.NewString(),
		Name:    fmt.Sprintf("Breakout %d", index+1),
		Code:    fmt.Sprintf("%s-%d", parentCode, index+1),
		Players: []*Player{},
	}
}

func (b *BreakoutRoom) FindPlayer(id PlayerID) *Player {
	for _, p := range b.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlayer deletes the member if present and reports whether it did.
func (b *BreakoutRoom) RemovePlayer(id PlayerID) bool {
	for i, p := range b.Players {
		if p.ID == id {
			b.Players = append(b.Players[:i], b.Players[i+1:]...)
			return true
		}
	}
	return false
}
