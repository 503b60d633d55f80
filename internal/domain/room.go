package domain

import (
	"regexp"
	"time"
)

const CodeLength = 6

// CodeAlphabet is the full space of room code characters, ~2*10^9 codes.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// ValidCode reports whether code matches the wire-visible room code format.
func ValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// Room is the top-level estimation session, stored as one document per
// code. Players are kept in join order.
type Room struct {
	Code          string          `json:"code"`
	Players       []*Player       `json:"players"`
	Revealed      bool            `json:"revealed"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatorID     PlayerID        `json:"creatorId,omitempty"`
	BreakoutRooms []*BreakoutRoom `json:"breakoutRooms"`
}

func NewRoom(code string, creator *Player, now time.Time) *Room {
	return &Room{
		Code:          code,
		Players:       []*Player{creator},
		Revealed:      false,
		CreatedAt:     now,
		CreatorID:     creator.ID,
		BreakoutRooms: []*BreakoutRoom{},
	}
}

func (r *Room) FindPlayer(id PlayerID) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// IsCreator reports whether id holds the creator capability. Rooms
// written before the creatorId field existed fall back to the first
// player; Normalize backfills that on load, so the fallback here only
// matters for rooms that were never persisted.
func (r *Room) IsCreator(id PlayerID) bool {
	if r.CreatorID != "" {
		return r.CreatorID == id
	}
	return len(r.Players) > 0 && r.Players[0].ID == id
}

// Voters returns the non-observer players in join order.
func (r *Room) Voters() []*Player {
	voters := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.IsObserver {
			voters = append(voters, p)
		}
	}
	return voters
}

// LastActivity returns the most recent lastSeen across all players, or
// the creation time for a room with none.
func (r *Room) LastActivity() time.Time {
	last := r.CreatedAt
	for _, p := range r.Players {
		if p.LastSeen.After(last) {
			last = p.LastSeen
		}
	}
	return last
}

// Normalize backfills fields missing from documents written by older
// versions: creatorId defaults to the first player and nil collections
// become empty. It runs immediately after every load so the rest of the
// engine can assume the full schema.
func (r *Room) Normalize() {
	if r.Players == nil {
		r.Players = []*Player{}
	}
	if r.CreatorID == "" && len(r.Players) > 0 {
		r.CreatorID = r.Players[0].ID
	}
	if r.BreakoutRooms == nil {
		r.BreakoutRooms = []*BreakoutRoom{}
	}
	for _, b := range r.BreakoutRooms {
		if b.Players == nil {
			b.Players = []*Player{}
		}
	}
}
