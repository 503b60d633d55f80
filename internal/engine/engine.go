// Package engine implements the room state machine. Every command is a
// pure transition over an already-loaded Room: it validates preconditions,
// mutates the document in place and reports a typed rejection otherwise.
// Loading, locking, persistence and notification are the caller's job
// (see internal/service).
package engine

import (
	"time"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock injects a deterministic clock.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// NewRoom builds a fresh active room with the creator as its only player.
// The code is supplied by the caller, which owns generation and collision
// checking against the store.
func (e *Engine) NewRoom(code string, name string, id domain.PlayerID, observer bool) (*domain.Room, error) {
	if !domain.ValidCode(code) {
		return nil, domain.ErrInvalidCode
	}
	creator, err := domain.NewPlayer(id, name, observer, e.now())
	if err != nil {
		return nil, err
	}
	return domain.NewRoom(code, creator, e.now()), nil
}

// Join adds a player to the room. A join with an id already present is a
// reconnect: the name and lastSeen are refreshed in place, never
// duplicated. New players are appended in join order, capped at
// domain.MaxPlayersPerRoom.
func (e *Engine) Join(room *domain.Room, name string, id domain.PlayerID, observer bool) error {
	if id == "" {
		return domain.ErrInvalidPlayerID
	}
	if existing := room.FindPlayer(id); existing != nil {
		trimmed, err := domain.NormalizeName(name)
		if err != nil {
			return err
		}
		existing.Name = trimmed
		existing.LastSeen = e.now()
		return nil
	}
	if len(room.Players) >= domain.MaxPlayersPerRoom {
		return domain.ErrRoomFull
	}
	player, err := domain.NewPlayer(id, name, observer, e.now())
	if err != nil {
		return err
	}
	room.Players = append(room.Players, player)
	return nil
}

// SubmitVote records a vote, or clears it when vote is domain.NoVote.
// Votes are accepted while the room is revealed: reveal is a visibility
// flag, not a round lock. Late votes simply show up already face-up.
func (e *Engine) SubmitVote(room *domain.Room, id domain.PlayerID, vote domain.Card) error {
	if !vote.Valid() {
		return domain.ErrInvalidCard
	}
	player := room.FindPlayer(id)
	if player == nil {
		return domain.ErrPlayerNotFound
	}
	player.Vote = vote
	player.LastSeen = e.now()
	return nil
}

// Reveal turns all votes face-up. Revealing an already-revealed room is a
// no-op.
func (e *Engine) Reveal(room *domain.Room) {
	room.Revealed = true
}

// Reset clears every player's vote and turns the room face-down again.
// Breakout room votes are untouched.
func (e *Engine) Reset(room *domain.Room) {
	for _, p := range room.Players {
		p.Vote = domain.NoVote
	}
	room.Revealed = false
}

// Leave removes the player from the room and from every breakout room,
// pruning breakouts that empty out. empty reports whether the room itself
// is now empty; the caller must then delete the document outright.
func (e *Engine) Leave(room *domain.Room, id domain.PlayerID) (empty bool, err error) {
	idx := -1
	for i, p := range room.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, domain.ErrPlayerNotFound
	}
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	e.removeFromBreakouts(room, id)
	return len(room.Players) == 0, nil
}

// removeFromBreakouts drops the player from every breakout room and
// prunes the ones left empty.
func (e *Engine) removeFromBreakouts(room *domain.Room, id domain.PlayerID) {
	kept := room.BreakoutRooms[:0]
	for _, b := range room.BreakoutRooms {
		b.RemovePlayer(id)
		if len(b.Players) > 0 {
			kept = append(kept, b)
		}
	}
	room.BreakoutRooms = kept
}
