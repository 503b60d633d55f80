package engine

import (
	"github.com/Apurva9997/planning-poker/internal/domain"
)

const (
	MinBreakoutCount = 2
	MaxBreakoutCount = 10
)

// CreateBreakouts splits the room's voting players into breakout rooms,
// replacing any existing set wholesale. Creator-only. The split is
// rejected while a round is in progress, i.e. the room is face-down and
// at least one voter has a vote cast.
//
// The effective count is min(numBreakouts, voters/2) so every breakout
// gets at least two members; players are dealt round-robin in join order,
// voter i into breakout i mod count, which keeps the assignment
// reproducible for a given ordering.
func (e *Engine) CreateBreakouts(room *domain.Room, actor domain.PlayerID, numBreakouts int) error {
	if !room.IsCreator(actor) {
		return domain.ErrNotCreator
	}
	if numBreakouts < MinBreakoutCount || numBreakouts > MaxBreakoutCount {
		return domain.ErrInvalidBreakoutCount
	}
	voters := room.Voters()
	if len(voters) < 2 {
		return domain.ErrNotEnoughPlayers
	}
	if !room.Revealed {
		for _, p := range voters {
			if p.Vote != domain.NoVote {
				return domain.ErrRoundInProgress
			}
		}
	}
	count := numBreakouts
	if limit := len(voters) / 2; count > limit {
		count = limit
	}
	if count < MinBreakoutCount {
		return domain.ErrNotEnoughPlayers
	}

	breakouts := make([]*domain.BreakoutRoom, count)
	for i := range breakouts {
		breakouts[i] = domain.NewBreakoutRoom(room.Code, i)
	}
	now := e.now()
	for i, p := range voters {
		member := &domain.Player{ID: p.ID, Name: p.Name, Vote: domain.NoVote, LastSeen: now}
		b := breakouts[i%count]
		b.Players = append(b.Players, member)
	}
	room.BreakoutRooms = breakouts
	if actorPlayer := room.FindPlayer(actor); actorPlayer != nil {
		actorPlayer.LastSeen = now
	}
	return nil
}

// DeleteBreakouts clears the breakout set unconditionally. Creator-only.
func (e *Engine) DeleteBreakouts(room *domain.Room, actor domain.PlayerID) error {
	if !room.IsCreator(actor) {
		return domain.ErrNotCreator
	}
	room.BreakoutRooms = []*domain.BreakoutRoom{}
	if actorPlayer := room.FindPlayer(actor); actorPlayer != nil {
		actorPlayer.LastSeen = e.now()
	}
	return nil
}

// JoinBreakout moves the player into the target breakout room, leaving
// any other breakout first so membership stays exclusive.
func (e *Engine) JoinBreakout(room *domain.Room, id domain.PlayerID, breakoutID string) error {
	player := room.FindPlayer(id)
	if player == nil {
		return domain.ErrPlayerNotFound
	}
	if player.IsObserver {
		return domain.ErrObserverInBreakout
	}
	target := findBreakout(room, breakoutID)
	if target == nil {
		return domain.ErrBreakoutNotFound
	}
	now := e.now()
	player.LastSeen = now
	for _, b := range room.BreakoutRooms {
		if b.ID != breakoutID {
			b.RemovePlayer(id)
		}
	}
	// Moving out may have emptied another breakout.
	e.pruneEmptyBreakouts(room)
	if target.FindPlayer(id) == nil {
		target.Players = append(target.Players, &domain.Player{ID: id, Name: player.Name, Vote: domain.NoVote, LastSeen: now})
	}
	return nil
}

// LeaveBreakout returns the player to the main room view by removing them
// from every breakout room.
func (e *Engine) LeaveBreakout(room *domain.Room, id domain.PlayerID) error {
	player := room.FindPlayer(id)
	if player == nil {
		return domain.ErrPlayerNotFound
	}
	player.LastSeen = e.now()
	e.removeFromBreakouts(room, id)
	return nil
}

// SubmitBreakoutVote mirrors SubmitVote scoped to one breakout room. The
// parent room's vote and reveal state are untouched.
func (e *Engine) SubmitBreakoutVote(room *domain.Room, breakoutID string, id domain.PlayerID, vote domain.Card) error {
	if !vote.Valid() {
		return domain.ErrInvalidCard
	}
	b := findBreakout(room, breakoutID)
	if b == nil {
		return domain.ErrBreakoutNotFound
	}
	member := b.FindPlayer(id)
	if member == nil {
		return domain.ErrPlayerNotFound
	}
	now := e.now()
	member.Vote = vote
	member.LastSeen = now
	if parent := room.FindPlayer(id); parent != nil {
		parent.LastSeen = now
	}
	return nil
}

// RevealBreakout turns the breakout's votes face-up; idempotent.
func (e *Engine) RevealBreakout(room *domain.Room, breakoutID string) error {
	b := findBreakout(room, breakoutID)
	if b == nil {
		return domain.ErrBreakoutNotFound
	}
	b.Revealed = true
	return nil
}

// ResetBreakout clears the breakout's votes and reveal flag only.
func (e *Engine) ResetBreakout(room *domain.Room, breakoutID string) error {
	b := findBreakout(room, breakoutID)
	if b == nil {
		return domain.ErrBreakoutNotFound
	}
	for _, p := range b.Players {
		p.Vote = domain.NoVote
	}
	b.Revealed = false
	return nil
}

func findBreakout(room *domain.Room, breakoutID string) *domain.BreakoutRoom {
	for _, b := range room.BreakoutRooms {
		if b.ID == breakoutID {
			return b
		}
	}
	return nil
}

func (e *Engine) pruneEmptyBreakouts(room *domain.Room) {
	kept := room.BreakoutRooms[:0]
	for _, b := range room.BreakoutRooms {
		if len(b.Players) > 0 {
			kept = append(kept, b)
		}
	}
	room.BreakoutRooms = kept
}
