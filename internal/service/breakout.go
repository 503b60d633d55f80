package service

import (
	"context"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

func (s *Service) CreateBreakouts(ctx context.Context, code string, actor domain.PlayerID, numBreakouts int) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.CreateBreakouts(room, actor, numBreakouts)
	})
}

func (s *Service) DeleteBreakouts(ctx context.Context, code string, actor domain.PlayerID) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.DeleteBreakouts(room, actor)
	})
}

func (s *Service) JoinBreakout(ctx context.Context, code string, id domain.PlayerID, breakoutID string) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.JoinBreakout(room, id, breakoutID)
	})
}

func (s *Service) LeaveBreakout(ctx context.Context, code string, id domain.PlayerID) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.LeaveBreakout(room, id)
	})
}

func (s *Service) VoteBreakout(ctx context.Context, code string, breakoutID string, id domain.PlayerID, vote domain.Card) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.SubmitBreakoutVote(room, breakoutID, id, vote)
	})
}

func (s *Service) RevealBreakout(ctx context.Context, code string, breakoutID string) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.RevealBreakout(room, breakoutID)
	})
}

func (s *Service) ResetBreakout(ctx context.Context, code string, breakoutID string) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.ResetBreakout(room, breakoutID)
	})
}
