// Package sweeper deletes rooms abandoned without anyone calling leave.
// The core protocol only deletes a room when its last player leaves, so
// a crash-prone client base would otherwise grow storage without bound.
// The sweep is opt-in: a zero TTL disables it.
package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Apurva9997/planning-poker/internal/store"
)

type Sweeper struct {
	store store.Store
	ttl   time.Duration
	cron  *cron.Cron
}

func New(st store.Store, ttl time.Duration) *Sweeper {
	return &Sweeper{store: st, ttl: ttl, cron: cron.New()}
}

// Start schedules the sweep every 10 minutes. No-op when ttl is zero.
func (s *Sweeper) Start() error {
	if s.ttl <= 0 {
		return nil
	}
	if _, err := s.cron.AddFunc("@every 10m", func() { s.Sweep(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("module", "sweeper").Dur("ttl", s.ttl).Msg("room expiry sweep scheduled")
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Sweep deletes every room in which no player has been seen within the
// TTL. Runs once; returns the number of rooms deleted.
func (s *Sweeper) Sweep(ctx context.Context) int {
	codes, err := s.store.Codes(ctx)
	if err != nil {
		log.Error().Str("module", "sweeper").Err(err).Msg("listing rooms failed")
		return 0
	}
	cutoff := time.Now().Add(-s.ttl)
	deleted := 0
	for _, code := range codes {
		room, err := s.store.Load(ctx, code)
		if err != nil {
			log.Error().Str("module", "sweeper").Str("room", code).Err(err).Msg("load failed")
			continue
		}
		if room == nil {
			continue
		}
		if room.LastActivity().After(cutoff) {
			continue
		}
		if err := s.store.Delete(ctx, code); err != nil {
			log.Error().Str("module", "sweeper").Str("room", code).Err(err).Msg("delete failed")
			continue
		}
		deleted++
	}
	if deleted > 0 {
		log.Info().Str("module", "sweeper").Int("deleted", deleted).Msg("expired rooms removed")
	}
	return deleted
}
