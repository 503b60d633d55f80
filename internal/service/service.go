// Package service orchestrates room commands: it loads the document,
// applies the engine transition under a per-room lock, persists the
// result and notifies subscribers. The per-room lock serializes
// concurrent mutations of the same code so a save never silently
// clobbers another command's effect.
package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Apurva9997/planning-poker/internal/domain"
	"github.com/Apurva9997/planning-poker/internal/engine"
	"github.com/Apurva9997/planning-poker/internal/store"
)

const codeAttempts = 10

// Notifier receives the new room state after every successful mutation.
// A nil room signals deletion. Implementations must not block or fail.
type Notifier interface {
	Publish(code string, room *domain.Room)
}

type Service struct {
	store    store.Store
	engine   *engine.Engine
	notifier Notifier
	locks    roomLocks
	genCode  func() string
}

func New(st store.Store, eng *engine.Engine, notifier Notifier) *Service {
	return &Service{
		store:    st,
		engine:   eng,
		notifier: notifier,
		locks:    roomLocks{byCode: make(map[string]*sync.Mutex)},
		genCode:  randomCode,
	}
}

// randomCode draws 6 characters uniformly from the room code alphabet.
func randomCode() string {
	b := make([]byte, domain.CodeLength)
	for i := range b {
		b[i] = domain.CodeAlphabet[rand.Intn(len(domain.CodeAlphabet))]
	}
	return string(b)
}

// roomLocks hands out one mutex per room code, created on first use with
// a double-checked lookup. Entries are retained for the process lifetime;
// the per-entry cost is a single mutex.
type roomLocks struct {
	mu     sync.Mutex
	byCode map[string]*sync.Mutex
}

func (l *roomLocks) acquire(code string) *sync.Mutex {
	l.mu.Lock()
	mu, ok := l.byCode[code]
	if !ok {
		mu = &sync.Mutex{}
		l.byCode[code] = mu
	}
	l.mu.Unlock()
	mu.Lock()
	return mu
}

// Create allocates an unused room code and creates the room with the
// caller as creator and sole player. Collisions are retried a bounded
// number of times before giving up with a conflict.
//
// adminUID tags the creation in the session log when the caller presented
// a verified admin token; it never gates the command.
func (s *Service) Create(ctx context.Context, name string, id domain.PlayerID, observer bool, adminUID string) (*domain.Room, error) {
	for i := 0; i < codeAttempts; i++ {
		code := s.genCode()
		mu := s.locks.acquire(code)
		existing, err := s.store.Load(ctx, code)
		if err != nil {
			mu.Unlock()
			return nil, err
		}
		if existing != nil {
			mu.Unlock()
			continue
		}
		room, err := s.engine.NewRoom(code, name, id, observer)
		if err != nil {
			mu.Unlock()
			return nil, err
		}
		if err := s.store.Save(ctx, code, room); err != nil {
			mu.Unlock()
			return nil, err
		}
		mu.Unlock()
		ev := log.Info().Str("module", "service").Str("room", code).Str("player", string(id))
		if adminUID != "" {
			ev = ev.Str("admin", adminUID)
		}
		ev.Msg("room created")
		s.notifier.Publish(code, room)
		return room, nil
	}
	return nil, domain.ErrCodeSpaceExhausted
}

// Join adds the player to the room, creating the room under the supplied
// code when absent. Rejoining with a known player id is a reconnect.
func (s *Service) Join(ctx context.Context, code string, name string, id domain.PlayerID, observer bool) (*domain.Room, error) {
	code = strings.ToUpper(code)
	if !domain.ValidCode(code) {
		return nil, domain.ErrInvalidCode
	}
	return s.mutateOrCreate(ctx, code, func(room *domain.Room) (*domain.Room, error) {
		if room == nil {
			return s.engine.NewRoom(code, name, id, observer)
		}
		return room, s.engine.Join(room, name, id, observer)
	})
}

// Get returns the current normalized room document.
func (s *Service) Get(ctx context.Context, code string) (*domain.Room, error) {
	code = strings.ToUpper(code)
	if !domain.ValidCode(code) {
		return nil, domain.ErrInvalidCode
	}
	room, err := s.store.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrRoomNotFound
	}
	room.Normalize()
	return room, nil
}

func (s *Service) Vote(ctx context.Context, code string, id domain.PlayerID, vote domain.Card) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		return s.engine.SubmitVote(room, id, vote)
	})
}

func (s *Service) Reveal(ctx context.Context, code string) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		s.engine.Reveal(room)
		return nil
	})
}

func (s *Service) Reset(ctx context.Context, code string) (*domain.Room, error) {
	return s.mutate(ctx, code, func(room *domain.Room) error {
		s.engine.Reset(room)
		return nil
	})
}

// Leave removes the player; when the last player leaves the room document
// is deleted outright and subscribers receive a nil state.
func (s *Service) Leave(ctx context.Context, code string, id domain.PlayerID) error {
	code = strings.ToUpper(code)
	if !domain.ValidCode(code) {
		return domain.ErrInvalidCode
	}
	mu := s.locks.acquire(code)
	defer mu.Unlock()

	room, err := s.store.Load(ctx, code)
	if err != nil {
		return err
	}
	if room == nil {
		return domain.ErrRoomNotFound
	}
	room.Normalize()
	empty, err := s.engine.Leave(room, id)
	if err != nil {
		return err
	}
	if empty {
		if err := s.store.Delete(ctx, code); err != nil {
			return err
		}
		log.Info().Str("module", "service").Str("room", code).Msg("room deleted, last player left")
		s.notifier.Publish(code, nil)
		return nil
	}
	if err := s.store.Save(ctx, code, room); err != nil {
		return err
	}
	s.notifier.Publish(code, room)
	return nil
}

// mutate runs one engine transition under the room's lock and persists
// the outcome. Rejections leave the stored document untouched.
func (s *Service) mutate(ctx context.Context, code string, fn func(*domain.Room) error) (*domain.Room, error) {
	code = strings.ToUpper(code)
	if !domain.ValidCode(code) {
		return nil, domain.ErrInvalidCode
	}
	mu := s.locks.acquire(code)
	defer mu.Unlock()

	room, err := s.store.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrRoomNotFound
	}
	room.Normalize()
	if err := fn(room); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, code, room); err != nil {
		return nil, err
	}
	s.notifier.Publish(code, room)
	return room, nil
}

// mutateOrCreate is mutate for commands that may run against an absent
// room; fn receives nil then and returns the room to persist.
func (s *Service) mutateOrCreate(ctx context.Context, code string, fn func(*domain.Room) (*domain.Room, error)) (*domain.Room, error) {
	mu := s.locks.acquire(code)
	defer mu.Unlock()

	room, err := s.store.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if room != nil {
		room.Normalize()
	}
	room, err = fn(room)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, code, room); err != nil {
		return nil, err
	}
	s.notifier.Publish(code, room)
	return room, nil
}
