package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/Apurva9997/planning-poker/internal/domain"
	"github.com/Apurva9997/planning-poker/internal/store"
)

func seedRoom(t *testing.T, st store.Store, code string, lastSeen time.Time) {
	t.Helper()
	room := &domain.Room{
		Code:      code,
		CreatedAt: lastSeen,
		CreatorID: "p1",
		Players:   []*domain.Player{{ID: "p1", Name: "Alice", LastSeen: lastSeen}},
	}
	if err := st.Save(context.Background(), code, room); err != nil {
		t.Fatalf("seed %s: %v", code, err)
	}
}

func TestSweepDeletesIdleRooms(t *testing.T) {
	st := store.NewMemory()
	now := time.Now()
	seedRoom(t, st, "OLDOLD", now.Add(-2*time.Hour))
	seedRoom(t, st, "FRESH0", now.Add(-time.Minute))

	s := New(st, time.Hour)
	if deleted := s.Sweep(context.Background()); deleted != 1 {
		t.Fatalf("expected 1 room deleted, got %d", deleted)
	}

	old, err := st.Load(context.Background(), "OLDOLD")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if old != nil {
		t.Fatal("idle room should be deleted")
	}

	fresh, err := st.Load(context.Background(), "FRESH0")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fresh == nil {
		t.Fatal("active room must survive the sweep")
	}
}

func TestSweepUsesMostRecentPlayerActivity(t *testing.T) {
	st := store.NewMemory()
	now := time.Now()
	room := &domain.Room{
		Code:      "MIXED0",
		CreatedAt: now.Add(-3 * time.Hour),
		CreatorID: "p1",
		Players: []*domain.Player{
			{ID: "p1", LastSeen: now.Add(-3 * time.Hour)},
			{ID: "p2", LastSeen: now.Add(-time.Minute)},
		},
	}
	if err := st.Save(context.Background(), room.Code, room); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := New(st, time.Hour)
	if deleted := s.Sweep(context.Background()); deleted != 0 {
		t.Fatalf("one active player must keep the room, deleted %d", deleted)
	}
}

func TestStartDisabledWithoutTTL(t *testing.T) {
	s := New(store.NewMemory(), 0)
	if err := s.Start(); err != nil {
		t.Fatalf("zero TTL start should be a no-op: %v", err)
	}
	s.Stop()
}
