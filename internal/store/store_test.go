package store

import (
	"context"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

// backends returns every store implementation testable without external
// services. The redis adapter shares the document codec with these and is
// exercised against a live server in deployment, not here.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "rooms.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func sampleRoom(code string) *domain.Room {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Room{
		Code:      code,
		CreatedAt: now,
		CreatorID: "p1",
		Players: []*domain.Player{
			{ID: "p1", Name: "Alice", Vote: "5", LastSeen: now},
			{ID: "p2", Name: "Bob", IsObserver: true, LastSeen: now},
		},
		BreakoutRooms: []*domain.BreakoutRoom{},
	}
}

func TestLoadAbsentRoom(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			room, err := st.Load(context.Background(), "NOPE00")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if room != nil {
				t.Fatal("absent room must load as nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := sampleRoom("ABC123")
			if err := st.Save(ctx, want.Code, want); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := st.Load(ctx, want.Code)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got == nil {
				t.Fatal("saved room should load")
			}
			if got.Code != want.Code || got.CreatorID != want.CreatorID {
				t.Fatalf("round trip mangled the document: %+v", got)
			}
			if len(got.Players) != 2 || got.Players[0].Vote != "5" || !got.Players[1].IsObserver {
				t.Fatalf("players not preserved: %+v", got.Players)
			}

			// A loaded room must not alias stored state.
			got.Players[0].Vote = "13"
			again, err := st.Load(ctx, want.Code)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if again.Players[0].Vote != "5" {
				t.Fatal("mutating a loaded room leaked into the store")
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			room := sampleRoom("ABC123")
			if err := st.Save(ctx, room.Code, room); err != nil {
				t.Fatalf("save: %v", err)
			}
			room.Revealed = true
			if err := st.Save(ctx, room.Code, room); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			got, err := st.Load(ctx, room.Code)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !got.Revealed {
				t.Fatal("overwrite did not take")
			}
		})
	}
}

func TestDeleteRoom(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			room := sampleRoom("ABC123")
			if err := st.Save(ctx, room.Code, room); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := st.Delete(ctx, room.Code); err != nil {
				t.Fatalf("delete: %v", err)
			}
			got, err := st.Load(ctx, room.Code)
			if err != nil {
				t.Fatalf("load after delete: %v", err)
			}
			if got != nil {
				t.Fatal("deleted room should be absent")
			}

			// Deleting an absent room is not an error.
			if err := st.Delete(ctx, room.Code); err != nil {
				t.Fatalf("double delete: %v", err)
			}
		})
	}
}

func TestCodes(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, code := range []string{"AAAAAA", "BBBBBB", "CCCCCC"} {
				if err := st.Save(ctx, code, sampleRoom(code)); err != nil {
					t.Fatalf("save %s: %v", code, err)
				}
			}
			codes, err := st.Codes(ctx)
			if err != nil {
				t.Fatalf("codes: %v", err)
			}
			sort.Strings(codes)
			want := []string{"AAAAAA", "BBBBBB", "CCCCCC"}
			if len(codes) != len(want) {
				t.Fatalf("expected %d codes, got %v", len(want), codes)
			}
			for i := range want {
				if codes[i] != want[i] {
					t.Fatalf("expected %v, got %v", want, codes)
				}
			}
		})
	}
}
