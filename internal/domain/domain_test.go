package domain

import (
	"strings"
	"testing"
	"time"
)

func TestCardValid(t *testing.T) {
	valid := []Card{"0", "1", "2", "3", "5", "8", "13", "21", "?", "☕", NoVote}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("card %q should be valid", c)
		}
	}
	invalid := []Card{"7", "4", "coffee", "unknown", " 5", "100"}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("card %q should be invalid", c)
		}
	}
}

func TestCardNumeric(t *testing.T) {
	if v, ok := Card("13").Numeric(); !ok || v != 13 {
		t.Fatalf("expected 13, got %v ok=%v", v, ok)
	}
	for _, c := range []Card{CardQuestion, CardCoffee, NoVote} {
		if _, ok := c.Numeric(); ok {
			t.Errorf("card %q should have no numeric value", c)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("  Alice  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Alice" {
		t.Fatalf("expected trimmed name, got %q", got)
	}

	if _, err := NormalizeName("   "); err == nil {
		t.Fatal("whitespace-only name should be rejected")
	}
	if _, err := NormalizeName(strings.Repeat("x", 51)); err == nil {
		t.Fatal("51-character name should be rejected")
	}
	if _, err := NormalizeName(strings.Repeat("x", 50)); err != nil {
		t.Fatalf("50-character name should be accepted: %v", err)
	}
}

func TestValidCode(t *testing.T) {
	for _, code := range []string{"ABC123", "ZZZZZZ", "000000"} {
		if !ValidCode(code) {
			t.Errorf("code %q should be valid", code)
		}
	}
	for _, code := range []string{"abc123", "ABC12", "ABC1234", "ABC 12", "ABC12é", ""} {
		if ValidCode(code) {
			t.Errorf("code %q should be invalid", code)
		}
	}
}

func TestNormalizeBackfillsLegacyFields(t *testing.T) {
	room := &Room{
		Code: "ABC123",
		Players: []*Player{
			{ID: "p1", Name: "First"},
			{ID: "p2", Name: "Second"},
		},
	}
	room.Normalize()

	if room.CreatorID != "p1" {
		t.Fatalf("expected first player backfilled as creator, got %q", room.CreatorID)
	}
	if room.BreakoutRooms == nil {
		t.Fatal("expected breakout collection to be backfilled")
	}
	if !room.IsCreator("p1") || room.IsCreator("p2") {
		t.Fatal("creator predicate wrong after backfill")
	}
}

func TestNormalizeKeepsExplicitCreator(t *testing.T) {
	room := &Room{
		Code:      "ABC123",
		CreatorID: "p2",
		Players:   []*Player{{ID: "p1"}, {ID: "p2"}},
	}
	room.Normalize()
	if room.CreatorID != "p2" {
		t.Fatalf("normalize must not overwrite an explicit creator, got %q", room.CreatorID)
	}
}

func TestLastActivity(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	room := &Room{
		CreatedAt: base,
		Players: []*Player{
			{ID: "p1", LastSeen: base.Add(time.Minute)},
			{ID: "p2", LastSeen: base.Add(3 * time.Minute)},
		},
	}
	if got := room.LastActivity(); !got.Equal(base.Add(3 * time.Minute)) {
		t.Fatalf("unexpected last activity: %v", got)
	}

	empty := &Room{CreatedAt: base}
	if got := empty.LastActivity(); !got.Equal(base) {
		t.Fatalf("empty room should fall back to creation time, got %v", got)
	}
}

func TestNewPlayerValidation(t *testing.T) {
	now := time.Now()
	if _, err := NewPlayer("", "Alice", false, now); err == nil {
		t.Fatal("empty id should be rejected")
	}
	p, err := NewPlayer("p1", " Bob ", true, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Bob" || !p.IsObserver || p.Vote != NoVote {
		t.Fatalf("unexpected player: %+v", p)
	}
}
