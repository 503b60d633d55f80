// Package notify fans out new room state to in-process subscribers.
// Delivery is best-effort: a slow subscriber's update is dropped rather
// than blocking the mutation that produced it.
package notify

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

const subscriberBuffer = 10

type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan *domain.Room]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan *domain.Room]struct{})}
}

// Subscribe registers a listener for a room code. The caller must
// Unsubscribe the returned channel when done.
func (h *Hub) Subscribe(code string) chan *domain.Room {
	ch := make(chan *domain.Room, subscriberBuffer)
	h.mu.Lock()
	if h.subs[code] == nil {
		h.subs[code] = make(map[chan *domain.Room]struct{})
	}
	h.subs[code][ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(code string, ch chan *domain.Room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[code]
	if !ok {
		return
	}
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	close(ch)
	if len(set) == 0 {
		delete(h.subs, code)
	}
}

// Publish pushes the new state to every subscriber of the room. A nil
// room signals deletion. Publish never blocks and never fails.
func (h *Hub) Publish(code string, room *domain.Room) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	dropped := 0
	for ch := range h.subs[code] {
		select {
		case ch <- room:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		log.Debug().Str("module", "notify").Str("room", code).Int("dropped", dropped).Msg("slow subscribers skipped")
	}
}
