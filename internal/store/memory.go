package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

// Memory keeps room documents in a process-local map. Documents are held
// as marshaled JSON so a loaded room never aliases stored state, matching
// the semantics of the durable backends.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, code string) (*domain.Room, error) {
	m.mu.RLock()
	doc, ok := m.docs[code]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var room domain.Room
	if err := json.Unmarshal(doc, &room); err != nil {
		return nil, fmt.Errorf("%w: decode room %s: %v", domain.ErrStorage, code, err)
	}
	return &room, nil
}

func (m *Memory) Save(_ context.Context, code string, room *domain.Room) error {
	doc, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: encode room %s: %v", domain.ErrStorage, code, err)
	}
	m.mu.Lock()
	m.docs[code] = doc
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	delete(m.docs, code)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Codes(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	codes := make([]string, 0, len(m.docs))
	for code := range m.docs {
		codes = append(codes, code)
	}
	return codes, nil
}

func (m *Memory) Close() error { return nil }
