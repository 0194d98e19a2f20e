package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-service/internal/domain"
)

// MockRoomRepo serves rooms from memory and counts lookups per id.
type MockRoomRepo struct {
	Rooms        map[string]domain.Room
	FindByIDFunc func(ctx context.Context, id string) (*domain.Room, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockRoomRepo) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[id]++
	m.mu.Unlock()

	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}

	room, ok := m.Rooms[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &room, nil
}

func (m *MockRoomRepo) Calls(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls[id]
}
