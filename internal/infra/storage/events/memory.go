package events

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/table-reservation/internal/domain"
)

// MemoryStore хранилище событий в памяти процесса
// Используется для локального запуска и тестов; данные теряются при перезапуске
type MemoryStore struct {
	mu     sync.RWMutex
	events []domain.CalendarEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListEvents возвращает события, пересекающие окно [timeMin, timeMax)
func (s *MemoryStore) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CalendarEvent, 0)
	for _, ev := range s.events {
		if ev.Start.Before(timeMax) && ev.End.After(timeMin) {
			result = append(result, ev)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	return result, nil
}

// InsertEvent сохраняет копию события
func (s *MemoryStore) InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !event.End.After(event.Start) {
		return "", fmt.Errorf("%w: %w: end is not after start", domain.ErrEventStoreRejected, ErrInvalidEvent)
	}

	event.ID = uuid.NewString()

	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()

	return event.ID, nil
}

// Len количество сохраненных событий
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
