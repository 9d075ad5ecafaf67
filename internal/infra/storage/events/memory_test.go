package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/table-reservation/internal/domain"
)

func TestMemoryStore_ListEvents(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	insert := func(start time.Time) {
		_, err := store.InsertEvent(ctx, domain.CalendarEvent{Summary: "r", Start: start, End: start.Add(30 * time.Minute)})
		require.NoError(t, err)
	}
	insert(day.Add(19 * time.Hour))
	insert(day.Add(18 * time.Hour))
	insert(day.Add(-15 * time.Minute)) // пересекает начало дня
	insert(day.Add(24 * time.Hour))    // следующий день

	events, err := store.ListEvents(ctx, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, day.Add(-15*time.Minute), events[0].Start)
	assert.Equal(t, day.Add(18*time.Hour), events[1].Start)
	assert.Equal(t, day.Add(19*time.Hour), events[2].Start)
	assert.Equal(t, 4, store.Len())
}

func TestMemoryStore_InsertEvent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	start := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)

	id1, err := store.InsertEvent(ctx, domain.CalendarEvent{Start: start, End: start.Add(time.Minute)})
	require.NoError(t, err)
	id2, err := store.InsertEvent(ctx, domain.CalendarEvent{Start: start, End: start.Add(time.Minute)})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	_, err = store.InsertEvent(ctx, domain.CalendarEvent{Start: start, End: start})
	assert.ErrorIs(t, err, domain.ErrEventStoreRejected)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.InsertEvent(cancelled, domain.CalendarEvent{Start: start, End: start.Add(time.Minute)})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.ListEvents(cancelled, start, start.Add(time.Hour))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 2, store.Len())
}
