package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/table-reservation/internal/domain"
	"github.com/m04kA/table-reservation/pkg/psqlbuilder"
)

const tableName = "reservation_events"

// Schema таблица событий; события только добавляются
const Schema = `CREATE TABLE IF NOT EXISTS reservation_events (
	id          UUID PRIMARY KEY,
	summary     TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_at    TIMESTAMPTZ NOT NULL,
	end_at      TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT reservation_events_period CHECK (end_at > start_at)
);
CREATE INDEX IF NOT EXISTS reservation_events_start_at_idx ON reservation_events (start_at);`

// Repository хранилище событий календаря в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу, если ее еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// ListEvents возвращает события, пересекающие окно [timeMin, timeMax), по возрастанию начала
func (r *Repository) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	query, args, err := buildListQuery(timeMin, timeMax)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEvents - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.CalendarEvent
	for rows.Next() {
		var ev domain.CalendarEvent
		if err := rows.Scan(&ev.ID, &ev.Summary, &ev.Description, &ev.Start, &ev.End); err != nil {
			return nil, fmt.Errorf("%w: ListEvents: %v", ErrScanRow, err)
		}
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEvents - rows iteration: %v", ErrExecQuery, err)
	}

	return result, nil
}

// InsertEvent сохраняет новое событие и возвращает его идентификатор
// Нарушение ограничений таблицы означает отказ хранилища (domain.ErrEventStoreRejected)
func (r *Repository) InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error) {
	if !event.End.After(event.Start) {
		return "", fmt.Errorf("%w: %w: end %s is not after start %s",
			domain.ErrEventStoreRejected, ErrInvalidEvent,
			event.End.Format(time.RFC3339), event.Start.Format(time.RFC3339))
	}

	id := uuid.NewString()
	query, args, err := buildInsertQuery(id, event)
	if err != nil {
		return "", fmt.Errorf("%w: InsertEvent - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isConstraintViolation(err) {
			return "", fmt.Errorf("%w: %w: InsertEvent: %v", domain.ErrEventStoreRejected, ErrExecQuery, err)
		}
		return "", fmt.Errorf("%w: InsertEvent - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

func buildListQuery(timeMin, timeMax time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "summary", "description", "start_at", "end_at").
		From(tableName).
		Where(squirrel.Lt{"start_at": timeMax}).
		Where(squirrel.Gt{"end_at": timeMin}).
		OrderBy("start_at ASC", "id ASC").
		ToSql()
}

func buildInsertQuery(id string, event domain.CalendarEvent) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("id", "summary", "description", "start_at", "end_at").
		Values(id, event.Summary, event.Description, event.Start, event.End).
		ToSql()
}

// isConstraintViolation класс 23 SQLSTATE: integrity constraint violation
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}
