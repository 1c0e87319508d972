package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"dayplan/models"
)

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Create(ctx context.Context, event models.Event) (models.Event, error) {
	query, args, err := squirrel.
		Insert("events").
		Columns("user_id", "description", "date_time").
		Values(event.UserID, event.Description, event.DateTime).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Event{}, fmt.Errorf("event id: %w", err)
	}

	return s.GetByID(ctx, event.UserID, id)
}

func (s *EventStore) GetByID(ctx context.Context, userID, id int64) (models.Event, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "description", "date_time").
		From("events").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("build query: %w", err)
	}

	var event models.Event
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&event.ID, &event.UserID, &event.Description, &event.DateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, fmt.Errorf("get event %d: %w", id, err)
	}
	return event, nil
}

// ListForUser returns the user's events ordered by date-time ascending.
func (s *EventStore) ListForUser(ctx context.Context, userID int64) ([]models.Event, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "description", "date_time").
		From("events").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.UserID, &event.Description, &event.DateTime); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (s *EventStore) Update(ctx context.Context, event models.Event) (models.Event, error) {
	query, args, err := squirrel.
		Update("events").
		Set("description", event.Description).
		Set("date_time", event.DateTime).
		Where(squirrel.Eq{"id": event.ID}).
		Where(squirrel.Eq{"user_id": event.UserID}).
		ToSql()
	if err != nil {
		return models.Event{}, fmt.Errorf("build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Event{}, fmt.Errorf("update event %d: %w", event.ID, err)
	}

	return s.GetByID(ctx, event.UserID, event.ID)
}

func (s *EventStore) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := squirrel.
		Delete("events").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
