package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"dayplan/models"
)

type NoteStore struct {
	db *sql.DB
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Create(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := squirrel.
		Insert("notes").
		Columns("user_id", "text").
		Values(note.UserID, note.Text).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Note{}, fmt.Errorf("insert note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Note{}, fmt.Errorf("note id: %w", err)
	}

	return s.GetByID(ctx, note.UserID, id)
}

func (s *NoteStore) GetByID(ctx context.Context, userID, id int64) (models.Note, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "text", "created_at").
		From("notes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("build query: %w", err)
	}

	var note models.Note
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, fmt.Errorf("get note %d: %w", id, err)
	}
	return note, nil
}

// ListForUser returns the user's notes in insertion order.
func (s *NoteStore) ListForUser(ctx context.Context, userID int64) ([]models.Note, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "text", "created_at").
		From("notes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

func (s *NoteStore) Update(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := squirrel.
		Update("notes").
		Set("text", note.Text).
		Where(squirrel.Eq{"id": note.ID}).
		Where(squirrel.Eq{"user_id": note.UserID}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Note{}, fmt.Errorf("update note %d: %w", note.ID, err)
	}

	return s.GetByID(ctx, note.UserID, note.ID)
}

func (s *NoteStore) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := squirrel.
		Delete("notes").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
