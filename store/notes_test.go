package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("INSERT INTO notes").
		WithArgs(int64(7), "buy milk").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT id, user_id, text, created_at FROM notes").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "text", "created_at"}).
			AddRow(3, 7, "buy milk", now))

	s := NewNoteStore(db)
	note, err := s.Create(context.Background(), noteFixture(7, "buy milk"))
	require.NoError(t, err)

	assert.Equal(t, int64(3), note.ID)
	assert.Equal(t, int64(7), note.UserID)
	assert.Equal(t, "buy milk", note.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteStoreGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, text, created_at FROM notes").
		WithArgs(int64(99), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "text", "created_at"}))

	s := NewNoteStore(db)
	_, err = s.GetByID(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteStoreListScopesByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, text, created_at FROM notes WHERE user_id = . ORDER BY id ASC").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "text", "created_at"}).
			AddRow(1, 7, "first", now).
			AddRow(2, 7, "second", now))

	s := NewNoteStore(db)
	notes, err := s.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteStoreDelete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(3), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewNoteStore(db)
		require.NoError(t, s.Delete(context.Background(), 7, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(3), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := NewNoteStore(db)
		assert.ErrorIs(t, s.Delete(context.Background(), 7, 3), ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteStoreUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec("UPDATE notes SET text = .").
		WithArgs("after", int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, user_id, text, created_at FROM notes").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "text", "created_at"}).
			AddRow(3, 7, "after", now))

	s := NewNoteStore(db)
	note := noteFixture(7, "after")
	note.ID = 3
	updated, err := s.Update(context.Background(), note)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Equal(t, int64(7), updated.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
