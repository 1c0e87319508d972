package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"dayplan/models"
)

type TaskStore struct {
	db *sql.DB
}

func NewTaskStore(db *sql.DB) *TaskStore {
	return &TaskStore{db: db}
}

func (s *TaskStore) Create(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := squirrel.
		Insert("tasks").
		Columns("user_id", "text", "status", "due_date").
		Values(task.UserID, task.Text, task.Status, task.DueDate).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("task id: %w", err)
	}

	return s.GetByID(ctx, task.UserID, id)
}

func (s *TaskStore) GetByID(ctx context.Context, userID, id int64) (models.Task, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "text", "status", "due_date").
		From("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("build query: %w", err)
	}

	var task models.Task
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&task.ID, &task.UserID, &task.Text, &task.Status, &task.DueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// ListForUser returns the user's tasks ordered by due date ascending.
// MySQL sorts NULL due dates first, matching tasks with no deadline
// surfacing ahead of dated ones.
func (s *TaskStore) ListForUser(ctx context.Context, userID int64) ([]models.Task, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "text", "status", "due_date").
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("due_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.UserID, &task.Text, &task.Status, &task.DueDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskStore) Update(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := squirrel.
		Update("tasks").
		Set("text", task.Text).
		Set("status", task.Status).
		Set("due_date", task.DueDate).
		Where(squirrel.Eq{"id": task.ID}).
		Where(squirrel.Eq{"user_id": task.UserID}).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return models.Task{}, fmt.Errorf("update task %d: %w", task.ID, err)
	}

	return s.GetByID(ctx, task.UserID, task.ID)
}

func (s *TaskStore) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := squirrel.
		Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
