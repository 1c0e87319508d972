package handlers

import (
	"context"

	"dayplan/models"
)

type NoteStore interface {
	Create(ctx context.Context, note models.Note) (models.Note, error)
	GetByID(ctx context.Context, userID, id int64) (models.Note, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TaskStore interface {
	Create(ctx context.Context, task models.Task) (models.Task, error)
	GetByID(ctx context.Context, userID, id int64) (models.Task, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, task models.Task) (models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type EventStore interface {
	Create(ctx context.Context, event models.Event) (models.Event, error)
	GetByID(ctx context.Context, userID, id int64) (models.Event, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Event, error)
	Update(ctx context.Context, event models.Event) (models.Event, error)
	Delete(ctx context.Context, userID, id int64) error
}

type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}
