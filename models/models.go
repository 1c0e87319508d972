package models

import "time"

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID      int64      `json:"id"`
	UserID  int64      `json:"userId"`
	Text    string     `json:"task"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"dueDate"`
}

type Event struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Description string    `json:"event"`
	DateTime    time.Time `json:"dateTime"`
}
