package models

import "strings"

// ValidationError is returned when a write payload fails a field check.
// Handlers surface it as a 400 with the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateNote trims the text and requires it to be non-empty.
func ValidateNote(note *Note) error {
	note.Text = strings.TrimSpace(note.Text)
	if note.Text == "" {
		return &ValidationError{Field: "note", Message: "note is required"}
	}
	return nil
}

// ValidateTask trims the text, defaults the status to pending and restricts
// it to the two known values. Text and due date are optional.
func ValidateTask(task *Task) error {
	task.Text = strings.TrimSpace(task.Text)
	if task.Status == "" {
		task.Status = TaskStatusPending
	}
	if task.Status != TaskStatusPending && task.Status != TaskStatusCompleted {
		return &ValidationError{Field: "status", Message: "status must be pending or completed"}
	}
	return nil
}

// ValidateEvent trims the description and requires a date-time.
func ValidateEvent(event *Event) error {
	event.Description = strings.TrimSpace(event.Description)
	if event.DateTime.IsZero() {
		return &ValidationError{Field: "dateTime", Message: "dateTime is required"}
	}
	return nil
}
