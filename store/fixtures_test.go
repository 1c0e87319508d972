package store

import (
	"time"

	"dayplan/models"
)

func noteFixture(userID int64, text string) models.Note {
	return models.Note{UserID: userID, Text: text}
}

func taskFixture(userID int64, text, status string, due *time.Time) models.Task {
	return models.Task{UserID: userID, Text: text, Status: status, DueDate: due}
}

func eventFixture(userID int64, description string, at time.Time) models.Event {
	return models.Event{UserID: userID, Description: description, DateTime: at}
}
