package dto

import (
	"time"

	"notewell/model"
)

type CreateReminderRequest struct {
	Title      string    `json:"title" binding:"required"`
	NoteID     string    `json:"note_id"`
	DueAt      time.Time `json:"due_at" binding:"required"`
	Recurrence string    `json:"recurrence"`
	Channels   []string  `json:"channels"`
}

type UpdateReminderRequest struct {
	Title      *string    `json:"title"`
	DueAt      *time.Time `json:"due_at"`
	Recurrence *string    `json:"recurrence"`
	Channels   *[]string  `json:"channels"`
}

type SnoozeReminderRequest struct {
	Minutes int `json:"minutes"`
}

type ReminderResponse struct {
	ID         string    `json:"id"`
	NoteID     string    `json:"note_id,omitempty"`
	Title      string    `json:"title"`
	DueAt      time.Time `json:"due_at"`
	Recurrence string    `json:"recurrence"`
	Status     string    `json:"status"`
	Channels   []string  `json:"channels,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CompleteReminderResponse returns the completed reminder and, for
// recurring reminders, the pending successor.
type CompleteReminderResponse struct {
	Reminder ReminderResponse  `json:"reminder"`
	Next     *ReminderResponse `json:"next,omitempty"`
}

func ToReminderResponse(reminder *model.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:         reminder.ID,
		NoteID:     reminder.NoteID,
		Title:      reminder.Title,
		DueAt:      reminder.DueAt,
		Recurrence: string(reminder.Recurrence),
		Status:     string(reminder.Status),
		Channels:   reminder.Channels,
		CreatedAt:  reminder.CreatedAt,
		UpdatedAt:  reminder.UpdatedAt,
	}
}

func ToReminderResponses(reminders []*model.Reminder) []ReminderResponse {
	responses := make([]ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		responses[i] = ToReminderResponse(reminder)
	}
	return responses
}
