package usecase

import (
	"context"
	"strings"
	"time"

	"notewell/model"
	"notewell/repository"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	DefaultSnooze  = 15 * time.Minute
	UpcomingWindow = 7 * 24 * time.Hour
)

type RemindersService struct {
	RemindersRepo *repository.RemindersRepo
	NotesRepo     *repository.NotesRepo
}

type CreateReminderInput struct {
	Title      string
	NoteID     string
	DueAt      time.Time
	Recurrence model.RecurrencePattern
	Channels   []string
}

// ComputeNextOccurrence returns the next due date for a recurrence
// pattern, or false when the pattern yields no successor. Monthly and
// yearly steps follow the calendar rather than a fixed day count.
func ComputeNextOccurrence(due time.Time, pattern model.RecurrencePattern) (time.Time, bool) {
	switch pattern {
	case model.RecurrenceDaily:
		return due.AddDate(0, 0, 1), true
	case model.RecurrenceWeekly:
		return due.AddDate(0, 0, 7), true
	case model.RecurrenceBiweekly:
		return due.AddDate(0, 0, 14), true
	case model.RecurrenceMonthly:
		return due.AddDate(0, 1, 0), true
	case model.RecurrenceYearly:
		return due.AddDate(1, 0, 0), true
	}
	return time.Time{}, false
}

// CreateReminder stores a pending reminder. The due date must be
// strictly in the future at creation time only; a pending reminder may
// age into the past without error.
func (svc *RemindersService) CreateReminder(ctx context.Context, userID string, input CreateReminderInput) (*model.Reminder, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, utils.ValidationError("reminder title is required")
	}
	if !input.DueAt.After(time.Now()) {
		return nil, utils.ValidationError("due date must be in the future")
	}
	if input.Recurrence == "" {
		input.Recurrence = model.RecurrenceNone
	}
	if !input.Recurrence.Valid() {
		return nil, utils.ValidationError("invalid recurrence pattern")
	}
	if input.NoteID != "" {
		if _, err := svc.NotesRepo.GetNote(ctx, input.NoteID, userID); err != nil {
			if err == repository.ErrNotFound {
				return nil, utils.ValidationError("note does not exist")
			}
			return nil, utils.InternalErrorf("failed to verify note", err)
		}
	}

	now := time.Now()
	reminder := &model.Reminder{
		ID:         utils.GenerateID(),
		UserID:     userID,
		NoteID:     input.NoteID,
		Title:      input.Title,
		DueAt:      input.DueAt,
		Recurrence: input.Recurrence,
		Status:     model.ReminderPending,
		Channels:   input.Channels,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.RemindersRepo.CreateReminder(ctx, reminder); err != nil {
		return nil, utils.InternalErrorf("failed to create reminder", err)
	}
	return reminder, nil
}

func (svc *RemindersService) ListReminders(ctx context.Context, userID string) ([]*model.Reminder, error) {
	reminders, err := svc.RemindersRepo.GetUserReminders(ctx, userID)
	if err != nil {
		return nil, utils.InternalErrorf("failed to list reminders", err)
	}
	if reminders == nil {
		reminders = []*model.Reminder{}
	}
	return reminders, nil
}

// ListUpcoming returns pending reminders due within the next 7 days.
func (svc *RemindersService) ListUpcoming(ctx context.Context, userID string) ([]*model.Reminder, error) {
	reminders, err := svc.RemindersRepo.GetUpcoming(ctx, userID, time.Now().Add(UpcomingWindow))
	if err != nil {
		return nil, utils.InternalErrorf("failed to list upcoming reminders", err)
	}
	if reminders == nil {
		reminders = []*model.Reminder{}
	}
	return reminders, nil
}

func (svc *RemindersService) UpdateReminder(ctx context.Context, reminderID, userID string, title *string, dueAt *time.Time, recurrence *model.RecurrencePattern, channels *[]string) (*model.Reminder, error) {
	fields := bson.M{}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, utils.ValidationError("reminder title is required")
		}
		fields["title"] = trimmed
	}
	if dueAt != nil {
		if !dueAt.After(time.Now()) {
			return nil, utils.ValidationError("due date must be in the future")
		}
		fields["due_at"] = *dueAt
	}
	if recurrence != nil {
		if !recurrence.Valid() {
			return nil, utils.ValidationError("invalid recurrence pattern")
		}
		fields["recurrence"] = *recurrence
	}
	if channels != nil {
		fields["channels"] = *channels
	}
	if len(fields) == 0 {
		return nil, utils.ValidationError("no fields to update")
	}

	err := svc.RemindersRepo.UpdateReminder(ctx, reminderID, userID, fields)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("reminder not found")
		}
		return nil, utils.InternalErrorf("failed to update reminder", err)
	}
	return svc.getReminder(ctx, reminderID, userID)
}

func (svc *RemindersService) getReminder(ctx context.Context, reminderID, userID string) (*model.Reminder, error) {
	reminder, err := svc.RemindersRepo.GetReminder(ctx, reminderID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("reminder not found")
		}
		return nil, utils.InternalErrorf("failed to fetch reminder", err)
	}
	return reminder, nil
}

// CompleteReminder marks a reminder completed. A recurring reminder
// spawns exactly one pending successor at the next computed due date;
// the original is retained.
func (svc *RemindersService) CompleteReminder(ctx context.Context, reminderID, userID string) (*model.Reminder, *model.Reminder, error) {
	reminder, err := svc.getReminder(ctx, reminderID, userID)
	if err != nil {
		return nil, nil, err
	}

	err = svc.RemindersRepo.UpdateReminder(ctx, reminderID, userID,
		bson.M{"status": model.ReminderCompleted})
	if err != nil {
		return nil, nil, utils.InternalErrorf("failed to complete reminder", err)
	}
	reminder.Status = model.ReminderCompleted

	nextDue, ok := ComputeNextOccurrence(reminder.DueAt, reminder.Recurrence)
	if !ok {
		return reminder, nil, nil
	}

	now := time.Now()
	successor := &model.Reminder{
		ID:         utils.GenerateID(),
		UserID:     reminder.UserID,
		NoteID:     reminder.NoteID,
		Title:      reminder.Title,
		DueAt:      nextDue,
		Recurrence: reminder.Recurrence,
		Status:     model.ReminderPending,
		Channels:   reminder.Channels,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.RemindersRepo.CreateReminder(ctx, successor); err != nil {
		return nil, nil, utils.InternalErrorf("failed to create next occurrence", err)
	}
	return reminder, successor, nil
}

// SnoozeReminder pushes the due date to now+d (default 15 minutes) and
// forces the reminder back to pending whatever its prior status.
func (svc *RemindersService) SnoozeReminder(ctx context.Context, reminderID, userID string, d time.Duration) (*model.Reminder, error) {
	if d <= 0 {
		d = DefaultSnooze
	}

	err := svc.RemindersRepo.UpdateReminder(ctx, reminderID, userID, bson.M{
		"due_at": time.Now().Add(d),
		"status": model.ReminderPending,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, utils.NotFoundError("reminder not found")
		}
		return nil, utils.InternalErrorf("failed to snooze reminder", err)
	}
	return svc.getReminder(ctx, reminderID, userID)
}

func (svc *RemindersService) DeleteReminder(ctx context.Context, reminderID, userID string) error {
	err := svc.RemindersRepo.DeleteReminder(ctx, reminderID, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return utils.NotFoundError("reminder not found")
		}
		return utils.InternalErrorf("failed to delete reminder", err)
	}
	return nil
}
