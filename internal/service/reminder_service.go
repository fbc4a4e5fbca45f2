package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
)

var (
	ErrInvalidReminderType = errors.New("reminder type must be meal, shopping or other")
	ErrInvalidDueDate      = errors.New("invalid due date")
)

// The web client's datetime-local input submits this layout; full
// RFC 3339 is accepted too.
const dueAtLocalLayout = "2006-01-02T15:04"

// ReminderService handles business logic for reminders.
type ReminderService struct {
	reminders repository.ReminderRepository
}

// NewReminderService creates a new reminder service.
func NewReminderService(reminders repository.ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders}
}

// ListReminders returns all reminders ordered by due time.
func (s *ReminderService) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	return s.reminders.List(ctx)
}

// AddReminder validates and stores a reminder, assigning its ID.
func (s *ReminderService) AddReminder(ctx context.Context, title, dueAt string, typ models.ReminderType) (*models.Reminder, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !typ.Valid() {
		return nil, ErrInvalidReminderType
	}
	due, err := parseDueAt(dueAt)
	if err != nil {
		return nil, err
	}

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		Title:     title,
		DueAt:     due,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reminders.Add(ctx, reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// RemoveReminder deletes a reminder by ID.
func (s *ReminderService) RemoveReminder(ctx context.Context, id string) error {
	return s.reminders.Delete(ctx, id)
}

func parseDueAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(dueAtLocalLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
}
