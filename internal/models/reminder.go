package models

import "time"

// ReminderType categorizes a reminder.
type ReminderType string

const (
	ReminderMeal     ReminderType = "meal"
	ReminderShopping ReminderType = "shopping"
	ReminderOther    ReminderType = "other"
)

// Valid reports whether t is one of the known reminder types.
func (t ReminderType) Valid() bool {
	switch t {
	case ReminderMeal, ReminderShopping, ReminderOther:
		return true
	}
	return false
}

// Reminder is a standalone dated note with its own lifecycle.
type Reminder struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	DueAt     time.Time    `json:"due_at"`
	Type      ReminderType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
}
