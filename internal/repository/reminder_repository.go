package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderRepository defines the interface for reminder data access.
type ReminderRepository interface {
	List(ctx context.Context) ([]models.Reminder, error)
	Add(ctx context.Context, reminder models.Reminder) error
	Delete(ctx context.Context, id string) error
}

// SQLiteReminderRepository implements ReminderRepository on sqlite.
type SQLiteReminderRepository struct {
	db *sql.DB
}

// NewSQLiteReminderRepository creates a sqlite-backed reminder repository.
func NewSQLiteReminderRepository(db *sql.DB) *SQLiteReminderRepository {
	return &SQLiteReminderRepository{db: db}
}

// List returns all reminders ordered by due time.
func (r *SQLiteReminderRepository) List(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, due_at, type, created_at
		FROM reminders
		ORDER BY due_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		if err := rows.Scan(&reminder.ID, &reminder.Title, &reminder.DueAt, &reminder.Type, &reminder.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

// Add inserts a reminder.
func (r *SQLiteReminderRepository) Add(ctx context.Context, reminder models.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, title, due_at, type, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		reminder.ID, reminder.Title, reminder.DueAt, reminder.Type, reminder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// Delete removes a reminder by ID.
func (r *SQLiteReminderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrReminderNotFound
	}
	return nil
}
