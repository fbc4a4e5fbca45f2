package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

var (
	ErrPantryItemNotFound = errors.New("pantry item not found")
)

// PantryRepository defines the interface for pantry data access.
type PantryRepository interface {
	List(ctx context.Context) ([]models.PantryItem, error)
	Add(ctx context.Context, item models.PantryItem) error
	Delete(ctx context.Context, id string) error
}

// SQLitePantryRepository implements PantryRepository on sqlite.
type SQLitePantryRepository struct {
	db *sql.DB
}

// NewSQLitePantryRepository creates a sqlite-backed pantry repository.
func NewSQLitePantryRepository(db *sql.DB) *SQLitePantryRepository {
	return &SQLitePantryRepository{db: db}
}

// List returns all pantry items, oldest first.
func (r *SQLitePantryRepository) List(ctx context.Context) ([]models.PantryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, unit, created_at
		FROM pantry_items
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}
	defer rows.Close()

	var items []models.PantryItem
	for rows.Next() {
		var item models.PantryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Add inserts a pantry item.
func (r *SQLitePantryRepository) Add(ctx context.Context, item models.PantryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pantry_items (id, name, quantity, unit, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, item.Unit, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert pantry item: %w", err)
	}
	return nil
}

// Delete removes a pantry item by ID.
func (r *SQLitePantryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pantry_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pantry item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrPantryItemNotFound
	}
	return nil
}
