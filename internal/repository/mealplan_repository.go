package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

var (
	ErrPlanNotFound = errors.New("meal plan not found")
)

// MealPlanRepository defines the interface for weekly plan data access.
// Plans are keyed by their normalized week-start date.
type MealPlanRepository interface {
	Get(ctx context.Context, weekStart string) (*models.MealPlan, error)
	Save(ctx context.Context, plan models.MealPlan) error
}

// SQLiteMealPlanRepository implements MealPlanRepository on sqlite.
// The whole week is one row with the day assignments as a JSON column,
// so a save is a single UPSERT: either the entire new week lands or the
// previous persisted state stays intact.
type SQLiteMealPlanRepository struct {
	db *sql.DB
}

// NewSQLiteMealPlanRepository creates a sqlite-backed plan repository.
func NewSQLiteMealPlanRepository(db *sql.DB) *SQLiteMealPlanRepository {
	return &SQLiteMealPlanRepository{db: db}
}

// Get returns the plan stored for the given week start.
func (r *SQLiteMealPlanRepository) Get(ctx context.Context, weekStart string) (*models.MealPlan, error) {
	var daysJSON string
	err := r.db.QueryRowContext(ctx,
		`SELECT days FROM meal_plans WHERE week_start = ?`, weekStart).Scan(&daysJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal plan for %s: %w", weekStart, err)
	}

	var days map[string]models.DayPlan
	if err := json.Unmarshal([]byte(daysJSON), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan for %s: %w", weekStart, err)
	}
	return &models.MealPlan{WeekStart: weekStart, Days: days}, nil
}

// Save persists the whole week, replacing any previous snapshot.
func (r *SQLiteMealPlanRepository) Save(ctx context.Context, plan models.MealPlan) error {
	daysJSON, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal meal plan days: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO meal_plans (week_start, days, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(week_start) DO UPDATE SET days = excluded.days, updated_at = excluded.updated_at`,
		plan.WeekStart, string(daysJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save meal plan for %s: %w", plan.WeekStart, err)
	}
	return nil
}
