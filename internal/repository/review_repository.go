package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

// ReviewRepository defines the interface for review data access.
// Reviews are append-only.
type ReviewRepository interface {
	ListAll(ctx context.Context) ([]models.Review, error)
	ListByRecipe(ctx context.Context, recipeID string) ([]models.Review, error)
	Add(ctx context.Context, review models.Review) error
}

// SQLiteReviewRepository implements ReviewRepository on sqlite.
type SQLiteReviewRepository struct {
	db *sql.DB
}

// NewSQLiteReviewRepository creates a sqlite-backed review repository.
func NewSQLiteReviewRepository(db *sql.DB) *SQLiteReviewRepository {
	return &SQLiteReviewRepository{db: db}
}

// ListAll returns every review, oldest first.
func (r *SQLiteReviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipe_id, rating, note, created_at
		FROM reviews
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// ListByRecipe returns a recipe's reviews, oldest first.
func (r *SQLiteReviewRepository) ListByRecipe(ctx context.Context, recipeID string) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, recipe_id, rating, note, created_at
		FROM reviews
		WHERE recipe_id = ?
		ORDER BY created_at, id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for recipe %s: %w", recipeID, err)
	}
	defer rows.Close()
	return collectReviews(rows)
}

// Add appends a review.
func (r *SQLiteReviewRepository) Add(ctx context.Context, review models.Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (id, recipe_id, rating, note, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		review.ID, review.RecipeID, review.Rating, review.Note, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func collectReviews(rows *sql.Rows) ([]models.Review, error) {
	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(&review.ID, &review.RecipeID, &review.Rating, &review.Note, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
