package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeRepository defines the interface for recipe data access.
// Listed recipes carry ingredients and steps but no reviews; the
// service layer attaches those.
type RecipeRepository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) error
}

// SQLiteRecipeRepository implements RecipeRepository on sqlite.
// Ingredients and steps are stored as JSON columns; they are only ever
// read and written as a whole with their recipe.
type SQLiteRecipeRepository struct {
	db *sql.DB
}

// NewSQLiteRecipeRepository creates a sqlite-backed recipe repository.
func NewSQLiteRecipeRepository(db *sql.DB) *SQLiteRecipeRepository {
	return &SQLiteRecipeRepository{db: db}
}

// List returns all recipes ordered by creation time.
func (r *SQLiteRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, image, prep_time_min, age_range, ingredients, steps, created_at
		FROM recipes
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}

// GetByID returns a recipe by its ID.
func (r *SQLiteRecipeRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, image, prep_time_min, age_range, ingredients, steps, created_at
		FROM recipes
		WHERE id = ?`, id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecipeNotFound
	}
	return recipe, err
}

// Create inserts a new recipe.
func (r *SQLiteRecipeRepository) Create(ctx context.Context, recipe models.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO recipes (id, title, description, image, prep_time_min, age_range, ingredients, steps, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.Title, recipe.Description, recipe.Image,
		recipe.PrepTimeMin, recipe.AgeRange, string(ingredients), string(steps), recipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*models.Recipe, error) {
	var recipe models.Recipe
	var ingredients, steps string

	err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Description, &recipe.Image,
		&recipe.PrepTimeMin, &recipe.AgeRange, &ingredients, &steps, &recipe.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredients for recipe %s: %w", recipe.ID, err)
	}
	if err := json.Unmarshal([]byte(steps), &recipe.Steps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal steps for recipe %s: %w", recipe.ID, err)
	}
	return &recipe, nil
}
