package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/pantry"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidPrepTime   = errors.New("prep time must not be negative")
	ErrInvalidIngredient = errors.New("ingredient needs a name and a positive quantity")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// RecipeService handles business logic for the recipe catalog, its
// reviews and the can-make suggestions.
type RecipeService struct {
	recipes repository.RecipeRepository
	reviews repository.ReviewRepository
	pantry  repository.PantryRepository
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipes repository.RecipeRepository, reviews repository.ReviewRepository, pantryRepo repository.PantryRepository) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		reviews: reviews,
		pantry:  pantryRepo,
	}
}

// ListRecipes returns the full catalog with average ratings attached,
// and the reviews themselves when includeReviews is set.
func (s *RecipeService) ListRecipes(ctx context.Context, includeReviews bool) ([]models.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byRecipe := make(map[string][]models.Review)
	for _, review := range reviews {
		byRecipe[review.RecipeID] = append(byRecipe[review.RecipeID], review)
	}

	for i := range recipes {
		rs := byRecipe[recipes[i].ID]
		recipes[i].AvgRating = avgRating(rs)
		if includeReviews {
			recipes[i].Reviews = rs
		}
	}
	return recipes, nil
}

// GetRecipe returns one recipe with its reviews and average rating.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.Reviews = reviews
	recipe.AvgRating = avgRating(reviews)
	return recipe, nil
}

// CreateRecipe validates and stores a new recipe, assigning its ID.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe models.Recipe) (*models.Recipe, error) {
	recipe.Title = strings.TrimSpace(recipe.Title)
	if recipe.Title == "" {
		return nil, ErrTitleRequired
	}
	if recipe.PrepTimeMin < 0 {
		return nil, ErrInvalidPrepTime
	}
	for _, ing := range recipe.Ingredients {
		if strings.TrimSpace(ing.Name) == "" || ing.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIngredient, ing.Name)
		}
	}

	// Drop blank step lines; the web form submits trailing empties.
	steps := make([]string, 0, len(recipe.Steps))
	for _, step := range recipe.Steps {
		if strings.TrimSpace(step) != "" {
			steps = append(steps, step)
		}
	}
	recipe.Steps = steps

	recipe.ID = uuid.New().String()
	recipe.CreatedAt = time.Now().UTC()
	recipe.Reviews = nil
	recipe.AvgRating = nil

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// AddReview appends a review to an existing recipe.
func (s *RecipeService) AddReview(ctx context.Context, recipeID string, rating int, note string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		return nil, err
	}

	review := models.Review{
		ID:        uuid.New().String(),
		RecipeID:  recipeID,
		Rating:    rating,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Add(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// Suggest flags, for every recipe, whether the current pantry covers all
// of its ingredients (substitutions count, units never convert).
func (s *RecipeService) Suggest(ctx context.Context) ([]models.Suggestion, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.pantry.List(ctx)
	if err != nil {
		return nil, err
	}

	stock := pantry.NewStock(items)
	suggestions := make([]models.Suggestion, 0, len(recipes))
	for _, recipe := range recipes {
		suggestions = append(suggestions, models.Suggestion{
			ID:      recipe.ID,
			CanMake: stock.CanMake(recipe),
		})
	}
	return suggestions, nil
}

func avgRating(reviews []models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}
