package service

import (
	"context"
	"log/slog"

	"github.com/lulu-kitchen/recipe-hub/internal/catalog"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/pantry"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
	"github.com/lulu-kitchen/recipe-hub/internal/shopping"
)

// ShoppingService derives the weekly shopping list from persisted state.
type ShoppingService struct {
	plans      *MealPlanService
	recipes    repository.RecipeRepository
	pantryRepo repository.PantryRepository
	log        *slog.Logger
}

// NewShoppingService creates a new shopping list service.
func NewShoppingService(plans *MealPlanService, recipes repository.RecipeRepository, pantryRepo repository.PantryRepository, log *slog.Logger) *ShoppingService {
	return &ShoppingService{
		plans:      plans,
		recipes:    recipes,
		pantryRepo: pantryRepo,
		log:        log,
	}
}

// ForWeek loads the plan, catalog and pantry for the week containing
// weekDate and derives the net shopping list. A week with no stored
// plan, or a pantry that covers everything, yields an empty list.
func (s *ShoppingService) ForWeek(ctx context.Context, weekDate string) ([]models.ShoppingItem, error) {
	plan, err := s.plans.Load(ctx, weekDate)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.pantryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return shopping.Derive(*plan, catalog.NewIndex(recipes), pantry.NewStock(items), s.log), nil
}
