package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/planner"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
)

var (
	ErrUnknownRecipe = errors.New("plan references an unknown recipe")
)

// MealPlanService handles business logic for weekly plans. All week
// dates are normalized to the Monday of their ISO week before use, so a
// Sunday keys the week that is ending, not the next one.
type MealPlanService struct {
	plans             repository.MealPlanRepository
	recipes           repository.RecipeRepository
	preferredAgeRange string
}

// NewMealPlanService creates a new meal plan service. preferredAgeRange
// steers the auto-fill policy and may be empty.
func NewMealPlanService(plans repository.MealPlanRepository, recipes repository.RecipeRepository, preferredAgeRange string) *MealPlanService {
	return &MealPlanService{
		plans:             plans,
		recipes:           recipes,
		preferredAgeRange: preferredAgeRange,
	}
}

// Load returns the plan for the week containing weekDate, or a fresh
// all-empty plan when none is stored yet. The empty plan is not
// persisted until the caller saves it.
func (s *MealPlanService) Load(ctx context.Context, weekDate string) (*models.MealPlan, error) {
	weekStart, err := planner.ParseWeekStart(weekDate)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.Get(ctx, planner.FormatWeekStart(weekStart))
	if errors.Is(err, repository.ErrPlanNotFound) {
		empty := planner.EmptyPlan(weekStart)
		return &empty, nil
	}
	if err != nil {
		return nil, err
	}

	// Stored plans predate canonicalization only in theory, but a cheap
	// re-canonicalization keeps the 7-day/3-slot invariant for callers.
	canonical, err := planner.Canonicalize(weekStart, plan.Days)
	if err != nil {
		return nil, err
	}
	return &canonical, nil
}

// Save validates and persists a whole-week snapshot. The write is
// all-or-nothing: on any validation or storage failure the previously
// persisted week is left untouched and the error is returned.
func (s *MealPlanService) Save(ctx context.Context, weekDate string, days map[string]models.DayPlan) (*models.MealPlan, error) {
	weekStart, err := planner.ParseWeekStart(weekDate)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Canonicalize(weekStart, days)
	if err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, plan); err != nil {
		return nil, err
	}

	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// AutoFill populates every empty slot of the stored week (or of a fresh
// plan) and persists the result. Slots the user already filled are never
// overwritten.
func (s *MealPlanService) AutoFill(ctx context.Context, weekDate string) (*models.MealPlan, error) {
	plan, err := s.Load(ctx, weekDate)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	filled := planner.AutoFill(*plan, recipes, s.preferredAgeRange)
	if err := s.plans.Save(ctx, filled); err != nil {
		return nil, err
	}
	return &filled, nil
}

// validateReferences rejects plans whose slots name recipes the catalog
// does not know. Stale references degrade to empty on read paths, but a
// save must not introduce them.
func (s *MealPlanService) validateReferences(ctx context.Context, plan models.MealPlan) error {
	ids := planner.RecipeIDs(plan)
	if len(ids) == 0 {
		return nil
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		known[r.ID] = true
	}

	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %s", ErrUnknownRecipe, id)
		}
	}
	return nil
}
