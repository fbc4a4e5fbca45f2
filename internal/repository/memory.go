package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

// In-memory repository implementations, primarily for tests. They keep
// insertion order, matching the sqlite implementations' created_at
// ordering.

// InMemoryRecipeRepository implements RecipeRepository in memory.
type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes []models.Recipe
}

// NewInMemoryRecipeRepository creates an empty in-memory recipe repository.
func NewInMemoryRecipeRepository() *InMemoryRecipeRepository {
	return &InMemoryRecipeRepository{}
}

func (r *InMemoryRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}

func (r *InMemoryRecipeRepository) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, recipe := range r.recipes {
		if recipe.ID == id {
			recipe := recipe
			return &recipe, nil
		}
	}
	return nil, ErrRecipeNotFound
}

func (r *InMemoryRecipeRepository) Create(ctx context.Context, recipe models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes = append(r.recipes, recipe)
	return nil
}

// InMemoryReviewRepository implements ReviewRepository in memory.
type InMemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewInMemoryReviewRepository creates an empty in-memory review repository.
func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{}
}

func (r *InMemoryReviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

func (r *InMemoryReviewRepository) ListByRecipe(ctx context.Context, recipeID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for _, review := range r.reviews {
		if review.RecipeID == recipeID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *InMemoryReviewRepository) Add(ctx context.Context, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

// InMemoryPantryRepository implements PantryRepository in memory.
type InMemoryPantryRepository struct {
	mu    sync.RWMutex
	items []models.PantryItem
}

// NewInMemoryPantryRepository creates an empty in-memory pantry repository.
func NewInMemoryPantryRepository() *InMemoryPantryRepository {
	return &InMemoryPantryRepository{}
}

func (r *InMemoryPantryRepository) List(ctx context.Context) ([]models.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PantryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryPantryRepository) Add(ctx context.Context, item models.PantryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *InMemoryPantryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrPantryItemNotFound
}

// InMemoryMealPlanRepository implements MealPlanRepository in memory.
type InMemoryMealPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]models.MealPlan
}

// NewInMemoryMealPlanRepository creates an empty in-memory plan repository.
func NewInMemoryMealPlanRepository() *InMemoryMealPlanRepository {
	return &InMemoryMealPlanRepository{plans: make(map[string]models.MealPlan)}
}

func (r *InMemoryMealPlanRepository) Get(ctx context.Context, weekStart string) (*models.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[weekStart]
	if !ok {
		return nil, ErrPlanNotFound
	}
	clone := plan.Clone()
	return &clone, nil
}

func (r *InMemoryMealPlanRepository) Save(ctx context.Context, plan models.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.WeekStart] = plan.Clone()
	return nil
}

// InMemoryReminderRepository implements ReminderRepository in memory.
type InMemoryReminderRepository struct {
	mu        sync.RWMutex
	reminders []models.Reminder
}

// NewInMemoryReminderRepository creates an empty in-memory reminder repository.
func NewInMemoryReminderRepository() *InMemoryReminderRepository {
	return &InMemoryReminderRepository{}
}

func (r *InMemoryReminderRepository) List(ctx context.Context) ([]models.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Reminder, len(r.reminders))
	copy(out, r.reminders)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out, nil
}

func (r *InMemoryReminderRepository) Add(ctx context.Context, reminder models.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reminders = append(r.reminders, reminder)
	return nil
}

func (r *InMemoryReminderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, reminder := range r.reminders {
		if reminder.ID == id {
			r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)
			return nil
		}
	}
	return ErrReminderNotFound
}
