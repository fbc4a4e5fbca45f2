package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Session holds the state a single kitchen screen works with: the catalog,
// the pantry view, an editable copy of one week's plan and the derived
// shopping list. Slot edits stay local until SavePlan pushes the whole week;
// purchased flags never leave the session.
type Session struct {
	client *Client

	recipes  []Recipe
	byID     map[string]Recipe
	pantry   []PantryItem
	plan     MealPlan
	shopping []ShoppingItem
}

// NewSession creates a session over c. Call Open before using it.
func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// Open loads the catalog, pantry, plan and shopping list for the week
// containing date (YYYY-MM-DD). An empty date means today.
func (s *Session) Open(ctx context.Context, date string) error {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	plan, err := s.client.GetPlan(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}
	s.plan = *plan

	if err := s.refreshCatalog(ctx); err != nil {
		return err
	}
	if err := s.refreshPantry(ctx); err != nil {
		return err
	}
	return s.refreshShopping(ctx)
}

// Recipes returns the loaded catalog.
func (s *Session) Recipes() []Recipe { return s.recipes }

// Pantry returns the loaded pantry inventory.
func (s *Session) Pantry() []PantryItem { return s.pantry }

// Plan returns the editable copy of the week's plan.
func (s *Session) Plan() MealPlan { return s.plan }

// Shopping returns the derived shopping list with session-local purchased flags.
func (s *Session) Shopping() []ShoppingItem { return s.shopping }

// WeekStart returns the Monday the open week starts on.
func (s *Session) WeekStart() string { return s.plan.WeekStart }

// RecipeTitle resolves a slot's recipe ID to its title. Empty slots and
// references to recipes no longer in the catalog resolve to "".
func (s *Session) RecipeTitle(id string) string {
	if id == "" {
		return ""
	}
	recipe, ok := s.byID[id]
	if !ok {
		return ""
	}
	return recipe.Title
}

// SetSlot assigns a recipe to one slot of the local plan copy. Day and slot
// names match case-insensitively and are stored under the server's canonical
// keys. Pass an empty recipeID to clear the slot. Nothing reaches the server
// until SavePlan.
func (s *Session) SetSlot(day, slot, recipeID string) error {
	canonDay, ok := canonical(Weekdays, day)
	if !ok {
		return fmt.Errorf("unknown day %q", day)
	}
	canonSlot, ok := canonical(Slots, slot)
	if !ok {
		return fmt.Errorf("unknown slot %q", slot)
	}
	if recipeID != "" {
		if _, ok := s.byID[recipeID]; !ok {
			return fmt.Errorf("unknown recipe %q", recipeID)
		}
	}

	if s.plan.Days == nil {
		s.plan.Days = make(map[string]DayPlan, len(Weekdays))
	}
	d := s.plan.Days[canonDay]
	switch canonSlot {
	case "breakfast":
		d.Breakfast = recipeID
	case "lunch":
		d.Lunch = recipeID
	case "dinner":
		d.Dinner = recipeID
	}
	s.plan.Days[canonDay] = d
	return nil
}

// SavePlan pushes the whole local week to the server, then reloads the stored
// plan and the shopping list it now derives.
func (s *Session) SavePlan(ctx context.Context) error {
	saved, err := s.client.SavePlan(ctx, s.plan)
	if err != nil {
		return err
	}
	s.plan = *saved
	return s.refreshShopping(ctx)
}

// AutoFillWeek asks the server to fill empty slots, then reloads the plan and
// shopping list. Manually picked slots are never touched.
func (s *Session) AutoFillWeek(ctx context.Context) error {
	plan, err := s.client.AutoFill(ctx, s.plan.WeekStart)
	if err != nil {
		return err
	}
	s.plan = *plan
	return s.refreshShopping(ctx)
}

// AddPantryItem stocks an ingredient and refreshes the pantry and shopping views.
func (s *Session) AddPantryItem(ctx context.Context, name string, quantity float64, unit string) error {
	if _, err := s.client.AddPantryItem(ctx, name, quantity, unit); err != nil {
		return err
	}
	if err := s.refreshPantry(ctx); err != nil {
		return err
	}
	return s.refreshShopping(ctx)
}

// RemovePantryItem deletes a pantry entry and refreshes the pantry and
// shopping views.
func (s *Session) RemovePantryItem(ctx context.Context, id string) error {
	if err := s.client.RemovePantryItem(ctx, id); err != nil {
		return err
	}
	if err := s.refreshPantry(ctx); err != nil {
		return err
	}
	return s.refreshShopping(ctx)
}

// AddRecipe adds a recipe to the catalog and refreshes the loaded catalog.
func (s *Session) AddRecipe(ctx context.Context, recipe Recipe) (*Recipe, error) {
	created, err := s.client.CreateRecipe(ctx, recipe)
	if err != nil {
		return nil, err
	}
	if err := s.refreshCatalog(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// TogglePurchased flips the purchased flag of the i-th shopping item. The flag
// lives only in this session; refreshes carry it over by ingredient and unit.
func (s *Session) TogglePurchased(i int) error {
	if i < 0 || i >= len(s.shopping) {
		return fmt.Errorf("shopping item %d out of range", i)
	}
	s.shopping[i].Purchased = !s.shopping[i].Purchased
	return nil
}

func (s *Session) refreshCatalog(ctx context.Context) error {
	recipes, err := s.client.ListRecipes(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	s.recipes = recipes
	s.byID = make(map[string]Recipe, len(recipes))
	for _, r := range recipes {
		s.byID[r.ID] = r
	}
	return nil
}

func (s *Session) refreshPantry(ctx context.Context) error {
	items, err := s.client.ListPantry(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pantry: %w", err)
	}
	s.pantry = items
	return nil
}

func (s *Session) refreshShopping(ctx context.Context) error {
	items, err := s.client.ShoppingList(ctx, s.plan.WeekStart)
	if err != nil {
		return fmt.Errorf("failed to load shopping list: %w", err)
	}

	purchased := make(map[string]bool, len(s.shopping))
	for _, it := range s.shopping {
		if it.Purchased {
			purchased[shoppingKey(it)] = true
		}
	}
	for i := range items {
		items[i].Purchased = purchased[shoppingKey(items[i])]
	}
	s.shopping = items
	return nil
}

func shoppingKey(it ShoppingItem) string {
	return strings.ToLower(it.Name) + "\x00" + it.Unit
}

// canonical matches v against list case-insensitively and returns the
// canonical form from the list.
func canonical(list []string, v string) (string, bool) {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return item, true
		}
	}
	return "", false
}
