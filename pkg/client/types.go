package client

import "time"

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Substitutions []string `json:"substitutions,omitempty"`
}

// Recipe is a catalog entry as returned by the API.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	PrepTimeMin int          `json:"prep_time_min"`
	AgeRange    string       `json:"age_range"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Reviews     []Review     `json:"reviews,omitempty"`
	AvgRating   *float64     `json:"avg_rating,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Review is a rating attached to a recipe.
type Review struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Rating    int       `json:"rating"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion marks whether a recipe is fully covered by the pantry.
type Suggestion struct {
	ID      string `json:"id"`
	CanMake bool   `json:"can_make"`
}

// PantryItem is one stocked ingredient.
type PantryItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingItem is one outstanding line of the derived shopping list.
type ShoppingItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Purchased bool    `json:"purchased"`
}

// DayPlan holds the three meal slots of a single day.
type DayPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// MealPlan is a full week keyed by lowercase weekday name.
type MealPlan struct {
	WeekStart string             `json:"week_start"`
	Days      map[string]DayPlan `json:"days"`
}

// Reminder is a standalone dated note.
type Reminder struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	DueAt     time.Time `json:"due_at"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Weekdays lists the plan's day keys in week order, Monday first. The
// server keys plan days by these exact capitalized names.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Slots lists the meal slots of a day in serving order.
var Slots = []string{"breakfast", "lunch", "dinner"}
