package models

import "time"

// Ingredient is one requirement line of a recipe. Name matching against
// the pantry is case-insensitive; units are opaque labels and are never
// converted between.
type Ingredient struct {
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	Unit          string   `json:"unit"`
	Substitutions []string `json:"substitutions,omitempty"`
}

// Recipe represents a recipe in the household catalog.
// Schema matches the payloads the web client exchanges.
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

// Review is an append-only rating with an optional note, owned by a recipe.
type Review struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Rating    int       `json:"rating"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Suggestion flags whether the current pantry covers a recipe's ingredients.
type Suggestion struct {
	ID      string `json:"id"`
	CanMake bool   `json:"can_make"`
}
