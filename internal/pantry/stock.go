// Package pantry provides the in-memory stock view derived from the
// household's pantry items.
package pantry

import (
	"strings"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

type stockKey struct {
	name string // lowercased
	unit string
}

// Stock is an aggregated quantity lookup keyed by (ingredient name,
// unit). Names are matched case-insensitively. Units are never
// converted: stock tracked in grams contributes nothing to a demand
// in cups.
type Stock struct {
	quantities map[stockKey]float64
}

// NewStock aggregates pantry items into a stock view. Duplicate entries
// for the same name and unit sum up.
func NewStock(items []models.PantryItem) *Stock {
	quantities := make(map[stockKey]float64, len(items))
	for _, item := range items {
		k := stockKey{name: strings.ToLower(strings.TrimSpace(item.Name)), unit: item.Unit}
		quantities[k] += item.Quantity
	}
	return &Stock{quantities: quantities}
}

// Quantity returns the stock for the given name and unit, 0 when the
// exact pair is not tracked.
func (s *Stock) Quantity(name, unit string) float64 {
	return s.quantities[stockKey{name: strings.ToLower(strings.TrimSpace(name)), unit: unit}]
}

// Covers reports whether the stock satisfies one ingredient requirement,
// either directly or through one of its listed substitutions, in the
// requirement's own unit.
func (s *Stock) Covers(ing models.Ingredient) bool {
	if s.Quantity(ing.Name, ing.Unit) >= ing.Quantity {
		return true
	}
	for _, sub := range ing.Substitutions {
		if s.Quantity(sub, ing.Unit) >= ing.Quantity {
			return true
		}
	}
	return false
}

// CanMake reports whether every ingredient of the recipe is covered.
func (s *Stock) CanMake(r models.Recipe) bool {
	for _, ing := range r.Ingredients {
		if !s.Covers(ing) {
			return false
		}
	}
	return true
}
