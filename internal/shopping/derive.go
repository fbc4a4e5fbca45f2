// Package shopping derives the weekly shopping list from the meal plan,
// the recipe catalog and the pantry.
package shopping

import (
	"log/slog"
	"strings"

	"github.com/lulu-kitchen/recipe-hub/internal/catalog"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/pantry"
)

// quantities this close to zero are treated as fully covered
const epsilon = 1e-9

type demandKey struct {
	name string // lowercased
	unit string
}

type demand struct {
	name  string // display name from first occurrence
	unit  string
	total float64
}

// Derive computes the net ingredients to buy for the week. It is a pure
// function of its inputs.
//
// Every assigned slot is walked Monday to Sunday, breakfast to dinner.
// Slots referencing a recipe the catalog no longer knows are skipped
// with a warning; a stale slot must never break the list. Requirements
// aggregate per (case-insensitive name, unit) pair, never across units.
// Pantry stock in the exact same unit is subtracted, and only strictly
// positive remainders are emitted, in first-seen ingredient order. An
// empty result means the pantry covers the whole plan.
func Derive(plan models.MealPlan, idx *catalog.Index, stock *pantry.Stock, log *slog.Logger) []models.ShoppingItem {
	var order []demandKey
	demands := make(map[demandKey]*demand)

	for _, day := range models.Weekdays {
		dp := plan.Days[day]
		for _, slot := range models.Slots {
			id := dp.Slot(slot)
			if id == "" {
				continue
			}
			recipe, ok := idx.Get(id)
			if !ok {
				log.Warn("plan slot references unknown recipe, skipping",
					"recipe_id", id,
					"day", day,
					"slot", slot,
				)
				continue
			}
			for _, ing := range recipe.Ingredients {
				k := demandKey{name: strings.ToLower(strings.TrimSpace(ing.Name)), unit: ing.Unit}
				d, seen := demands[k]
				if !seen {
					d = &demand{name: strings.TrimSpace(ing.Name), unit: ing.Unit}
					demands[k] = d
					order = append(order, k)
				}
				d.total += ing.Quantity
			}
		}
	}

	items := make([]models.ShoppingItem, 0, len(order))
	for _, k := range order {
		d := demands[k]
		remaining := d.total - stock.Quantity(d.name, d.unit)
		if remaining <= epsilon {
			continue
		}
		items = append(items, models.ShoppingItem{
			Name:     d.name,
			Quantity: remaining,
			Unit:     d.unit,
		})
	}
	return items
}
