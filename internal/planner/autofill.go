package planner

import (
	"sort"
	"strings"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

// AutoFill assigns a recipe to every empty slot of plan and returns the
// result as a new plan; slots that already hold a recipe are never
// touched, so running it on a fully populated plan is a no-op.
//
// Selection is deterministic. Recipes matching the household's preferred
// age range form the primary pool; the rest are only drawn on when every
// primary candidate is already on the day's menu. Within a pool the
// least-used recipe this week wins, skipping recipes already assigned
// that day, with ties broken by title. Repeats within a day happen only
// when the whole catalog is smaller than a day's slot count.
func AutoFill(plan models.MealPlan, recipes []models.Recipe, preferredAgeRange string) models.MealPlan {
	out := plan.Clone()
	if len(recipes) == 0 {
		return out
	}

	var preferred, rest []models.Recipe
	for _, r := range recipes {
		if matchesAgeRange(r, preferredAgeRange) {
			preferred = append(preferred, r)
		} else {
			rest = append(rest, r)
		}
	}
	sortByTitle(preferred)
	sortByTitle(rest)

	combined := make([]models.Recipe, 0, len(preferred)+len(rest))
	combined = append(combined, preferred...)
	combined = append(combined, rest...)

	// Seed usage counts with what the user already planned so variety
	// accounts for manual picks too.
	used := make(map[string]int)
	for _, day := range models.Weekdays {
		dp := out.Days[day]
		for _, slot := range models.Slots {
			if id := dp.Slot(slot); id != "" {
				used[id]++
			}
		}
	}

	for _, day := range models.Weekdays {
		dp := out.Days[day]

		inDay := make(map[string]bool)
		for _, slot := range models.Slots {
			if id := dp.Slot(slot); id != "" {
				inDay[id] = true
			}
		}

		for _, slot := range models.Slots {
			if dp.Slot(slot) != "" {
				continue
			}
			pick, ok := leastUsed(preferred, used, inDay)
			if !ok {
				pick, ok = leastUsed(rest, used, inDay)
			}
			if !ok {
				// Catalog smaller than a day's slot count; a repeat is
				// unavoidable, so ignore the same-day restriction.
				pick, _ = leastUsed(combined, used, nil)
			}
			dp.SetSlot(slot, pick.ID)
			used[pick.ID]++
			inDay[pick.ID] = true
		}
		out.Days[day] = dp
	}

	return out
}

// leastUsed returns the candidate with the lowest week-wide use count
// that is not already assigned in the day, preserving candidate order on
// ties. ok is false when every candidate is excluded.
func leastUsed(candidates []models.Recipe, used map[string]int, inDay map[string]bool) (models.Recipe, bool) {
	best := -1
	for i, c := range candidates {
		if inDay[c.ID] {
			continue
		}
		if best == -1 || used[c.ID] < used[candidates[best].ID] {
			best = i
		}
	}
	if best == -1 {
		return models.Recipe{}, false
	}
	return candidates[best], true
}

func sortByTitle(recipes []models.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		if recipes[i].Title != recipes[j].Title {
			return recipes[i].Title < recipes[j].Title
		}
		return recipes[i].ID < recipes[j].ID
	})
}

func matchesAgeRange(r models.Recipe, preferred string) bool {
	return preferred != "" && strings.EqualFold(strings.TrimSpace(r.AgeRange), strings.TrimSpace(preferred))
}
