package planner

import (
	"testing"
	"time"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

func testRecipes() []models.Recipe {
	return []models.Recipe{
		{ID: "r1", Title: "Apple Porridge", AgeRange: "6-12 months"},
		{ID: "r2", Title: "Banana Mash", AgeRange: "6-12 months"},
		{ID: "r3", Title: "Carrot Soup", AgeRange: "1-3 years"},
		{ID: "r4", Title: "Veggie Pasta", AgeRange: "1-3 years"},
		{ID: "r5", Title: "Egg Scramble", AgeRange: "6-12 months"},
	}
}

func mondayPlan() models.MealPlan {
	return EmptyPlan(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestAutoFill_FillsEverySlot(t *testing.T) {
	got := AutoFill(mondayPlan(), testRecipes(), "")

	for _, day := range models.Weekdays {
		for _, slot := range models.Slots {
			if got.Days[day].Slot(slot) == "" {
				t.Errorf("slot %s/%s left empty", day, slot)
			}
		}
	}
}

func TestAutoFill_NeverOverwrites(t *testing.T) {
	plan := mondayPlan()
	plan.Days["Wednesday"] = models.DayPlan{Lunch: "r4"}

	got := AutoFill(plan, testRecipes(), "6-12 months")

	if got.Days["Wednesday"].Lunch != "r4" {
		t.Errorf("populated slot was overwritten: got %q", got.Days["Wednesday"].Lunch)
	}
}

func TestAutoFill_NoOpOnFullPlan(t *testing.T) {
	plan := mondayPlan()
	for _, day := range models.Weekdays {
		plan.Days[day] = models.DayPlan{Breakfast: "r1", Lunch: "r2", Dinner: "r3"}
	}

	got := AutoFill(plan, testRecipes(), "6-12 months")

	for _, day := range models.Weekdays {
		if got.Days[day] != plan.Days[day] {
			t.Errorf("day %s changed: %+v", day, got.Days[day])
		}
	}
}

func TestAutoFill_DoesNotMutateInput(t *testing.T) {
	plan := mondayPlan()
	AutoFill(plan, testRecipes(), "")

	for _, day := range models.Weekdays {
		if !plan.Days[day].Empty() {
			t.Errorf("input plan mutated on %s", day)
		}
	}
}

func TestAutoFill_NoRepeatWithinDay(t *testing.T) {
	got := AutoFill(mondayPlan(), testRecipes(), "")

	for _, day := range models.Weekdays {
		dp := got.Days[day]
		seen := make(map[string]bool)
		for _, slot := range models.Slots {
			id := dp.Slot(slot)
			if seen[id] {
				t.Errorf("recipe %s assigned twice on %s", id, day)
			}
			seen[id] = true
		}
	}
}

func TestAutoFill_RespectsManualPickWithinDay(t *testing.T) {
	plan := mondayPlan()
	plan.Days["Monday"] = models.DayPlan{Breakfast: "r1"}

	got := AutoFill(plan, testRecipes(), "")

	dp := got.Days["Monday"]
	if dp.Lunch == "r1" || dp.Dinner == "r1" {
		t.Errorf("manual pick repeated within the day: %+v", dp)
	}
}

func TestAutoFill_PrefersAgeRange(t *testing.T) {
	got := AutoFill(mondayPlan(), testRecipes(), "6-12 months")

	matching := map[string]bool{"r1": true, "r2": true, "r5": true}
	count := 0
	total := 0
	for _, day := range models.Weekdays {
		for _, slot := range models.Slots {
			total++
			if matching[got.Days[day].Slot(slot)] {
				count++
			}
		}
	}
	// Three matching recipes cover three slots per day without repeats,
	// so nothing outside the preferred range should ever be needed.
	if count != total {
		t.Errorf("expected all %d slots to use preferred recipes, got %d", total, count)
	}
}

func TestAutoFill_DistributesVariety(t *testing.T) {
	got := AutoFill(mondayPlan(), testRecipes(), "")

	counts := make(map[string]int)
	for _, day := range models.Weekdays {
		for _, slot := range models.Slots {
			counts[got.Days[day].Slot(slot)]++
		}
	}
	// 21 slots over 5 recipes: least-used-first keeps the spread within
	// one of the ceiling.
	for id, n := range counts {
		if n > 5 {
			t.Errorf("recipe %s assigned %d times, expected at most 5", id, n)
		}
	}
	if len(counts) != 5 {
		t.Errorf("expected all 5 recipes used, got %d", len(counts))
	}
}

func TestAutoFill_TinyCatalogRepeats(t *testing.T) {
	recipes := []models.Recipe{{ID: "r1", Title: "Only Dish"}}

	got := AutoFill(mondayPlan(), recipes, "")

	for _, day := range models.Weekdays {
		for _, slot := range models.Slots {
			if got.Days[day].Slot(slot) != "r1" {
				t.Errorf("expected r1 everywhere, got %q at %s/%s", got.Days[day].Slot(slot), day, slot)
			}
		}
	}
}

func TestAutoFill_EmptyCatalog(t *testing.T) {
	got := AutoFill(mondayPlan(), nil, "")

	for _, day := range models.Weekdays {
		if !got.Days[day].Empty() {
			t.Errorf("expected %s untouched with empty catalog", day)
		}
	}
}

func TestAutoFill_Deterministic(t *testing.T) {
	a := AutoFill(mondayPlan(), testRecipes(), "6-12 months")
	b := AutoFill(mondayPlan(), testRecipes(), "6-12 months")

	for _, day := range models.Weekdays {
		if a.Days[day] != b.Days[day] {
			t.Errorf("non-deterministic assignment on %s: %+v vs %+v", day, a.Days[day], b.Days[day])
		}
	}
}
