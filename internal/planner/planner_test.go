package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

func TestNormalizeWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday maps to itself", "2024-01-01", "2024-01-01"},
		{"wednesday maps back to monday", "2024-01-03", "2024-01-01"},
		{"sunday maps to preceding monday", "2024-01-07", "2024-01-01"},
		{"saturday maps back", "2024-01-06", "2024-01-01"},
		{"next monday starts a new week", "2024-01-08", "2024-01-08"},
		{"across month boundary", "2024-03-02", "2024-02-26"},
		{"across year boundary", "2026-01-04", "2025-12-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.ParseInLocation(DateLayout, tt.in, time.UTC)
			if err != nil {
				t.Fatalf("bad test input %q: %v", tt.in, err)
			}
			got := NormalizeWeekStart(in)
			if FormatWeekStart(got) != tt.want {
				t.Errorf("NormalizeWeekStart(%s) = %s, want %s", tt.in, FormatWeekStart(got), tt.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("expected a Monday, got %s", got.Weekday())
			}
		})
	}
}

func TestParseWeekStart(t *testing.T) {
	got, err := ParseWeekStart("2024-01-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatWeekStart(got) != "2024-01-01" {
		t.Errorf("expected 2024-01-01, got %s", FormatWeekStart(got))
	}

	if _, err := ParseWeekStart("not-a-date"); !errors.Is(err, ErrInvalidWeekDate) {
		t.Errorf("expected ErrInvalidWeekDate, got %v", err)
	}
}

func TestEmptyPlan_CanonicalShape(t *testing.T) {
	plan := EmptyPlan(time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC))

	if plan.WeekStart != "2024-01-01" {
		t.Errorf("expected week start 2024-01-01, got %s", plan.WeekStart)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}
	for _, day := range models.Weekdays {
		dp, ok := plan.Days[day]
		if !ok {
			t.Errorf("missing day %s", day)
			continue
		}
		if !dp.Empty() {
			t.Errorf("expected day %s to be empty", day)
		}
		for _, slot := range models.Slots {
			if dp.Slot(slot) != "" {
				t.Errorf("expected empty %s on %s", slot, day)
			}
		}
	}
}

func TestCanonicalize(t *testing.T) {
	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("fills missing days", func(t *testing.T) {
		plan, err := Canonicalize(weekStart, map[string]models.DayPlan{
			"Tuesday": {Lunch: "r1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(plan.Days) != 7 {
			t.Errorf("expected 7 days, got %d", len(plan.Days))
		}
		if plan.Days["Tuesday"].Lunch != "r1" {
			t.Errorf("expected Tuesday lunch r1, got %q", plan.Days["Tuesday"].Lunch)
		}
	})

	t.Run("rejects unknown day key", func(t *testing.T) {
		_, err := Canonicalize(weekStart, map[string]models.DayPlan{
			"Funday": {},
		})
		if !errors.Is(err, ErrInvalidDay) {
			t.Errorf("expected ErrInvalidDay, got %v", err)
		}
	})
}

func TestValidateSlot(t *testing.T) {
	for _, slot := range models.Slots {
		if err := ValidateSlot(slot); err != nil {
			t.Errorf("expected %s to be valid: %v", slot, err)
		}
	}
	if err := ValidateSlot("brunch"); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestRecipeIDs_TraversalOrder(t *testing.T) {
	plan := EmptyPlan(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	plan.Days["Sunday"] = models.DayPlan{Breakfast: "r3"}
	plan.Days["Monday"] = models.DayPlan{Dinner: "r1"}
	plan.Days["Tuesday"] = models.DayPlan{Breakfast: "r2", Lunch: "r1"}

	got := RecipeIDs(plan)
	want := []string{"r1", "r2", "r3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
