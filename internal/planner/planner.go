package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/lulu-kitchen/recipe-hub/internal/models"
)

var (
	ErrInvalidWeekDate = errors.New("invalid week date")
	ErrInvalidDay      = errors.New("invalid day name")
	ErrInvalidSlot     = errors.New("invalid slot name")
)

// DateLayout is the wire format for week-start dates.
const DateLayout = "2006-01-02"

// NormalizeWeekStart returns the Monday 00:00 UTC of the ISO week
// containing t. Sunday maps to the preceding Monday, not the following one.
func NormalizeWeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday numbers Sunday as 0; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ParseWeekStart parses a YYYY-MM-DD date and normalizes it to its
// week's Monday.
func ParseWeekStart(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWeekDate, s)
	}
	return NormalizeWeekStart(t), nil
}

// FormatWeekStart renders a week-start key as YYYY-MM-DD.
func FormatWeekStart(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// EmptyPlan builds an all-empty plan for the week containing weekStart.
func EmptyPlan(weekStart time.Time) models.MealPlan {
	days := make(map[string]models.DayPlan, len(models.Weekdays))
	for _, d := range models.Weekdays {
		days[d] = models.DayPlan{}
	}
	return models.MealPlan{
		WeekStart: FormatWeekStart(NormalizeWeekStart(weekStart)),
		Days:      days,
	}
}

// ValidateDay checks a day name against the canonical weekday set.
func ValidateDay(day string) error {
	for _, d := range models.Weekdays {
		if d == day {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidDay, day)
}

// ValidateSlot checks a slot name against the canonical slot set.
func ValidateSlot(slot string) error {
	for _, s := range models.Slots {
		if s == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
}

// Canonicalize validates the day keys of days and returns a plan that
// carries exactly the seven canonical days, filling absent days with
// empty assignments. Unknown day keys are an error, never silently
// dropped.
func Canonicalize(weekStart time.Time, days map[string]models.DayPlan) (models.MealPlan, error) {
	for day := range days {
		if err := ValidateDay(day); err != nil {
			return models.MealPlan{}, err
		}
	}

	plan := EmptyPlan(weekStart)
	for day, dp := range days {
		plan.Days[day] = dp
	}
	return plan, nil
}

// RecipeIDs returns every distinct recipe ID assigned anywhere in the
// plan, in Monday-to-Sunday, breakfast-to-dinner traversal order.
func RecipeIDs(plan models.MealPlan) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, day := range models.Weekdays {
		dp := plan.Days[day]
		for _, slot := range models.Slots {
			id := dp.Slot(slot)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}
