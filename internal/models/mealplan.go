package models

// Canonical day and slot names for a weekly plan. Every plan carries
// exactly these seven days and, per day, exactly these three slots.
var (
	Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	Slots    = []string{SlotBreakfast, SlotLunch, SlotDinner}
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// DayPlan holds the recipe assignment for one day. An empty string
// means the slot is unassigned.
type DayPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// Slot returns the recipe ID assigned to the named slot.
func (d DayPlan) Slot(slot string) string {
	switch slot {
	case SlotBreakfast:
		return d.Breakfast
	case SlotLunch:
		return d.Lunch
	case SlotDinner:
		return d.Dinner
	}
	return ""
}

// SetSlot assigns a recipe ID to the named slot. Unknown slot names are
// ignored; callers validate slot names before mutation.
func (d *DayPlan) SetSlot(slot, recipeID string) {
	switch slot {
	case SlotBreakfast:
		d.Breakfast = recipeID
	case SlotLunch:
		d.Lunch = recipeID
	case SlotDinner:
		d.Dinner = recipeID
	}
}

// Empty reports whether no slot of the day is assigned.
func (d DayPlan) Empty() bool {
	return d.Breakfast == "" && d.Lunch == "" && d.Dinner == ""
}

// MealPlan is the full weekly assignment, keyed by the Monday (UTC) that
// starts the week, formatted as YYYY-MM-DD.
type MealPlan struct {
	WeekStart string             `json:"week_start"`
	Days      map[string]DayPlan `json:"days"`
}

// Clone returns a deep copy of the plan.
func (p MealPlan) Clone() MealPlan {
	days := make(map[string]DayPlan, len(p.Days))
	for d, dp := range p.Days {
		days[d] = dp
	}
	return MealPlan{WeekStart: p.WeekStart, Days: days}
}
