package client

import "fmt"

// RecipeDraft assembles a new recipe from ordered ingredient and step
// sub-records. Edits are structural only; validation happens server-side
// when the draft is submitted.
type RecipeDraft struct {
	recipe Recipe
}

// NewRecipeDraft starts a draft with the given title.
func NewRecipeDraft(title string) *RecipeDraft {
	return &RecipeDraft{recipe: Recipe{Title: title}}
}

// SetDescription sets the free-text description.
func (d *RecipeDraft) SetDescription(text string) { d.recipe.Description = text }

// SetImage sets the image reference.
func (d *RecipeDraft) SetImage(url string) { d.recipe.Image = url }

// SetPrepTime sets the preparation time in minutes.
func (d *RecipeDraft) SetPrepTime(minutes int) { d.recipe.PrepTimeMin = minutes }

// SetAgeRange sets the age-range label.
func (d *RecipeDraft) SetAgeRange(label string) { d.recipe.AgeRange = label }

// AddIngredient appends an ingredient line.
func (d *RecipeDraft) AddIngredient(name string, quantity float64, unit string, substitutions ...string) {
	d.recipe.Ingredients = append(d.recipe.Ingredients, Ingredient{
		Name:          name,
		Quantity:      quantity,
		Unit:          unit,
		Substitutions: substitutions,
	})
}

// RemoveIngredient deletes the i-th ingredient line.
func (d *RecipeDraft) RemoveIngredient(i int) error {
	if i < 0 || i >= len(d.recipe.Ingredients) {
		return fmt.Errorf("ingredient %d out of range", i)
	}
	d.recipe.Ingredients = append(d.recipe.Ingredients[:i], d.recipe.Ingredients[i+1:]...)
	return nil
}

// AddStep appends a preparation step.
func (d *RecipeDraft) AddStep(text string) {
	d.recipe.Steps = append(d.recipe.Steps, text)
}

// EditStep replaces the i-th step's text.
func (d *RecipeDraft) EditStep(i int, text string) error {
	if i < 0 || i >= len(d.recipe.Steps) {
		return fmt.Errorf("step %d out of range", i)
	}
	d.recipe.Steps[i] = text
	return nil
}

// RemoveStep deletes the i-th step.
func (d *RecipeDraft) RemoveStep(i int) error {
	if i < 0 || i >= len(d.recipe.Steps) {
		return fmt.Errorf("step %d out of range", i)
	}
	d.recipe.Steps = append(d.recipe.Steps[:i], d.recipe.Steps[i+1:]...)
	return nil
}

// Recipe returns the assembled recipe, ready to submit.
func (d *RecipeDraft) Recipe() Recipe {
	return d.recipe
}
