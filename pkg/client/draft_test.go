package client_test

import (
	"context"
	"testing"

	"github.com/lulu-kitchen/recipe-hub/pkg/client"
)

func TestRecipeDraft_BuildAndSubmit(t *testing.T) {
	d := client.NewRecipeDraft("Carrot Fritters")
	d.SetDescription("Grated carrot fritters.")
	d.SetPrepTime(20)
	d.SetAgeRange("12+ months")
	d.AddIngredient("Carrots", 2, "pcs")
	d.AddIngredient("Flour", 0.5, "cups", "oat flour")
	d.AddIngredient("Sugar", 1, "tbsp")
	d.AddStep("Grate the carrots.")
	d.AddStep("Deep fry.")
	d.AddStep("Serve warm.")

	if err := d.RemoveIngredient(2); err != nil {
		t.Fatalf("failed to remove ingredient: %v", err)
	}
	if err := d.EditStep(1, "Pan fry small fritters until golden."); err != nil {
		t.Fatalf("failed to edit step: %v", err)
	}

	recipe := d.Recipe()
	if len(recipe.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(recipe.Ingredients))
	}
	if recipe.Ingredients[1].Substitutions[0] != "oat flour" {
		t.Errorf("expected substitution to survive, got %+v", recipe.Ingredients[1])
	}
	if recipe.Steps[1] != "Pan fry small fritters until golden." {
		t.Errorf("expected edited step, got %q", recipe.Steps[1])
	}

	srv := newTestServer(t)
	c := client.New(srv.URL)
	created, err := c.CreateRecipe(context.Background(), recipe)
	if err != nil {
		t.Fatalf("failed to submit draft: %v", err)
	}
	if created.Title != "Carrot Fritters" {
		t.Errorf("expected submitted title back, got %q", created.Title)
	}
}

func TestRecipeDraft_OutOfRange(t *testing.T) {
	d := client.NewRecipeDraft("X")
	if err := d.RemoveIngredient(0); err == nil {
		t.Error("expected an error removing from an empty ingredient list")
	}
	if err := d.EditStep(3, "nope"); err == nil {
		t.Error("expected an error editing a missing step")
	}
	if err := d.RemoveStep(-1); err == nil {
		t.Error("expected an error for a negative index")
	}
}
