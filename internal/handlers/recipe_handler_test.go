package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
	"github.com/lulu-kitchen/recipe-hub/internal/service"
	"github.com/lulu-kitchen/recipe-hub/pkg/logger"
)

type recipeFixture struct {
	router  chi.Router
	recipes *repository.InMemoryRecipeRepository
	pantry  *repository.InMemoryPantryRepository
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	t.Helper()
	recipes := repository.NewInMemoryRecipeRepository()
	pantryRepo := repository.NewInMemoryPantryRepository()
	svc := service.NewRecipeService(recipes, repository.NewInMemoryReviewRepository(), pantryRepo)
	handler := NewRecipeHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/recipes", handler.ListRecipes)
	r.Post("/api/recipes", handler.CreateRecipe)
	r.Get("/api/recipes/{recipeId}", handler.GetRecipe)
	r.Post("/api/recipes/{recipeId}/reviews", handler.AddReview)
	r.Get("/api/suggest", handler.Suggest)

	return &recipeFixture{router: r, recipes: recipes, pantry: pantryRepo}
}

func TestListRecipes_EmptyCatalog(t *testing.T) {
	f := newRecipeFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	// The web client maps over .recipes, so it must be [] and never null.
	if !strings.Contains(w.Body.String(), `"recipes":[]`) {
		t.Errorf("expected empty recipes array, got %s", w.Body.String())
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	f := newRecipeFixture(t)

	body := `{
		"title": "Apple Porridge",
		"description": "Warm and soft",
		"prep_time_min": 15,
		"age_range": "6-12 months",
		"ingredients": [{"name": "Oats", "quantity": 50, "unit": "g", "substitutions": ["millet"]}],
		"steps": ["Simmer oats", ""]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(body))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Recipe
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned recipe ID")
	}
	if len(created.Steps) != 1 {
		t.Errorf("expected blank step dropped, got %v", created.Steps)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/recipes/"+created.ID, nil)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var got models.Recipe
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Title != "Apple Porridge" || got.Ingredients[0].Substitutions[0] != "millet" {
		t.Errorf("unexpected recipe: %+v", got)
	}
}

func TestCreateRecipe_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed body", `{"title":`, "Invalid request body"},
		{"missing title", `{"title":"  "}`, "Title is required"},
		{"negative prep time", `{"title":"Soup","prep_time_min":-1}`, "Prep time must not be negative"},
		{"bad ingredient", `{"title":"Soup","ingredients":[{"name":"","quantity":1}]}`, "Each ingredient needs a name and a positive quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecipeFixture(t)
			req := httptest.NewRequest(http.MethodPost, "/api/recipes", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp["error"] != tt.wantMsg {
				t.Errorf("expected error %q, got %q", tt.wantMsg, resp["error"])
			}
		})
	}
}

func TestGetRecipe_NotFound(t *testing.T) {
	f := newRecipeFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/ghost", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestAddReview(t *testing.T) {
	f := newRecipeFixture(t)
	f.recipes.Create(context.Background(), models.Recipe{ID: "r1", Title: "Soup"})

	req := httptest.NewRequest(http.MethodPost, "/api/recipes/r1/reviews", strings.NewReader(`{"rating":4,"note":"nice"}`))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/recipes/r1/reviews", strings.NewReader(`{"rating":9}`))
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for out-of-range rating, got %d", w.Code)
	}

	// Average shows up on the list view.
	req = httptest.NewRequest(http.MethodGet, "/api/recipes?include_reviews=1", nil)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var list recipeListResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Recipes) != 1 || list.Recipes[0].AvgRating == nil || *list.Recipes[0].AvgRating != 4 {
		t.Errorf("expected avg rating 4, got %+v", list.Recipes)
	}
	if len(list.Recipes[0].Reviews) != 1 {
		t.Errorf("expected embedded review, got %+v", list.Recipes[0])
	}
}

func TestSuggest(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()
	f.recipes.Create(ctx, models.Recipe{ID: "r1", Title: "Porridge", Ingredients: []models.Ingredient{
		{Name: "Oats", Quantity: 50, Unit: "g"},
	}})
	f.pantry.Add(ctx, models.PantryItem{ID: "p1", Name: "oats", Quantity: 500, Unit: "g"})

	req := httptest.NewRequest(http.MethodGet, "/api/suggest", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp suggestResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Suggestions) != 1 || !resp.Suggestions[0].CanMake {
		t.Errorf("expected r1 to be makeable, got %+v", resp.Suggestions)
	}
}
