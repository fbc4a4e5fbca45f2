package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
	"github.com/lulu-kitchen/recipe-hub/internal/service"
)

// RecipeHandler handles recipe, review and suggestion HTTP requests.
type RecipeHandler struct {
	service *service.RecipeService
	log     *slog.Logger
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(service *service.RecipeService, log *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		log:     log,
	}
}

type recipeListResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

type suggestResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}

type reviewRequest struct {
	Rating int    `json:"rating"`
	Note   string `json:"note"`
}

// ListRecipes handles GET /api/recipes[?include_reviews=1]
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	includeReviews := r.URL.Query().Get("include_reviews") == "1"

	recipes, err := h.service.ListRecipes(r.Context(), includeReviews)
	if err != nil {
		h.log.Error("failed to list recipes", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	WriteJSON(w, http.StatusOK, recipeListResponse{Recipes: recipes}, h.log)
}

// GetRecipe handles GET /api/recipes/{recipeId}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")

	recipe, err := h.service.GetRecipe(r.Context(), recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			WriteError(w, http.StatusNotFound, "Recipe not found", h.log)
			return
		}
		h.log.Error("failed to get recipe", "recipe_id", recipeID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, recipe, h.log)
}

// CreateRecipe handles POST /api/recipes
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode recipe request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	recipe, err := h.service.CreateRecipe(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			WriteError(w, http.StatusBadRequest, "Title is required", h.log)
		case errors.Is(err, service.ErrInvalidPrepTime):
			WriteError(w, http.StatusBadRequest, "Prep time must not be negative", h.log)
		case errors.Is(err, service.ErrInvalidIngredient):
			WriteError(w, http.StatusBadRequest, "Each ingredient needs a name and a positive quantity", h.log)
		default:
			h.log.Error("failed to create recipe", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, recipe, h.log)
	h.log.Info("recipe created", "recipe_id", recipe.ID, "title", recipe.Title)
}

// AddReview handles POST /api/recipes/{recipeId}/reviews
func (h *RecipeHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode review request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	review, err := h.service.AddReview(r.Context(), recipeID, req.Rating, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			WriteError(w, http.StatusBadRequest, "Rating must be between 1 and 5", h.log)
		case errors.Is(err, repository.ErrRecipeNotFound):
			WriteError(w, http.StatusNotFound, "Recipe not found", h.log)
		default:
			h.log.Error("failed to add review", "recipe_id", recipeID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, review, h.log)
}

// Suggest handles GET /api/suggest
func (h *RecipeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.service.Suggest(r.Context())
	if err != nil {
		h.log.Error("failed to compute suggestions", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}

	WriteJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions}, h.log)
}
