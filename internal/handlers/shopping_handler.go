package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/planner"
	"github.com/lulu-kitchen/recipe-hub/internal/service"
)

// ShoppingHandler handles shopping list HTTP requests.
type ShoppingHandler struct {
	service *service.ShoppingService
	log     *slog.Logger
}

// NewShoppingHandler creates a new shopping list handler.
func NewShoppingHandler(service *service.ShoppingService, log *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		service: service,
		log:     log,
	}
}

type shoppingListResponse struct {
	Items []models.ShoppingItem `json:"items"`
}

// GetList handles GET /api/shopping-list/{weekStart}
// An empty list means the pantry covers the week's plan.
func (h *ShoppingHandler) GetList(w http.ResponseWriter, r *http.Request) {
	weekStart := chi.URLParam(r, "weekStart")

	items, err := h.service.ForWeek(r.Context(), weekStart)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidWeekDate) {
			WriteError(w, http.StatusBadRequest, "Invalid week date", h.log)
			return
		}
		h.log.Error("failed to derive shopping list", "week", weekStart, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if items == nil {
		items = []models.ShoppingItem{}
	}

	WriteJSON(w, http.StatusOK, shoppingListResponse{Items: items}, h.log)
}
