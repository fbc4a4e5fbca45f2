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

// PantryHandler handles pantry HTTP requests.
type PantryHandler struct {
	service *service.PantryService
	log     *slog.Logger
}

// NewPantryHandler creates a new pantry handler.
func NewPantryHandler(service *service.PantryService, log *slog.Logger) *PantryHandler {
	return &PantryHandler{
		service: service,
		log:     log,
	}
}

type pantryListResponse struct {
	Items []models.PantryItem `json:"items"`
}

type pantryItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ListItems handles GET /api/pantry
func (h *PantryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		h.log.Error("failed to list pantry items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if items == nil {
		items = []models.PantryItem{}
	}

	WriteJSON(w, http.StatusOK, pantryListResponse{Items: items}, h.log)
}

// AddItem handles POST /api/pantry
func (h *PantryHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode pantry request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	item, err := h.service.AddItem(r.Context(), req.Name, req.Quantity, req.Unit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			WriteError(w, http.StatusBadRequest, "Name is required", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		default:
			h.log.Error("failed to add pantry item", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, item, h.log)
}

// RemoveItem handles DELETE /api/pantry/{itemId}
func (h *PantryHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if err := h.service.RemoveItem(r.Context(), itemID); err != nil {
		if errors.Is(err, repository.ErrPantryItemNotFound) {
			WriteError(w, http.StatusNotFound, "Pantry item not found", h.log)
			return
		}
		h.log.Error("failed to remove pantry item", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"}, h.log)
}
