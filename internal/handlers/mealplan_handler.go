package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/planner"
	"github.com/lulu-kitchen/recipe-hub/internal/service"
)

// MealPlanHandler handles weekly plan HTTP requests.
type MealPlanHandler struct {
	service *service.MealPlanService
	log     *slog.Logger
}

// NewMealPlanHandler creates a new meal plan handler.
func NewMealPlanHandler(service *service.MealPlanService, log *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		service: service,
		log:     log,
	}
}

type savePlanRequest struct {
	WeekStart string                    `json:"week_start"`
	Days      map[string]models.DayPlan `json:"days"`
}

// GetPlan handles GET /api/mealplan/{weekStart}
// Any date within the week resolves the plan keyed by that week's
// Monday; a week without a stored plan comes back all-empty.
func (h *MealPlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	weekStart := chi.URLParam(r, "weekStart")

	plan, err := h.service.Load(r.Context(), weekStart)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidWeekDate) {
			WriteError(w, http.StatusBadRequest, "Invalid week date", h.log)
			return
		}
		h.log.Error("failed to load meal plan", "week", weekStart, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
}

// SavePlan handles POST /api/mealplan
func (h *MealPlanHandler) SavePlan(w http.ResponseWriter, r *http.Request) {
	var req savePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode meal plan request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	plan, err := h.service.Save(r.Context(), req.WeekStart, req.Days)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidWeekDate):
			WriteError(w, http.StatusBadRequest, "Invalid week date", h.log)
		case errors.Is(err, planner.ErrInvalidDay):
			WriteError(w, http.StatusBadRequest, "Unknown day name in plan", h.log)
		case errors.Is(err, service.ErrUnknownRecipe):
			WriteError(w, http.StatusBadRequest, "Plan references an unknown recipe", h.log)
		default:
			h.log.Error("failed to save meal plan", "week", req.WeekStart, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
	h.log.Info("meal plan saved", "week", plan.WeekStart)
}

// AutoFill handles POST /api/mealplan/{weekStart}/auto-fill
func (h *MealPlanHandler) AutoFill(w http.ResponseWriter, r *http.Request) {
	weekStart := chi.URLParam(r, "weekStart")

	plan, err := h.service.AutoFill(r.Context(), weekStart)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidWeekDate) {
			WriteError(w, http.StatusBadRequest, "Invalid week date", h.log)
			return
		}
		h.log.Error("failed to auto-fill meal plan", "week", weekStart, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
	h.log.Info("meal plan auto-filled", "week", plan.WeekStart)
}
