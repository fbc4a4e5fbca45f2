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

// ReminderHandler handles reminder HTTP requests.
type ReminderHandler struct {
	service *service.ReminderService
	log     *slog.Logger
}

// NewReminderHandler creates a new reminder handler.
func NewReminderHandler(service *service.ReminderService, log *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		log:     log,
	}
}

type reminderListResponse struct {
	Reminders []models.Reminder `json:"reminders"`
}

type reminderRequest struct {
	Title string              `json:"title"`
	DueAt string              `json:"due_at"`
	Type  models.ReminderType `json:"type"`
}

// ListReminders handles GET /api/reminders
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.service.ListReminders(r.Context())
	if err != nil {
		h.log.Error("failed to list reminders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	WriteJSON(w, http.StatusOK, reminderListResponse{Reminders: reminders}, h.log)
}

// AddReminder handles POST /api/reminders
func (h *ReminderHandler) AddReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode reminder request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	reminder, err := h.service.AddReminder(r.Context(), req.Title, req.DueAt, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			WriteError(w, http.StatusBadRequest, "Title is required", h.log)
		case errors.Is(err, service.ErrInvalidReminderType):
			WriteError(w, http.StatusBadRequest, "Type must be meal, shopping or other", h.log)
		case errors.Is(err, service.ErrInvalidDueDate):
			WriteError(w, http.StatusBadRequest, "Invalid due date", h.log)
		default:
			h.log.Error("failed to add reminder", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, reminder, h.log)
}

// RemoveReminder handles DELETE /api/reminders/{reminderId}
func (h *ReminderHandler) RemoveReminder(w http.ResponseWriter, r *http.Request) {
	reminderID := chi.URLParam(r, "reminderId")

	if err := h.service.RemoveReminder(r.Context(), reminderID); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			WriteError(w, http.StatusNotFound, "Reminder not found", h.log)
			return
		}
		h.log.Error("failed to remove reminder", "reminder_id", reminderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"}, h.log)
}
