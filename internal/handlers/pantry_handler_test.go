package handlers

import (
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

func newPantryFixture(t *testing.T) chi.Router {
	t.Helper()
	handler := NewPantryHandler(service.NewPantryService(repository.NewInMemoryPantryRepository()), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/pantry", handler.ListItems)
	r.Post("/api/pantry", handler.AddItem)
	r.Delete("/api/pantry/{itemId}", handler.RemoveItem)
	return r
}

func TestPantry_AddListRemove(t *testing.T) {
	r := newPantryFixture(t)

	// Add
	req := httptest.NewRequest(http.MethodPost, "/api/pantry", strings.NewReader(`{"name":"Flour","quantity":2,"unit":"cups"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var item models.PantryItem
	if err := json.NewDecoder(w.Body).Decode(&item); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if item.ID == "" {
		t.Error("expected an assigned item ID")
	}

	// List reflects the add
	req = httptest.NewRequest(http.MethodGet, "/api/pantry", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var list pantryListResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "Flour" {
		t.Errorf("unexpected pantry list: %+v", list.Items)
	}

	// Remove
	req = httptest.NewRequest(http.MethodDelete, "/api/pantry/"+item.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	// Removing again is not found
	req = httptest.NewRequest(http.MethodDelete, "/api/pantry/"+item.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestPantry_AddValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"name":"","quantity":1,"unit":"pc"}`},
		{"zero quantity", `{"name":"Eggs","quantity":0,"unit":"pc"}`},
		{"negative quantity", `{"name":"Eggs","quantity":-2,"unit":"pc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPantryFixture(t)
			req := httptest.NewRequest(http.MethodPost, "/api/pantry", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestPantry_EmptyListIsArray(t *testing.T) {
	r := newPantryFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pantry", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("expected empty items array, got %s", w.Body.String())
	}
}
