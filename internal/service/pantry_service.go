package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// PantryService handles business logic for the pantry.
type PantryService struct {
	pantry repository.PantryRepository
}

// NewPantryService creates a new pantry service.
func NewPantryService(pantryRepo repository.PantryRepository) *PantryService {
	return &PantryService{pantry: pantryRepo}
}

// ListItems returns all pantry items.
func (s *PantryService) ListItems(ctx context.Context) ([]models.PantryItem, error) {
	return s.pantry.List(ctx)
}

// AddItem validates and stores a pantry item, assigning its ID.
func (s *PantryService) AddItem(ctx context.Context, name string, quantity float64, unit string) (*models.PantryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item := models.PantryItem{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  quantity,
		Unit:      strings.TrimSpace(unit),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.pantry.Add(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes a pantry item by ID.
func (s *PantryService) RemoveItem(ctx context.Context, id string) error {
	return s.pantry.Delete(ctx, id)
}
