package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lulu-kitchen/recipe-hub/internal/models"
	"github.com/lulu-kitchen/recipe-hub/internal/repository"
)

// SeedRecipes loads starter recipes from a JSON file into an empty
// catalog. A non-empty catalog or an empty path is a no-op, so restarts
// never duplicate the seed data.
func SeedRecipes(ctx context.Context, recipes repository.RecipeRepository, path string, log *slog.Logger) error {
	if path == "" {
		return nil
	}

	existing, err := recipes.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog before seeding: %w", err)
	}
	if len(existing) > 0 {
		log.Debug("catalog already populated, skipping seed", "recipes", len(existing))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed []models.Recipe
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	now := time.Now().UTC()
	for _, recipe := range seed {
		if recipe.ID == "" {
			recipe.ID = uuid.New().String()
		}
		recipe.CreatedAt = now
		if err := recipes.Create(ctx, recipe); err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", recipe.Title, err)
		}
	}

	log.Info("seeded recipe catalog", "file", path, "recipes", len(seed))
	return nil
}
