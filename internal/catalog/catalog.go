// Package catalog provides the in-memory recipe lookup used when
// resolving plan slots. It is rebuilt from a full recipe load; there is
// no incremental invalidation.
package catalog

import "github.com/lulu-kitchen/recipe-hub/internal/models"

// Index maps recipe IDs to recipe records.
type Index struct {
	byID map[string]models.Recipe
}

// NewIndex builds an index over the given recipes.
func NewIndex(recipes []models.Recipe) *Index {
	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	return &Index{byID: byID}
}

// Get resolves a recipe ID. A missing ID is a normal condition: a plan
// slot may reference a recipe deleted after assignment, and callers
// degrade such slots to empty.
func (i *Index) Get(id string) (models.Recipe, bool) {
	r, ok := i.byID[id]
	return r, ok
}

// Len returns the number of indexed recipes.
func (i *Index) Len() int {
	return len(i.byID)
}
