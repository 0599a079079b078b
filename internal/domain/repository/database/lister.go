package database

import (
	"context"

	"jailoo/internal/domain/model"
)

// Lister defines the interface for listing posts from the database.
type Lister interface {
	// GetAll returns every post ordered by id, descending when desc is set.
	GetAll(ctx context.Context, desc bool) ([]model.Post, error)
}
