package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository defines the interface for category-related operations.
// Categories are seeded outside the API and read-only here.
type CategoryRepository interface {
	// FindAll retrieves every category ordered by id
	FindAll(ctx context.Context) ([]Category, error)

	// FindByID retrieves a category by its id
	FindByID(ctx context.Context, id int) (*Category, error)
}

// Category represents a question category
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
