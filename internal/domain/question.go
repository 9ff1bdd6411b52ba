package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// FindAll retrieves every question ordered by id
	FindAll(ctx context.Context) ([]Question, error)

	// FindByCategory retrieves all questions belonging to a category
	FindByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// SearchByText retrieves all questions whose prompt contains term,
	// case-insensitively. An empty term matches everything.
	SearchByText(ctx context.Context, term string) ([]Question, error)

	// Insert persists a new question and fills in its store-assigned id
	Insert(ctx context.Context, question *Question) error

	// DeleteByID permanently removes a question
	DeleteByID(ctx context.Context, id int) error

	// FindRandom picks one question uniformly at random, restricted to a
	// category when categoryID is non-zero and excluding the given ids.
	// Returns (nil, nil) when no candidate remains.
	FindRandom(ctx context.Context, categoryID int, exclude []int) (*Question, error)
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
