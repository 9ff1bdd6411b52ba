package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	db DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// FindAll retrieves every question ordered by id
func (r *QuestionRepository) FindAll(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// FindByCategory retrieves all questions belonging to a category
func (r *QuestionRepository) FindByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions by category: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// SearchByText retrieves all questions whose prompt contains term,
// case-insensitively. An empty term matches everything.
func (r *QuestionRepository) SearchByText(ctx context.Context, term string) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// Insert persists a new question and fills in its store-assigned id
func (r *QuestionRepository) Insert(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
}

// DeleteByID permanently removes a question
func (r *QuestionRepository) DeleteByID(ctx context.Context, id int) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// FindRandom picks one question uniformly at random, restricted to a category
// when categoryID is non-zero and excluding the given ids. Returns (nil, nil)
// when no candidate remains.
func (r *QuestionRepository) FindRandom(ctx context.Context, categoryID int, exclude []int) (*domain.Question, error) {
	if exclude == nil {
		exclude = []int{}
	}

	var question domain.Question
	err := r.db.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE ($1 = 0 OR category = $1)
		  AND NOT (id = ANY($2))
		ORDER BY RANDOM()
		LIMIT 1
	`, categoryID, exclude).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random question: %w", err)
	}
	return &question, nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	questions := []domain.Question{}
	for rows.Next() {
		var question domain.Question
		if err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Category,
			&question.Difficulty,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
