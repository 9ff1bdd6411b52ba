package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

var questionColumns = []string{"id", "question", "answer", "category", "difficulty"}

func TestQuestionRepository_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(questionColumns).
			AddRow(1, "What boils at 100C?", "Water", 1, 2).
			AddRow(2, "Who painted the Mona Lisa?", "Da Vinci", 2, 3)

		mock.ExpectQuery("SELECT id, question, answer, category, difficulty").
			WillReturnRows(rows)

		questions, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, 1, questions[0].ID)
		assert.Equal(t, "Water", questions[0].Answer)
		assert.Equal(t, 3, questions[1].Difficulty)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, question, answer, category, difficulty").
			WillReturnRows(pgxmock.NewRows(questionColumns))

		questions, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, questions)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_FindByCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)

	rows := pgxmock.NewRows(questionColumns).
		AddRow(4, "What boils at 100C?", "Water", 2, 1)

	mock.ExpectQuery("WHERE category").
		WithArgs(2).
		WillReturnRows(rows)

	questions, err := repo.FindByCategory(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 2, questions[0].Category)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_SearchByText(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)

	rows := pgxmock.NewRows(questionColumns).
		AddRow(4, "What boils at 100C?", "Water", 2, 1)

	mock.ExpectQuery("ILIKE").
		WithArgs("boils").
		WillReturnRows(rows)

	questions, err := repo.SearchByText(context.Background(), "boils")
	require.NoError(t, err)
	require.Len(t, questions, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)

	mock.ExpectQuery("INSERT INTO questions").
		WithArgs("What boils at 100C?", "Water", 1, 2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	question := domain.Question{
		Question:   "What boils at 100C?",
		Answer:     "Water",
		Category:   1,
		Difficulty: 2,
	}
	require.NoError(t, repo.Insert(context.Background(), &question))
	assert.Equal(t, 7, question.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_DeleteByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM questions").
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.DeleteByID(ctx, 7))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM questions").
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteByID(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_FindRandom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewQuestionRepository(mock)
	ctx := context.Background()

	t.Run("WithCategoryAndExclusions", func(t *testing.T) {
		rows := pgxmock.NewRows(questionColumns).
			AddRow(5, "What boils at 100C?", "Water", 2, 1)

		mock.ExpectQuery("ORDER BY RANDOM").
			WithArgs(2, []int{1, 3}).
			WillReturnRows(rows)

		question, err := repo.FindRandom(ctx, 2, []int{1, 3})
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, 5, question.ID)
	})

	t.Run("NilExclusionsBecomeEmptyArray", func(t *testing.T) {
		rows := pgxmock.NewRows(questionColumns).
			AddRow(5, "What boils at 100C?", "Water", 2, 1)

		mock.ExpectQuery("ORDER BY RANDOM").
			WithArgs(0, []int{}).
			WillReturnRows(rows)

		question, err := repo.FindRandom(ctx, 0, nil)
		require.NoError(t, err)
		require.NotNil(t, question)
	})

	t.Run("Exhausted", func(t *testing.T) {
		mock.ExpectQuery("ORDER BY RANDOM").
			WithArgs(2, []int{5}).
			WillReturnError(pgx.ErrNoRows)

		question, err := repo.FindRandom(ctx, 2, []int{5})
		require.NoError(t, err)
		assert.Nil(t, question)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
