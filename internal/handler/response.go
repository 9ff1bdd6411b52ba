package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionPayload is the wire representation of a question
type QuestionPayload struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryPayload is the wire representation of a category
type CategoryPayload struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// formatQuestion converts a persisted question to its wire representation
func formatQuestion(q domain.Question) QuestionPayload {
	return QuestionPayload{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// formatQuestions converts a list of persisted questions to their wire
// representations, preserving order
func formatQuestions(questions []domain.Question) []QuestionPayload {
	payloads := make([]QuestionPayload, 0, len(questions))
	for _, q := range questions {
		payloads = append(payloads, formatQuestion(q))
	}
	return payloads
}

// formatCategory converts a persisted category to its wire representation
func formatCategory(c *domain.Category) CategoryPayload {
	return CategoryPayload{
		ID:   c.ID,
		Type: c.Type,
	}
}

// categoryMap builds the {id: type} mapping used in category listings.
// encoding/json renders the int keys as strings.
func categoryMap(categories []domain.Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}

// pageParam reads the 1-based page query parameter, defaulting to 1 when
// absent or not a number
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
