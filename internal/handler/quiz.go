package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	questions domain.QuestionRepository
	validate  *validator.Validate
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(questions domain.QuestionRepository) *QuizHandler {
	return &QuizHandler{
		questions: questions,
		validate:  validator.New(),
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	e.POST("/quizzes", h.NextQuestion)
}

// QuizCategory narrows question selection to one category. An id of 0 means
// "no category filter".
type QuizCategory struct {
	ID int `json:"id"`
}

// NextQuestionRequest represents the request for the next quiz question
type NextQuestionRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// NextQuestionResponse carries the picked question, or null when every
// candidate has already been asked
type NextQuestionResponse struct {
	Success  bool             `json:"success"`
	Question *QuestionPayload `json:"question"`
}

// NextQuestion godoc
// @Summary Pick the next quiz question
// @Accept json
// @Produce json
// @Param body body NextQuestionRequest true "Previous questions and category"
// @Success 200 {object} NextQuestionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req NextQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	question, err := h.questions.FindRandom(
		c.Request().Context(),
		req.QuizCategory.ID,
		req.PreviousQuestions,
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := NextQuestionResponse{Success: true}
	if question != nil {
		payload := formatQuestion(*question)
		resp.Question = &payload
	}
	return c.JSON(http.StatusOK, resp)
}
