package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions domain.QuestionRepository, categories domain.CategoryRepository) *QuestionHandler {
	return &QuestionHandler{
		questions:  questions,
		categories: categories,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	e.GET("/questions", h.List)
	e.POST("/questions", h.Create)
	e.DELETE("/questions/:id", h.Delete)
	e.POST("/questions/filter", h.Filter)
	e.GET("/categories/:category_id/questions", h.ListByCategory)
}

// ListQuestionsResponse is the payload for a paginated question listing
type ListQuestionsResponse struct {
	Success         bool              `json:"success"`
	CurrentCategory any               `json:"current_category"`
	Categories      map[int]string    `json:"categories"`
	Questions       []QuestionPayload `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
}

// List godoc
// @Summary List questions for a page
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {object} ListQuestionsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	questions, err := h.questions.FindAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page, total := pagination.Page(questions, pageParam(c), pagination.PageSize)

	categories, err := h.categories.FindAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// An empty slice means the page is out of range; an empty store on
	// page 1 takes the same path
	if len(page) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, ListQuestionsResponse{
		Success:         true,
		CurrentCategory: nil,
		Categories:      categoryMap(categories),
		Questions:       formatQuestions(page),
		TotalQuestions:  total,
	})
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestionResponse is the payload for a created question
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	ID      int  `json:"id"`
}

// Create godoc
// @Summary Create a question
// @Accept json
// @Produce json
// @Param question body CreateQuestionRequest true "Question fields"
// @Success 201 {object} CreateQuestionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		// Field-type errors are not distinguished from store failures
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if req == (CreateQuestionRequest{}) {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	// The category id is not checked against existing categories
	question := domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.questions.Insert(c.Request().Context(), &question); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, CreateQuestionResponse{
		Success: true,
		ID:      question.ID,
	})
}

// Delete godoc
// @Summary Delete a question
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if err := h.questions.DeleteByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// FilterQuestionsRequest represents the request to search questions
type FilterQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// FilterQuestionsResponse is the payload for a filtered question listing
type FilterQuestionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []QuestionPayload `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

// Filter godoc
// @Summary Search questions by prompt text
// @Accept json
// @Produce json
// @Param page query int false "1-based page number"
// @Param body body FilterQuestionsRequest false "Search term"
// @Success 200 {object} FilterQuestionsResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions/filter [post]
func (h *QuestionHandler) Filter(c echo.Context) error {
	// An omitted body or search term matches everything
	var req FilterQuestionsRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	questions, err := h.questions.SearchByText(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page, total := pagination.Page(questions, pageParam(c), pagination.PageSize)

	// Unlike the paginated listing, an empty match set is a valid result
	return c.JSON(http.StatusOK, FilterQuestionsResponse{
		Success:        true,
		Questions:      formatQuestions(page),
		TotalQuestions: total,
	})
}

// QuestionsByCategoryResponse is the payload for a category's questions
type QuestionsByCategoryResponse struct {
	Success         bool              `json:"success"`
	Questions       []QuestionPayload `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory CategoryPayload   `json:"current_category"`
}

// ListByCategory godoc
// @Summary List questions for a category
// @Produce json
// @Param category_id path int true "Category ID"
// @Param page query int false "1-based page number"
// @Success 200 {object} QuestionsByCategoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories/{category_id}/questions [get]
func (h *QuestionHandler) ListByCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	category, err := h.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	questions, err := h.questions.FindByCategory(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page, total := pagination.Page(questions, pageParam(c), pagination.PageSize)

	return c.JSON(http.StatusOK, QuestionsByCategoryResponse{
		Success:         true,
		Questions:       formatQuestions(page),
		TotalQuestions:  total,
		CurrentCategory: formatCategory(category),
	})
}
