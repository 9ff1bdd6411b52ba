package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories domain.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories domain.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.List)
}

// ListCategoriesResponse is the payload for a category listing
type ListCategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// List godoc
// @Summary List all categories
// @Produce json
// @Success 200 {object} ListCategoriesResponse
// @Failure 500 {object} ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.FindAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, ListCategoriesResponse{
		Success:    true,
		Categories: categoryMap(categories),
	})
}
