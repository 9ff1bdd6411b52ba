package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error envelope for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// statusNames maps every status code the API can emit to its wire-level
// message string.
var statusNames = map[int]string{
	http.StatusBadRequest:          "HTTP_400_BAD_REQUEST",
	http.StatusUnauthorized:        "HTTP_401_UNAUTHORIZED",
	http.StatusForbidden:           "HTTP_403_FORBIDDEN",
	http.StatusNotFound:            "HTTP_404_NOT_FOUND",
	http.StatusMethodNotAllowed:    "HTTP_405_METHOD_NOT_ALLOWED",
	http.StatusUnprocessableEntity: "HTTP_422_UNPROCESSABLE_ENTITY",
	http.StatusInternalServerError: "HTTP_500_INTERNAL_SERVER_ERROR",
}

// HTTPErrorHandler maps any error escaping a handler to the standardized
// JSON envelope. Codes outside the vocabulary collapse to 500.
func HTTPErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if _, ok := statusNames[code]; !ok {
		code = http.StatusInternalServerError
	}

	if c.Response().Committed {
		return
	}

	if err := c.JSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: statusNames[code],
	}); err != nil {
		c.Logger().Error(err)
	}
}
