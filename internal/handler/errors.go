package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is installed as the Echo error handler.  Unmatched
// routes become a JSON not-found page; everything else, including
// panics recovered by middleware, becomes a generic server-error page.
// Internal error detail is logged but never sent to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	switch code {
	case http.StatusNotFound:
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case http.StatusMethodNotAllowed:
		_ = c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": "method not allowed"})
	default:
		c.Logger().Error(err)
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
