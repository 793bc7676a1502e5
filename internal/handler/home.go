package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home handles GET / and serves as the landing page of the directory.
func Home(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"app":     "venue-booking",
		"message": "Browse venues, artists and shows.",
	})
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
