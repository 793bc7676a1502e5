package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/venue-booking/internal/handler"
)

func newRouter() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	RegisterRoutes(e, &handler.VenueHandler{}, &handler.ArtistHandler{}, &handler.ShowHandler{})
	return e
}

// The route table is deliberately asymmetric: only venues can be
// deleted, and shows can never be edited. These must stay rejected.
func TestUnsupportedOperationsAreRejected(t *testing.T) {
	e := newRouter()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		// /artists/:id exists for GET, so DELETE is a method mismatch.
		{http.MethodDelete, "/artists/4", http.StatusMethodNotAllowed},
		// No /shows/:id paths are registered at all, so detail, edit
		// and delete all miss.
		{http.MethodGet, "/shows/11/edit", http.StatusNotFound},
		{http.MethodPost, "/shows/11/edit", http.StatusNotFound},
		{http.MethodDelete, "/shows/11", http.StatusNotFound},
		// Unknown paths fall through to the not-found body.
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestHealthRoute(t *testing.T) {
	e := newRouter()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
