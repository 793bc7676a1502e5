package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/venue-booking/internal/handler" // import the handlers that implement the route logic
)

// RegisterRoutes wires every route of the booking directory onto the
// provided Echo instance.  All routes are public; the directory has no
// authenticated surface.  Note the deliberate asymmetries carried by
// the route table: venues have a DELETE route while artists and shows
// do not, and shows have no edit routes at all.
func RegisterRoutes(e *echo.Echo, v *handler.VenueHandler, a *handler.ArtistHandler, s *handler.ShowHandler) {
	// Landing page and health check for load balancers.
	e.GET("/", handler.Home)
	e.GET("/healthz", handler.Health)

	// Venue routes.  The static /venues/create paths must be declared
	// alongside the /venues/:id paths; Echo routes static segments
	// before parameters so both coexist.
	e.GET("/venues", v.Venues)
	e.POST("/venues/search", v.SearchVenues)
	e.GET("/venues/create", v.CreateVenueForm)
	e.POST("/venues/create", v.CreateVenue)
	e.GET("/venues/:id", v.GetVenue)
	e.DELETE("/venues/:id", v.DeleteVenue)
	e.GET("/venues/:id/edit", v.EditVenueForm)
	e.POST("/venues/:id/edit", v.EditVenue)

	// Artist routes.  Same shape as venues minus delete.
	e.GET("/artists", a.Artists)
	e.POST("/artists/search", a.SearchArtists)
	e.GET("/artists/create", a.CreateArtistForm)
	e.POST("/artists/create", a.CreateArtist)
	e.GET("/artists/:id", a.GetArtist)
	e.GET("/artists/:id/edit", a.EditArtistForm)
	e.POST("/artists/:id/edit", a.EditArtist)

	// Show routes.  Listing and creation only.
	e.GET("/shows", s.Shows)
	e.GET("/shows/create", s.CreateShowForm)
	e.POST("/shows/create", s.CreateShow)
}
