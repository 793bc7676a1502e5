package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
)

// ShowHandler aggregates the repositories needed for show routes.
// Shows can only be listed and created; there is no edit or delete.
type ShowHandler struct {
	ShowRepo   *repository.ShowRepo
	VenueRepo  *repository.VenueRepo
	ArtistRepo *repository.ArtistRepo
	Publish    func(event queue.ListingCreatedEvent)
}

// ShowView is one row of the shows index.
type ShowView struct {
	VenueID         uint64 `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// Shows handles GET /shows.  Every show is returned joined to its
// venue and artist; no filtering or pagination.
func (h *ShowHandler) Shows(c echo.Context) error {
	ctx := c.Request().Context()
	listings, err := h.ShowRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]ShowView, 0, len(listings))
	for _, s := range listings {
		out = append(out, ShowView{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(startTimeLayout),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": out})
}

// CreateShowForm handles GET /shows/create and returns the empty form
// descriptor.
func (h *ShowHandler) CreateShowForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form": []string{"venue_id", "artist_id", "start_time"},
	})
}

// CreateShow handles POST /shows/create.  Both referenced ids must
// exist before anything is written; a missing venue or artist aborts
// the request with no insert.  There is no time-range validation: a
// show may be created in the past and simply never appears under
// upcoming.
func (h *ShowHandler) CreateShow(c echo.Context) error {
	ctx := c.Request().Context()
	venueID, err := strconv.ParseUint(c.FormValue("venue_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue_id"})
	}
	artistID, err := strconv.ParseUint(c.FormValue("artist_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist_id"})
	}
	startTime, err := parseStartTime(c.FormValue("start_time"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time"})
	}
	if _, err := h.VenueRepo.GetByID(ctx, venueID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Venue or Artist not found. Show could not be listed."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.ArtistRepo.GetByID(ctx, artistID); err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Venue or Artist not found. Show could not be listed."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	s := &model.Show{VenueID: venueID, ArtistID: artistID, StartTime: startTime}
	if err := h.ShowRepo.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred. Show could not be listed."})
	}
	if h.Publish != nil {
		h.Publish(queue.ListingCreatedEvent{Kind: "show", ID: s.ID, VenueID: venueID, ArtistID: artistID, StartTime: startTime.Format(startTimeLayout)})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Show was successfully listed!"})
}
