package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/validate"
)

// VenueHandler aggregates the repositories needed for venue routes.
// Now is the clock used for past/upcoming decisions; tests pin it,
// production leaves it nil and gets time.Now.  Publish, when set, is
// called with a listing event after each successful creation.
type VenueHandler struct {
	VenueRepo *repository.VenueRepo
	ShowRepo  *repository.ShowRepo
	Now       func() time.Time
	Publish   func(event queue.ListingCreatedEvent)
}

func (h *VenueHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// VenueSummary is one venue inside a listing group or search result.
type VenueSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaGroup is one (city, state) group of the venues index.
type AreaGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueShowView is one show on a venue page, joined to the artist.
type VenueShowView struct {
	ArtistID        uint64 `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the full venue detail view-model.
type VenuePage struct {
	ID                 uint64          `json:"id"`
	Name               string          `json:"name"`
	Genres             []string        `json:"genres"`
	Address            string          `json:"address"`
	City               string          `json:"city"`
	State              string          `json:"state"`
	Phone              string          `json:"phone"`
	Website            string          `json:"website"`
	FacebookLink       string          `json:"facebook_link"`
	SeekingTalent      bool            `json:"seeking_talent"`
	SeekingDescription string          `json:"seeking_description"`
	ImageLink          string          `json:"image_link"`
	PastShows          []VenueShowView `json:"past_shows"`
	UpcomingShows      []VenueShowView `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

// SearchVenuesResult is the response of POST /venues/search.
type SearchVenuesResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// Venues handles GET /venues.  It groups all venues by their exact
// (city, state) pair and computes each venue's number of upcoming
// shows against the current instant.  Groups come back ordered by
// city then state, venues within a group by id.
func (h *VenueHandler) Venues(c echo.Context) error {
	ctx := c.Request().Context()
	now := h.now()
	areas, err := h.VenueRepo.ListAreas(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	groups := make([]AreaGroup, 0, len(areas))
	for _, area := range areas {
		venues, err := h.VenueRepo.ListByCityState(ctx, area.City, area.State)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		summaries := make([]VenueSummary, 0, len(venues))
		for _, v := range venues {
			n, err := h.ShowRepo.CountUpcomingByVenue(ctx, v.ID, now)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
			}
			summaries = append(summaries, VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
		}
		groups = append(groups, AreaGroup{City: area.City, State: area.State, Venues: summaries})
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": groups})
}

// SearchVenues handles POST /venues/search.  The search_term form
// field is matched as a case-insensitive substring of the venue name;
// an empty term matches every venue.
func (h *VenueHandler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	now := h.now()
	term := c.FormValue("search_term")
	venues, err := h.VenueRepo.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	data := make([]VenueSummary, 0, len(venues))
	for _, v := range venues {
		n, err := h.ShowRepo.CountUpcomingByVenue(ctx, v.ID, now)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		data = append(data, VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: n})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     SearchVenuesResult{Count: len(venues), Data: data},
		"search_term": term,
	})
}

// GetVenue handles GET /venues/:id.  Unknown ids return 404 before
// any field is touched.  Shows are partitioned into past and upcoming
// with strict inequalities on both sides, so a show starting exactly
// now appears in neither list.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := h.now()
	past, err := h.ShowRepo.PastByVenue(ctx, id, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upcoming, err := h.ShowRepo.UpcomingByVenue(ctx, id, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	page := VenuePage{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          venueShowViews(past),
		UpcomingShows:      venueShowViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return c.JSON(http.StatusOK, page)
}

func venueShowViews(shows []repository.VenueShow) []VenueShowView {
	out := make([]VenueShowView, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShowView{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(startTimeLayout),
		})
	}
	return out
}

// CreateVenueForm handles GET /venues/create and returns the empty
// form descriptor.
func (h *VenueHandler) CreateVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form": []string{"name", "genres", "city", "state", "phone", "address", "facebook_link"},
	})
}

// CreateVenue handles POST /venues/create.  The phone number is
// validated before anything is written; an invalid phone aborts the
// request with no insert.  Persistence failures roll back and surface
// a generic message naming the venue.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	ctx := c.Request().Context()
	v := &model.Venue{
		Name:         c.FormValue("name"),
		Genres:       formGenres(c),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		Phone:        c.FormValue("phone"),
		Address:      c.FormValue("address"),
		FacebookLink: c.FormValue("facebook_link"),
	}
	if err := validate.CheckPhone(v.Phone); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("Incorrect phone number format xxx-xxx-xxxx (%s), please try again.", v.Phone),
		})
	}
	if err := h.VenueRepo.Create(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name),
		})
	}
	if h.Publish != nil {
		h.Publish(queue.ListingCreatedEvent{Kind: "venue", ID: v.ID, Name: v.Name, City: v.City, State: v.State})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully listed!", v.Name),
	})
}

// DeleteVenue handles DELETE /venues/:id.  The venue and every show
// referencing it are removed in one transaction.  Success is 204 with
// an empty body; any failure, including an unknown id, is a 400.
// Artists and shows intentionally have no delete route.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.VenueRepo.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue could not be deleted"})
	}
	return c.NoContent(http.StatusNoContent)
}

// EditVenueForm handles GET /venues/:id/edit.  It returns the stored
// fields with genres split back into a list, for the edit form to
// display.  Unknown ids return 404.
func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venue": v})
}

// EditVenue handles POST /venues/:id/edit.  Every mutable field is
// overwritten from the submitted form; the phone number is validated
// before committing.  On success the client is redirected to the
// venue's detail view.
func (h *VenueHandler) EditVenue(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	v.Name = c.FormValue("name")
	v.Genres = formGenres(c)
	v.Address = c.FormValue("address")
	v.City = c.FormValue("city")
	v.State = c.FormValue("state")
	v.Phone = c.FormValue("phone")
	v.FacebookLink = c.FormValue("facebook_link")
	if err := validate.CheckPhone(v.Phone); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("Incorrect phone number format xxx-xxx-xxxx (%s), please try again.", v.Phone),
		})
	}
	if err := h.VenueRepo.Update(ctx, v); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name),
		})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d", id))
}
