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

// ArtistHandler aggregates the repositories needed for artist routes.
// Artists have no delete route; the surface is create, edit, search,
// index and detail only.
type ArtistHandler struct {
	ArtistRepo *repository.ArtistRepo
	ShowRepo   *repository.ShowRepo
	Now        func() time.Time
	Publish    func(event queue.ListingCreatedEvent)
}

func (h *ArtistHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ArtistRef is one artist row of the index.
type ArtistRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ArtistSummary is one artist inside a search result.
type ArtistSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistShowView is one show on an artist page, joined to the venue.
type ArtistShowView struct {
	VenueID        uint64 `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistPage is the full artist detail view-model.
type ArtistPage struct {
	ID                 uint64           `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []ArtistShowView `json:"past_shows"`
	UpcomingShows      []ArtistShowView `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

// SearchArtistsResult is the response of POST /artists/search.
type SearchArtistsResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// Artists handles GET /artists.  Unlike the venues index there is no
// grouping: the page is a flat list of id and name.
func (h *ArtistHandler) Artists(c echo.Context) error {
	ctx := c.Request().Context()
	artists, err := h.ArtistRepo.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]ArtistRef, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistRef{ID: a.ID, Name: a.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}

// SearchArtists handles POST /artists/search, the artist analogue of
// the venue search.
func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	now := h.now()
	term := c.FormValue("search_term")
	artists, err := h.ArtistRepo.SearchByName(ctx, term)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	data := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		n, err := h.ShowRepo.CountUpcomingByArtist(ctx, a.ID, now)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		data = append(data, ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: n})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"results":     SearchArtistsResult{Count: len(artists), Data: data},
		"search_term": term,
	})
}

// GetArtist handles GET /artists/:id.  Same partitioning contract as
// the venue page: strict inequalities, a show starting exactly now is
// in neither list.
func (h *ArtistHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	now := h.now()
	past, err := h.ShowRepo.PastByArtist(ctx, id, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	upcoming, err := h.ShowRepo.UpcomingByArtist(ctx, id, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	page := ArtistPage{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          artistShowViews(past),
		UpcomingShows:      artistShowViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return c.JSON(http.StatusOK, page)
}

func artistShowViews(shows []repository.ArtistShow) []ArtistShowView {
	out := make([]ArtistShowView, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShowView{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime.Format(startTimeLayout),
		})
	}
	return out
}

// CreateArtistForm handles GET /artists/create and returns the empty
// form descriptor.
func (h *ArtistHandler) CreateArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"form": []string{"name", "genres", "city", "state", "phone", "facebook_link"},
	})
}

// CreateArtist handles POST /artists/create, mirroring venue creation
// without the address field.
func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	ctx := c.Request().Context()
	a := &model.Artist{
		Name:         c.FormValue("name"),
		Genres:       formGenres(c),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		Phone:        c.FormValue("phone"),
		FacebookLink: c.FormValue("facebook_link"),
	}
	if err := validate.CheckPhone(a.Phone); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("Incorrect phone number format xxx-xxx-xxxx (%s), please try again.", a.Phone),
		})
	}
	if err := h.ArtistRepo.Create(ctx, a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name),
		})
	}
	if h.Publish != nil {
		h.Publish(queue.ListingCreatedEvent{Kind: "artist", ID: a.ID, Name: a.Name, City: a.City, State: a.State})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Artist %s was successfully listed!", a.Name),
	})
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artist": a})
}

// EditArtist handles POST /artists/:id/edit.  Redirects to the artist
// detail view on success.
func (h *ArtistHandler) EditArtist(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	a, err := h.ArtistRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	a.Name = c.FormValue("name")
	a.Genres = formGenres(c)
	a.City = c.FormValue("city")
	a.State = c.FormValue("state")
	a.Phone = c.FormValue("phone")
	a.FacebookLink = c.FormValue("facebook_link")
	if err := validate.CheckPhone(a.Phone); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": fmt.Sprintf("Incorrect phone number format xxx-xxx-xxxx (%s), please try again.", a.Phone),
		})
	}
	if err := h.ArtistRepo.Update(ctx, a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name),
		})
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d", id))
}
