// This file holds persistence for shows and the joined rows the
// listing and detail views are built from.  Shows are insert-only:
// there is no update or standalone delete (venue deletion cascades
// over them in VenueRepo.Delete).
//
// Every query that compares against "now" takes the instant as an
// argument instead of calling NOW() in SQL, so callers (and tests) can
// pin the clock.  Both partitions use strict inequalities: a show
// starting exactly at the given instant is neither past nor upcoming.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueShow is one show on a venue's detail page, joined to the
// performing artist.
type VenueShow struct {
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ArtistShow is one show on an artist's detail page, joined to the
// hosting venue.
type ArtistShow struct {
	VenueID        uint64
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ShowListing is one row of the flat shows index, joined to both
// sides.
type ShowListing struct {
	VenueID         uint64
	VenueName       string
	ArtistID        uint64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct.  Referential validity of venue_id and artist_id is checked
// by the handler before this is called; the FK constraints are the
// last line of defense.  Runs in its own transaction.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	err = tx.Commit()
	return err
}

// CountUpcomingByVenue counts shows at the venue starting strictly
// after now.  Evaluated live on every listing and search request.
func (r *ShowRepo) CountUpcomingByVenue(ctx context.Context, venueID uint64, now time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM shows WHERE venue_id = ? AND start_time > ?`
	var n int
	err := r.db.QueryRowContext(ctx, q, venueID, now).Scan(&n)
	return n, err
}

// CountUpcomingByArtist counts shows by the artist starting strictly
// after now.
func (r *ShowRepo) CountUpcomingByArtist(ctx context.Context, artistID uint64, now time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM shows WHERE artist_id = ? AND start_time > ?`
	var n int
	err := r.db.QueryRowContext(ctx, q, artistID, now).Scan(&n)
	return n, err
}

const venueShowCols = `s.artist_id, a.name, a.image_link, s.start_time`

func (r *ShowRepo) queryVenueShows(ctx context.Context, q string, venueID uint64, now time.Time) ([]VenueShow, error) {
	rows, err := r.db.QueryContext(ctx, q, venueID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []VenueShow
	for rows.Next() {
		var vs VenueShow
		if err := rows.Scan(&vs.ArtistID, &vs.ArtistName, &vs.ArtistImageLink, &vs.StartTime); err != nil {
			return nil, err
		}
		result = append(result, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PastByVenue returns the venue's shows with start_time strictly
// before now, joined to the performing artist.
func (r *ShowRepo) PastByVenue(ctx context.Context, venueID uint64, now time.Time) ([]VenueShow, error) {
	const q = `SELECT ` + venueShowCols + `
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ? AND s.start_time < ?
	           ORDER BY s.start_time ASC`
	return r.queryVenueShows(ctx, q, venueID, now)
}

// UpcomingByVenue returns the venue's shows with start_time strictly
// after now, joined to the performing artist.
func (r *ShowRepo) UpcomingByVenue(ctx context.Context, venueID uint64, now time.Time) ([]VenueShow, error) {
	const q = `SELECT ` + venueShowCols + `
	           FROM shows s
	           JOIN artists a ON a.id = s.artist_id
	           WHERE s.venue_id = ? AND s.start_time > ?
	           ORDER BY s.start_time ASC`
	return r.queryVenueShows(ctx, q, venueID, now)
}

const artistShowCols = `s.venue_id, v.name, v.image_link, s.start_time`

func (r *ShowRepo) queryArtistShows(ctx context.Context, q string, artistID uint64, now time.Time) ([]ArtistShow, error) {
	rows, err := r.db.QueryContext(ctx, q, artistID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ArtistShow
	for rows.Next() {
		var as ArtistShow
		if err := rows.Scan(&as.VenueID, &as.VenueName, &as.VenueImageLink, &as.StartTime); err != nil {
			return nil, err
		}
		result = append(result, as)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PastByArtist returns the artist's shows with start_time strictly
// before now, joined to the hosting venue.
func (r *ShowRepo) PastByArtist(ctx context.Context, artistID uint64, now time.Time) ([]ArtistShow, error) {
	const q = `SELECT ` + artistShowCols + `
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ? AND s.start_time < ?
	           ORDER BY s.start_time ASC`
	return r.queryArtistShows(ctx, q, artistID, now)
}

// UpcomingByArtist returns the artist's shows with start_time strictly
// after now, joined to the hosting venue.
func (r *ShowRepo) UpcomingByArtist(ctx context.Context, artistID uint64, now time.Time) ([]ArtistShow, error) {
	const q = `SELECT ` + artistShowCols + `
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           WHERE s.artist_id = ? AND s.start_time > ?
	           ORDER BY s.start_time ASC`
	return r.queryArtistShows(ctx, q, artistID, now)
}

// ListAll returns every show joined to its venue and artist, in
// storage order (id ascending).  No filtering or pagination.
func (r *ShowRepo) ListAll(ctx context.Context) ([]ShowListing, error) {
	const q = `SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
	           FROM shows s
	           JOIN venues v ON v.id = s.venue_id
	           JOIN artists a ON a.id = s.artist_id
	           ORDER BY s.id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ShowListing
	for rows.Next() {
		var sl ShowListing
		if err := rows.Scan(&sl.VenueID, &sl.VenueName, &sl.ArtistID, &sl.ArtistName, &sl.ArtistImageLink, &sl.StartTime); err != nil {
			return nil, err
		}
		result = append(result, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
