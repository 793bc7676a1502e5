// Package repository contains data access logic for the booking
// directory.  This file holds persistence for venues.  All write
// operations run inside a transaction that is committed on success and
// rolled back on any failure, so a failed request never leaves a
// partially-applied change or an open transaction behind.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrVenueNotFound indicates that a venue was not located in the DB.
var ErrVenueNotFound = errors.New("venue not found")

// Area is one distinct (city, state) pair taken across all venues.
// The grouped venue listing is built from these.
type Area struct {
	City  string
	State string
}

// VenueRepo manages persistence for venues.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// venueCols is the column list shared by every venue SELECT.  Scan
// order in scanVenue must match.
const venueCols = `id, name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, genres`

// scanVenue reads one venue row.  The genres column is stored as a
// single delimited string and is split back into a slice here, at the
// storage boundary.
func scanVenue(row interface{ Scan(dest ...any) error }) (*model.Venue, error) {
	var v model.Venue
	var genres string
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website,
		&v.SeekingTalent, &v.SeekingDescription, &genres,
	)
	if err != nil {
		return nil, err
	}
	v.Genres = model.SplitGenres(genres)
	return &v, nil
}

// Create inserts a new venue and assigns the generated ID back to the
// struct.  The insert runs in its own transaction so the session is
// clean on every exit path.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, website, seeking_talent, seeking_description, genres)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		v.Name, v.City, v.State, v.Address, v.Phone,
		v.ImageLink, v.FacebookLink, v.Website,
		v.SeekingTalent, v.SeekingDescription, model.JoinGenres(v.Genres),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	err = tx.Commit()
	return err
}

// GetByID retrieves a venue by its ID.  It returns ErrVenueNotFound
// when there is no matching row; callers must check this before
// touching any field.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE id = ?`
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// Update overwrites the mutable fields of a venue: name, genres, city,
// state, phone, facebook_link and address.  Image link, website and
// the seeking fields are not part of the edit form and stay untouched.
// Runs in a transaction; zero rows affected is not an error because
// MySQL reports no change when the submitted values equal the stored
// ones (existence is checked by the caller via GetByID).
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	const q = `UPDATE venues SET name = ?, genres = ?, address = ?, city = ?, state = ?, phone = ?, facebook_link = ? WHERE id = ?`
	_, err = tx.ExecContext(ctx, q,
		v.Name, model.JoinGenres(v.Genres), v.Address, v.City, v.State, v.Phone, v.FacebookLink, v.ID,
	)
	if err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// Delete removes the venue with the given ID together with every show
// that references it.  Both deletes run in one transaction so no
// orphaned shows can survive a partial failure.  ErrVenueNotFound is
// returned (and the transaction rolled back) when no venue row
// matched.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
		return err
	}
	res, execErr := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if execErr != nil {
		err = execErr
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	err = tx.Commit()
	return err
}

// ListAreas returns the distinct (city, state) pairs across all
// venues, ordered by city then state ascending.  The order is part of
// the listing contract: consumers see groups in this order and must
// not assume anything else.
func (r *VenueRepo) ListAreas(ctx context.Context) ([]Area, error) {
	const q = `SELECT DISTINCT city, state FROM venues ORDER BY city ASC, state ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var areas []Area
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.City, &a.State); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return areas, nil
}

// ListByCityState returns all venues in the exact (city, state) pair,
// ordered by ID ascending.
func (r *VenueRepo) ListByCityState(ctx context.Context, city, state string) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE city = ? AND state = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, city, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName returns venues whose name contains term as a
// case-insensitive substring.  An empty term matches every venue.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueCols + ` FROM venues WHERE LOWER(name) LIKE ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
