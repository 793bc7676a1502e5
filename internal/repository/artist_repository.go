// This file holds persistence for artists.  Artists have no delete
// operation: the HTTP surface never exposes one, so the repository does
// not implement it either.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ErrArtistNotFound indicates that an artist was not located in the DB.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

const artistCols = `id, name, city, state, phone, image_link, facebook_link, website, seeking_venue, seeking_description, genres`

func scanArtist(row interface{ Scan(dest ...any) error }) (*model.Artist, error) {
	var a model.Artist
	var genres string
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.Website,
		&a.SeekingVenue, &a.SeekingDescription, &genres,
	)
	if err != nil {
		return nil, err
	}
	a.Genres = model.SplitGenres(genres)
	return &a, nil
}

// Create inserts a new artist and assigns the generated ID back to the
// struct.  Runs in its own transaction, committed on success and
// rolled back on any failure.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	const q = `INSERT INTO artists (name, city, state, phone, image_link, facebook_link, website, seeking_venue, seeking_description, genres)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		a.Name, a.City, a.State, a.Phone,
		a.ImageLink, a.FacebookLink, a.Website,
		a.SeekingVenue, a.SeekingDescription, model.JoinGenres(a.Genres),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	err = tx.Commit()
	return err
}

// GetByID retrieves an artist by its ID, returning ErrArtistNotFound
// when no row matches.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE id = ?`
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// Update overwrites the mutable fields of an artist: name, genres,
// city, state, phone and facebook_link.  There is no address column on
// artists.  Existence is checked by the caller via GetByID.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	const q = `UPDATE artists SET name = ?, genres = ?, city = ?, state = ?, phone = ?, facebook_link = ? WHERE id = ?`
	_, err = tx.ExecContext(ctx, q,
		a.Name, model.JoinGenres(a.Genres), a.City, a.State, a.Phone, a.FacebookLink, a.ID,
	)
	if err != nil {
		return err
	}
	err = tx.Commit()
	return err
}

// ListAll returns every artist ordered by ID ascending.  The artists
// index projects just id and name from these rows.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchByName returns artists whose name contains term as a
// case-insensitive substring.  An empty term matches every artist.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistCols + ` FROM artists WHERE LOWER(name) LIKE ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, likePattern(term))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
