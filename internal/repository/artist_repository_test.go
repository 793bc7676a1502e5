package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/model"
)

func newArtistMock(t *testing.T) (sqlmock.Sqlmock, *ArtistRepo, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return mock, NewArtistRepo(db), func() { db.Close() }
}

func artistRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "city", "state", "phone",
		"image_link", "facebook_link", "website",
		"seeking_venue", "seeking_description", "genres",
	})
}

func TestArtistRepoCreateAssignsID(t *testing.T) {
	mock, repo, done := newArtistMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO artists`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000",
			"", "", "", false, "", "Rock n Roll").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	a := &model.Artist{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, uint64(4), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepoGetByIDNotFound(t *testing.T) {
	mock, repo, done := newArtistMock(t)
	defer done()

	mock.ExpectQuery(`SELECT .+ FROM artists WHERE id = \?`).
		WithArgs(uint64(42)).
		WillReturnRows(artistRows())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistRepoGetByIDSplitsGenres(t *testing.T) {
	mock, repo, done := newArtistMock(t)
	defer done()

	mock.ExpectQuery(`SELECT .+ FROM artists WHERE id = \?`).
		WithArgs(uint64(4)).
		WillReturnRows(artistRows().
			AddRow(uint64(4), "Guns N Petals", "San Francisco", "CA", "326-123-5000",
				"", "", "", true, "Looking for shows", "Rock n Roll,Classical"))

	a, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rock n Roll", "Classical"}, a.Genres)
	assert.True(t, a.SeekingVenue)
}

func TestArtistRepoUpdateRollsBackOnFailure(t *testing.T) {
	mock, repo, done := newArtistMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE artists SET`)).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	a := &model.Artist{ID: 4, Name: "Guns N Petals", Genres: []string{}}
	err := repo.Update(context.Background(), a)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepoSearchByNameCaseInsensitive(t *testing.T) {
	mock, repo, done := newArtistMock(t)
	defer done()

	mock.ExpectQuery(`SELECT .+ FROM artists WHERE LOWER\(name\) LIKE \?`).
		WithArgs("%petals%").
		WillReturnRows(artistRows().
			AddRow(uint64(4), "Guns N Petals", "San Francisco", "CA", "326-123-5000",
				"", "", "", false, "", "Rock n Roll"))

	artists, err := repo.SearchByName(context.Background(), "PETALS")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Guns N Petals", artists[0].Name)
}
