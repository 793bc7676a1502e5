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

func newMock(t *testing.T) (sqlmock.Sqlmock, *VenueRepo, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return mock, NewVenueRepo(db), func() { db.Close() }
}

func venueRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "city", "state", "address", "phone",
		"image_link", "facebook_link", "website",
		"seeking_talent", "seeking_description", "genres",
	})
}

func TestVenueRepoCreate(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO venues`)).
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			"", "", "", false, "", "Jazz,Reggae").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	v := &model.Venue{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
	require.NoError(t, repo.Create(context.Background(), v))
	assert.Equal(t, uint64(7), v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoCreateRollsBackOnFailure(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO venues`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Venue{Name: "Broken", Phone: "123-123-1234"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoGetByID(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	rows := venueRows().AddRow(
		uint64(3), "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
		"img", "fb", "site", true, "Looking for local artists", "Jazz,Reggae",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+venueCols+` FROM venues WHERE id = ?`)).
		WithArgs(uint64(3)).
		WillReturnRows(rows)

	v, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", v.Name)
	// Stored delimited string comes back as the submitted tag list.
	assert.Equal(t, []string{"Jazz", "Reggae"}, v.Genres)
	assert.True(t, v.SeekingTalent)
}

func TestVenueRepoGetByIDNotFound(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+venueCols+` FROM venues WHERE id = ?`)).
		WithArgs(uint64(99)).
		WillReturnRows(venueRows())

	v, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueRepoDeleteCascadesShows(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = ?`)).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venues WHERE id = ?`)).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoDeleteUnknownIDRollsBack(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM shows WHERE venue_id = ?`)).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM venues WHERE id = ?`)).
		WithArgs(uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVenueRepoListAreasOrdered(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{"city", "state"}).
		AddRow("New York", "NY").
		AddRow("San Francisco", "CA")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT city, state FROM venues ORDER BY city ASC, state ASC`)).
		WillReturnRows(rows)

	areas, err := repo.ListAreas(context.Background())
	require.NoError(t, err)
	// Groups come back in the documented city/state order.
	assert.Equal(t, []Area{{City: "New York", State: "NY"}, {City: "San Francisco", State: "CA"}}, areas)
}

func TestVenueRepoSearchByNameLowercasesPattern(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	rows := venueRows().AddRow(
		uint64(1), "The Musical Hop", "San Francisco", "CA", "", "123-123-1234",
		"", "", "", false, "", "Jazz",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+venueCols+` FROM venues WHERE LOWER(name) LIKE ?`)).
		WithArgs("%musical%").
		WillReturnRows(rows)

	result, err := repo.SearchByName(context.Background(), "Musical")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "The Musical Hop", result[0].Name)
}

func TestVenueRepoSearchByNameEmptyTerm(t *testing.T) {
	mock, repo, done := newMock(t)
	defer done()

	rows := venueRows().
		AddRow(uint64(1), "A", "X", "Y", "", "123-123-1234", "", "", "", false, "", "").
		AddRow(uint64(2), "B", "X", "Y", "", "123-123-1234", "", "", "", false, "", "")
	// The empty term becomes "%%", which matches every row.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+venueCols+` FROM venues WHERE LOWER(name) LIKE ?`)).
		WithArgs("%%").
		WillReturnRows(rows)

	result, err := repo.SearchByName(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
