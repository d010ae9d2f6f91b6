package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return New(sqlx.NewDb(db, "sqlmock"), WithClock(func() time.Time { return testNow })), mock
}

func validVenueInput() models.VenueInput {
	return models.VenueInput{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Reggae"},
	}
}

func TestLikePattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%the%", likePattern("the"))
	assert.Equal(t, "%hop%", likePattern("  hop "))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
	assert.Equal(t, "%%", likePattern(""))
}

func TestGetVenueNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	venue, err := s.GetVenue(context.Background(), 42)

	assert.Nil(t, venue)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestGetVenuePartitionsShows(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	pastStart := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	upcomingStart := time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "address", "phone", "genres", "image_link",
			"website_link", "facebook_link", "seeking_talent", "seeking_description",
		}).AddRow(
			1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			[]byte("{Jazz,Reggae}"), "https://img.example/hop.jpg",
			"https://www.themusicalhop.com", "https://www.facebook.com/TheMusicalHop", true, "Looking for local artists",
		))

	mock.ExpectQuery(regexp.QuoteMeta("JOIN artists a ON a.id = sh.artist_id")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"artist_id", "artist_name", "artist_image_link", "start_time"}).
			AddRow(4, "Guns N Petals", "https://img.example/gnp.jpg", pastStart).
			AddRow(5, "Matt Quevedo", "https://img.example/mq.jpg", testNow).
			AddRow(6, "The Wild Sax Band", "https://img.example/wsb.jpg", upcomingStart))

	venue, err := s.GetVenue(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, []string(venue.Genres))
	assert.True(t, venue.SeekingTalent)

	require.Len(t, venue.PastShows, 2)
	require.Len(t, venue.UpcomingShows, 1)
	assert.Equal(t, 2, venue.PastShowsCount)
	assert.Equal(t, 1, venue.UpcomingShowsCount)

	assert.Equal(t, "Guns N Petals", venue.PastShows[0].ArtistName)
	assert.Equal(t, "05/21/2019, 21:30", venue.PastShows[0].StartTime)
	assert.Equal(t, 5, venue.PastShows[1].ArtistID)
	assert.Equal(t, 6, venue.UpcomingShows[0].ArtistID)
	assert.Equal(t, "04/08/2035, 20:00", venue.UpcomingShows[0].StartTime)
}

func TestGetArtistNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	artist, err := s.GetArtist(context.Background(), 9)

	assert.Nil(t, artist)
	assert.ErrorIs(t, err, storage.ErrArtistNotFound)
}

func TestListVenueAreasGroupsRows(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM venues v")).
		WithArgs(testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "upcoming_shows_count"}).
			AddRow(2, "The Dueling Pianos Bar", "New York", "NY", 0).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 1).
			AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA", 2))

	areas, err := s.ListVenueAreas(context.Background())
	require.NoError(t, err)

	require.Len(t, areas, 2)
	assert.Equal(t, "New York", areas[0].City)
	assert.Len(t, areas[0].Venues, 1)
	assert.Equal(t, "San Francisco", areas[1].City)
	require.Len(t, areas[1].Venues, 2)
	assert.Equal(t, 2, areas[1].Venues[1].UpcomingShowsCount)
}

func TestSearchVenuesUsesEscapedPattern(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE v.name ILIKE $1")).
		WithArgs("%the%", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "upcoming_shows_count"}).
			AddRow(1, "The Musical Hop", 1))

	result, err := s.SearchVenues(context.Background(), "the")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "The Musical Hop", result.Data[0].Name)
	assert.Equal(t, 1, result.Data[0].UpcomingShowsCount)
}

func TestSearchArtistsNoMatches(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.name ILIKE $1")).
		WithArgs("%zzz%", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "upcoming_shows_count"}))

	result, err := s.SearchArtists(context.Background(), "zzz")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)
}

func TestCreateVenue(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	in := validVenueInput()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO venues")).
		WithArgs(in.Name, in.City, in.State, in.Address, in.Phone, sqlmock.AnyArg(),
			"", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))
	mock.ExpectCommit()

	id, err := s.CreateVenue(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 17, id)
}

func TestCreateVenueRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO venues")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	id, err := s.CreateVenue(context.Background(), validVenueInput())

	require.Error(t, err)
	assert.Zero(t, id)
	assert.Contains(t, err.Error(), "storage.postgres.CreateVenue")
	assert.NotErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestCreateVenueCommitFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO venues")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := s.CreateVenue(context.Background(), validVenueInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit")
}

func TestUpdateVenueNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := s.UpdateVenue(context.Background(), 5, validVenueInput())

	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestUpdateVenue(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	in := validVenueInput()
	in.SeekingTalent = true

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM venues WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE venues")).
		WithArgs(5, in.Name, in.City, in.State, in.Address, in.Phone, sqlmock.AnyArg(),
			"", "", "", true, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.UpdateVenue(context.Background(), 5, in))
}

func TestDeleteVenueRemovesShowsFirst(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shows WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteVenue(context.Background(), 1))
}

func TestDeleteVenueNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shows WHERE venue_id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteVenue(context.Background(), 99)

	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestDeleteArtistNotFound(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM shows WHERE artist_id = $1")).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM artists WHERE id = $1")).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteArtist(context.Background(), 8)

	assert.ErrorIs(t, err, storage.ErrArtistNotFound)
}

func TestCreateShowMissingReference(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	in := models.ShowInput{ArtistID: 1, VenueID: 404, StartTime: testNow.Add(24 * time.Hour)}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shows")).
		WithArgs(in.StartTime, in.ArtistID, in.VenueID).
		WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"shows\" violates foreign key constraint"})
	mock.ExpectRollback()

	id, err := s.CreateShow(context.Background(), in)

	assert.Zero(t, id)
	assert.ErrorIs(t, err, storage.ErrShowReferenceNotFound)
}

func TestCreateShow(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	in := models.ShowInput{ArtistID: 1, VenueID: 2, StartTime: testNow.Add(24 * time.Hour)}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shows")).
		WithArgs(in.StartTime, in.ArtistID, in.VenueID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	id, err := s.CreateShow(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 11, id)
}

func TestListShowsFormatsStartTime(t *testing.T) {
	t.Parallel()

	s, mock := newMockStorage(t)

	start := time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shows sh")).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "start_time", "venue_id", "venue_name", "venue_image_link",
			"artist_id", "artist_name", "artist_image_link",
		}).AddRow(1, start, 3, "Park Square Live Music & Coffee", "", 6, "The Wild Sax Band", "https://img.example/wsb.jpg"))

	shows, err := s.ListShows(context.Background())
	require.NoError(t, err)

	require.Len(t, shows, 1)
	assert.Equal(t, "2035-04-15 20:00:00", shows[0].StartTime)
	assert.Equal(t, "The Wild Sax Band", shows[0].ArtistName)
	assert.Equal(t, 3, shows[0].VenueID)
}
