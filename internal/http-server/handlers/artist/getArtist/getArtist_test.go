package getArtist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"venueBooker/internal/http-server/handlers/artist/getArtist/mocks"
	"venueBooker/internal/lib/logger/handlers/slogdiscard"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleArtist() *models.ArtistDetail {
	return &models.ArtistDetail{
		Artist: models.Artist{
			ID:           4,
			Name:         "Guns N Petals",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "326-123-5000",
			Genres:       []string{"Rock n Roll"},
			SeekingVenue: true,
		},
		PastShows: []models.VenueShow{},
		UpcomingShows: []models.VenueShow{
			{VenueID: 1, VenueName: "The Musical Hop", StartTime: "04/08/2035, 20:00"},
		},
		UpcomingShowsCount: 1,
	}
}

func TestGetArtistHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		artistID       string
		mockSetup      func(m *mocks.ArtistGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:     "Success",
			artistID: "4",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("GetArtist", mock.Anything, 4).Return(sampleArtist(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp ArtistResponse
				require.NoError(t, json.Unmarshal(body, &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Artist)
				assert.Equal(t, "Guns N Petals", resp.Artist.Name)
				assert.True(t, resp.Artist.SeekingVenue)
				assert.Equal(t, 0, resp.Artist.PastShowsCount)
				assert.Equal(t, 1, resp.Artist.UpcomingShowsCount)
				require.Len(t, resp.Artist.UpcomingShows, 1)
				assert.Equal(t, "The Musical Hop", resp.Artist.UpcomingShows[0].VenueName)
			},
		},
		{
			name:           "Invalid id",
			artistID:       "4.5",
			mockSetup:      func(m *mocks.ArtistGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist id format"}`,
		},
		{
			name:     "Not found",
			artistID: "404",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("GetArtist", mock.Anything, 404).
					Return(nil, fmt.Errorf("storage.postgres.GetArtist: %w", storage.ErrArtistNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"artist not found"}`,
		},
		{
			name:     "Storage error",
			artistID: "5",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("GetArtist", mock.Anything, 5).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get artist"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewArtistGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/artists/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/artists/"+tc.artistID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
