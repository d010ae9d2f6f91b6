package listVenues

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"venueBooker/internal/http-server/handlers/venue/listVenues/mocks"
	"venueBooker/internal/lib/logger/handlers/slogdiscard"
	"venueBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListVenuesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.VenueAreasGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.VenueAreasGetter) {
				m.On("ListVenueAreas", mock.Anything).Return([]models.Area{
					{
						City:  "San Francisco",
						State: "CA",
						Venues: []models.VenueSummary{
							{ID: 1, Name: "The Musical Hop", UpcomingShowsCount: 0},
							{ID: 3, Name: "Park Square Live Music & Coffee", UpcomingShowsCount: 1},
						},
					},
					{
						City:   "New York",
						State:  "NY",
						Venues: []models.VenueSummary{{ID: 2, Name: "The Dueling Pianos Bar"}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","areas":[
				{"city":"San Francisco","state":"CA","venues":[
					{"id":1,"name":"The Musical Hop","upcoming_shows_count":0},
					{"id":3,"name":"Park Square Live Music & Coffee","upcoming_shows_count":1}]},
				{"city":"New York","state":"NY","venues":[
					{"id":2,"name":"The Dueling Pianos Bar","upcoming_shows_count":0}]}]}`,
		},
		{
			name: "Empty",
			mockSetup: func(m *mocks.VenueAreasGetter) {
				m.On("ListVenueAreas", mock.Anything).Return([]models.Area{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","areas":[]}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.VenueAreasGetter) {
				m.On("ListVenueAreas", mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get venues"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewVenueAreasGetter(t)
			tc.mockSetup(getter)

			handler := New(logger, getter)

			req := httptest.NewRequest(http.MethodGet, "/venues", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
