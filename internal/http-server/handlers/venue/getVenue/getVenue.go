package getVenue

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

type VenueResponse struct {
	response.Response
	Venue *models.VenueDetail `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenue(ctx context.Context, id int) (*models.VenueDetail, error)
}

func New(log *slog.Logger, venues VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		venueIDStr := chi.URLParam(r, "id")
		if venueIDStr == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		venueID, err := strconv.Atoi(venueIDStr)
		if err != nil {
			log.Error("invalid venue id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id format"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		venue, err := venues.GetVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))
			return
		}

		log.Info("venue retrieved",
			slog.Int("past_shows", venue.PastShowsCount),
			slog.Int("upcoming_shows", venue.UpcomingShowsCount),
		)

		responseOK(w, r, venue)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venue *models.VenueDetail) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		Venue:    venue,
	})
}
