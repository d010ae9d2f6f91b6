package deleteVenue

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
	"venueBooker/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int) error
}

// New deletes a venue together with its shows.
func New(log *slog.Logger, venues VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

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

		err = venues.DeleteVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete venue"))
			return
		}

		log.Info("venue deleted")

		render.JSON(w, r, response.OK())
	}
}
