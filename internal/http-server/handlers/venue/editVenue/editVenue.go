package editVenue

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strconv"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

type EditResponse struct {
	response.Response
	VenueID int `json:"venue_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueUpdater
type VenueUpdater interface {
	UpdateVenue(ctx context.Context, id int, in models.VenueInput) error
}

func New(log *slog.Logger, venues VenueUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.New"

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

		var req models.VenueInput

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = venues.UpdateVenue(r.Context(), venueID, req)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to update venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name),
			))
			return
		}

		log.Info("venue updated")

		render.JSON(w, r, EditResponse{
			Response: response.OK(),
			VenueID:  venueID,
		})
	}
}
