package createVenue

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
)

type VenueResponse struct {
	response.Response
	VenueID int    `json:"venue_id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, in models.VenueInput) (int, error)
}

func New(log *slog.Logger, venues VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.VenueInput

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		venueID, err := venues.CreateVenue(r.Context(), req)
		if err != nil {
			log.Error("failed to add venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name),
			))
			return
		}

		log.Info("venue added", slog.Int("id", venueID))

		responseOK(w, r, venueID, req.Name)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venueID int, name string) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		VenueID:  venueID,
		Message:  fmt.Sprintf("Venue %s was successfully listed!", name),
	})
}
