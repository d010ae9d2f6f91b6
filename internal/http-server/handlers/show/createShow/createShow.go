package createShow

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
	"venueBooker/internal/storage"
)

type ShowResponse struct {
	response.Response
	ShowID  int    `json:"show_id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowCreator
type ShowCreator interface {
	CreateShow(ctx context.Context, in models.ShowInput) (int, error)
}

func New(log *slog.Logger, shows ShowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.createShow.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.ShowInput

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

		showID, err := shows.CreateShow(r.Context(), req)
		if errors.Is(err, storage.ErrShowReferenceNotFound) {
			log.Info("show references missing artist or venue",
				slog.Int("artist_id", req.ArtistID),
				slog.Int("venue_id", req.VenueID),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("An error occurred. Show could not be listed: artist or venue does not exist."))
			return
		}
		if err != nil {
			log.Error("failed to add show", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("An error occurred. Show could not be listed."))
			return
		}

		log.Info("show added", slog.Int("id", showID))

		render.JSON(w, r, ShowResponse{
			Response: response.OK(),
			ShowID:   showID,
			Message:  "Show was successfully listed!",
		})
	}
}
