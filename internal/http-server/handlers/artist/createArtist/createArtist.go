package createArtist

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

type ArtistResponse struct {
	response.Response
	ArtistID int    `json:"artist_id"`
	Message  string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, in models.ArtistInput) (int, error)
}

func New(log *slog.Logger, artists ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.ArtistInput

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

		artistID, err := artists.CreateArtist(r.Context(), req)
		if err != nil {
			log.Error("failed to add artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name),
			))
			return
		}

		log.Info("artist added", slog.Int("id", artistID))

		responseOK(w, r, artistID, req.Name)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artistID int, name string) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK(),
		ArtistID: artistID,
		Message:  fmt.Sprintf("Artist %s was successfully listed!", name),
	})
}
