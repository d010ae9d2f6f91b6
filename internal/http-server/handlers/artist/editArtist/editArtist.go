package editArtist

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
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistUpdater
type ArtistUpdater interface {
	UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error
}

func New(log *slog.Logger, artists ArtistUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		artistIDStr := chi.URLParam(r, "id")
		if artistIDStr == "" {
			log.Error("artist id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("artist id is required"))
			return
		}

		artistID, err := strconv.Atoi(artistIDStr)
		if err != nil {
			log.Error("invalid artist id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id format"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		var req models.ArtistInput

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

		err = artists.UpdateArtist(r.Context(), artistID, req)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to update artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(
				fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name),
			))
			return
		}

		log.Info("artist updated")

		render.JSON(w, r, EditResponse{
			Response: response.OK(),
			ArtistID: artistID,
		})
	}
}
