package deleteArtist

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistDeleter
type ArtistDeleter interface {
	DeleteArtist(ctx context.Context, id int) error
}

// New deletes an artist together with its shows.
func New(log *slog.Logger, artists ArtistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.deleteArtist.New"

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

		err = artists.DeleteArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete artist"))
			return
		}

		log.Info("artist deleted")

		render.JSON(w, r, response.OK())
	}
}
