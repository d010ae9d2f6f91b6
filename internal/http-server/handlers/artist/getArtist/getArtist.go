package getArtist

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

type ArtistResponse struct {
	response.Response
	Artist *models.ArtistDetail `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id int) (*models.ArtistDetail, error)
}

func New(log *slog.Logger, artists ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtist.New"

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

		artist, err := artists.GetArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))
			return
		}

		log.Info("artist retrieved",
			slog.Int("past_shows", artist.PastShowsCount),
			slog.Int("upcoming_shows", artist.UpcomingShowsCount),
		)

		responseOK(w, r, artist)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artist *models.ArtistDetail) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK(),
		Artist:   artist,
	})
}
