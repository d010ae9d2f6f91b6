package listArtists

import (
	"context"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
)

type ArtistsResponse struct {
	response.Response
	Artists []models.ArtistSummary `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistsGetter
type ArtistsGetter interface {
	ListArtists(ctx context.Context) ([]models.ArtistSummary, error)
}

func New(log *slog.Logger, artists ArtistsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.listArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := artists.ListArtists(r.Context())
		if err != nil {
			log.Error("failed to get artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artists"))
			return
		}

		log.Info("artists retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, ArtistsResponse{
			Response: response.OK(),
			Artists:  list,
		})
	}
}
