package listShows

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

type ShowsResponse struct {
	response.Response
	Shows []models.ShowListing `json:"shows"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowsGetter
type ShowsGetter interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
}

func New(log *slog.Logger, shows ShowsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.listShows.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := shows.ListShows(r.Context())
		if err != nil {
			log.Error("failed to get shows", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get shows"))
			return
		}

		log.Info("shows retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, ShowsResponse{
			Response: response.OK(),
			Shows:    list,
		})
	}
}
