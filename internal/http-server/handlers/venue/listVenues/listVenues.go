package listVenues

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

type AreasResponse struct {
	response.Response
	Areas []models.Area `json:"areas"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueAreasGetter
type VenueAreasGetter interface {
	ListVenueAreas(ctx context.Context) ([]models.Area, error)
}

func New(log *slog.Logger, venues VenueAreasGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		areas, err := venues.ListVenueAreas(r.Context())
		if err != nil {
			log.Error("failed to get venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venues"))
			return
		}

		log.Info("venues retrieved successfully", slog.Int("areas", len(areas)))

		responseOK(w, r, areas)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, areas []models.Area) {
	render.JSON(w, r, AreasResponse{
		Response: response.OK(),
		Areas:    areas,
	})
}
