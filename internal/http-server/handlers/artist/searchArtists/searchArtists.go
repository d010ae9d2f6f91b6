package searchArtists

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"io"
	"log/slog"
	"net/http"
	"venueBooker/internal/lib/api/response"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/models"
)

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

type SearchResponse struct {
	response.Response
	SearchTerm string `json:"search_term"`
	models.ArtistSearchResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistSearcher
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, term string) (*models.ArtistSearchResult, error)
}

func New(log *slog.Logger, artists ArtistSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.searchArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req SearchRequest

		// An empty body searches for everything.
		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		result, err := artists.SearchArtists(r.Context(), req.SearchTerm)
		if err != nil {
			log.Error("failed to search artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search artists"))
			return
		}

		log.Info("artists searched",
			slog.String("search_term", req.SearchTerm),
			slog.Int("count", result.Count),
		)

		responseOK(w, r, req.SearchTerm, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, term string, result *models.ArtistSearchResult) {
	render.JSON(w, r, SearchResponse{
		Response:           response.OK(),
		SearchTerm:         term,
		ArtistSearchResult: *result,
	})
}
