package main

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"venueBooker/internal/config"
	"venueBooker/internal/http-server/handlers/artist/createArtist"
	"venueBooker/internal/http-server/handlers/artist/deleteArtist"
	"venueBooker/internal/http-server/handlers/artist/editArtist"
	"venueBooker/internal/http-server/handlers/artist/getArtist"
	"venueBooker/internal/http-server/handlers/artist/listArtists"
	"venueBooker/internal/http-server/handlers/artist/searchArtists"
	"venueBooker/internal/http-server/handlers/show/createShow"
	"venueBooker/internal/http-server/handlers/show/listShows"
	"venueBooker/internal/http-server/handlers/venue/createVenue"
	"venueBooker/internal/http-server/handlers/venue/deleteVenue"
	"venueBooker/internal/http-server/handlers/venue/editVenue"
	"venueBooker/internal/http-server/handlers/venue/getVenue"
	"venueBooker/internal/http-server/handlers/venue/listVenues"
	"venueBooker/internal/http-server/handlers/venue/searchVenues"
	"venueBooker/internal/http-server/middleware/mwlogger"
	"venueBooker/internal/lib/logger/handlers/slogpretty"
	"venueBooker/internal/lib/logger/sl"
	"venueBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting venue booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Database.Migrate {
		if err = storage.Migrate(context.Background()); err != nil {
			log.Error("failed to migrate schema", sl.Err(err))
			os.Exit(1)
		}
		log.Info("schema is up to date")
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/venues", func(r chi.Router) {
		r.Get("/", listVenues.New(log, storage))
		r.Post("/", createVenue.New(log, storage))
		r.Post("/search", searchVenues.New(log, storage))
		r.Get("/{id}", getVenue.New(log, storage))
		r.Post("/{id}/edit", editVenue.New(log, storage))
		r.Delete("/{id}", deleteVenue.New(log, storage))
	})

	router.Route("/artists", func(r chi.Router) {
		r.Get("/", listArtists.New(log, storage))
		r.Post("/", createArtist.New(log, storage))
		r.Post("/search", searchArtists.New(log, storage))
		r.Get("/{id}", getArtist.New(log, storage))
		r.Post("/{id}/edit", editArtist.New(log, storage))
		r.Delete("/{id}", deleteArtist.New(log, storage))
	})

	router.Get("/shows", listShows.New(log, storage))
	router.Post("/shows", createShow.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
