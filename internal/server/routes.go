package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/cumaker/makerspace/internal/handler/health"
	"github.com/cumaker/makerspace/internal/makerspace"
)

func addRoutes(r chi.Router, logger *slog.Logger, cat *makerspace.Catalog, policy makerspace.Policy, spaDir string) {
	v := newValidator()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Makerspace API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, map[string]health.Checker{
		"catalog": catalogChecker{cat},
		"tracks":  trackChecker{cat},
	}).Routes())

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", handleListCategories(cat))
		r.Get("/equipment", handleListEquipment(cat))

		// {id} resolved by equipmentMiddleware.
		r.Route("/equipment/{id}", func(r chi.Router) {
			r.Use(equipmentMiddleware(cat))
			r.Get("/", handleGetEquipment(cat))
			r.Post("/access", handleAccess(cat, policy, v))
		})

		r.Get("/tracks", handleListTracks(cat, policy))

		// {trackID} resolved by trackMiddleware.
		r.Route("/tracks/{trackID}", func(r chi.Router) {
			r.Use(trackMiddleware(cat))
			r.Get("/", handleGetTrack(cat, policy))
			r.Post("/attempts", handleStartAttempt())
			r.Post("/grade", handleGrade(logger, policy, v))
		})

		r.Get("/locations", handleListLocations(cat))
		r.Get("/printers", handleListPrinters(cat))
		r.Get("/workshops", handleListWorkshops(cat))

		r.NotFound(handleAPINotFound())
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
