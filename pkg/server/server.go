package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	dashboardhandlers "github.com/modelyard/reportdeck/pkg/handlers/dashboard"
	reporthandlers "github.com/modelyard/reportdeck/pkg/handlers/reports"
	reportdeckmiddleware "github.com/modelyard/reportdeck/pkg/server/middleware"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/services/config"
	"github.com/modelyard/reportdeck/pkg/services/report"
	"github.com/modelyard/reportdeck/pkg/web"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Explorer catalog.Explorer
	Loader   report.Loader
	Links    config.LinksConfig
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(cfg Config) *chi.Mux {
	apiHandler := reporthandlers.NewHandler(cfg.Dependencies.Explorer, cfg.Dependencies.Loader)
	pageHandler := dashboardhandlers.NewHandler(
		cfg.Dependencies.Explorer,
		cfg.Dependencies.Loader,
		web.NewRenderer(),
		cfg.Dependencies.Links,
	)

	logger := cfg.Dependencies.Logger

	router := chi.NewRouter()
	router.Use(reportdeckmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/", pageHandler.Index)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/static/*", web.StaticHandler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", apiHandler.ListProjects)
		r.Get("/projects/{project}/periods", apiHandler.ListPeriods)
		r.Get("/projects/{project}/periods/{period}/reports", apiHandler.ListReports)
		r.Get("/projects/{project}/periods/{period}/reports/{report}", apiHandler.GetReport)
	})

	router.Route("/frames", func(r chi.Router) {
		r.Get("/{project}/{period}/{report}", apiHandler.GetFrame)
		r.Get("/{project}/{period}/{report}/{part}", apiHandler.GetFramePart)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, cfg Config) *WebAPI {
	cfg.Dependencies.Logger = logger
	router := ConfigureRouter(cfg)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    cfg.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
