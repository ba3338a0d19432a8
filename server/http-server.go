package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/metrics"
	"golang.org/x/sync/errgroup"
)

// RouteRegistrar is implemented by every feature's http handler.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

type Options struct {
	CorsOrigins []string
	JwtKey      []byte
	LogLevel    slog.Level
	Env         string
	Version     string
}

type HttpServer struct {
	router *chi.Mux
	log    *slog.Logger
}

func NewHttpServer(opts Options, handlers ...RouteRegistrar) *HttpServer {
	router := chi.NewRouter()

	reqLogger := httplog.NewLogger("skilldev", httplog.Options{
		LogLevel:         opts.LogLevel,
		JSON:             opts.Env != "dev",
		Concise:          true,
		RequestHeaders:   false,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": opts.Version,
			"env":     opts.Env,
		},
	})

	router.Use(httplog.RequestLogger(reqLogger))
	router.Use(logger.Middleware(reqLogger.Logger))
	router.Use(metrics.InstrumentHandler)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", logger.RequestIDHeader},
		ExposedHeaders:   []string{"Link", logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(opts.JwtKey))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteSuccessJson(w, map[string]string{"status": "ok"})
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	return &HttpServer{router: router, log: reqLogger.Logger}
}

func (s *HttpServer) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests for
// up to shutdownTimeout.
func (s *HttpServer) Start(ctx context.Context, address string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("http server listening", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
