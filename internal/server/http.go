package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger is a dependency whose reachability /ping reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires base routes (health, ping, metrics) and the trivia API.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pingers []Pinger, triviaHandlers *trivia.HTTPHandlers) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: NewRouter(cfg, logger, pingers, triviaHandlers),
	}
}

// NewRouter builds the root handler with middleware and every route mounted.
func NewRouter(cfg *config.App, logger zerolog.Logger, pingers []Pinger, triviaHandlers *trivia.HTTPHandlers) http.Handler {
	logger = logger.With().Str("component", "http_server").Logger()

	registry := prometheus.NewRegistry()
	metrics := newHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(recoverer(logger))
	r.Use(requestID)
	r.Use(accessLog(logger))
	r.Use(metrics.middleware)
	r.Use(corsHeaders(cfg.CORS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:         cfg.CORS.MaxAge,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pingers); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondBadGateway(w)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"pong": true})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	if triviaHandlers != nil {
		triviaHandlers.Routes(r)
	}

	return r
}

func pingDependencies(ctx context.Context, pingers []Pinger) error {
	for _, p := range pingers {
		if err := p.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

// corsHeaders advertises the allowed headers and methods on every response,
// not only on preflight requests.
func corsHeaders(cfg config.CORS) func(http.Handler) http.Handler {
	headers := strings.Join(cfg.AllowedHeaders, ",")
	methods := strings.Join(cfg.AllowedMethods, ",")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Set("Access-Control-Allow-Methods", methods)
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
