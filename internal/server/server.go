package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/WheelShow_Go/docs"
	"github.com/osse101/WheelShow_Go/internal/handler"
	"github.com/osse101/WheelShow_Go/internal/metrics"
	"github.com/osse101/WheelShow_Go/internal/simulator"
	"github.com/osse101/WheelShow_Go/internal/sse"
	"github.com/osse101/WheelShow_Go/internal/table"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	CORSOrigins    []string
	// RateLimit is requests per IP per minute; zero disables it
	RateLimit int
	Service   string
	Version   string
}

// Deps are the components the routes serve
type Deps struct {
	Engine    handler.RoundEngine
	RoundLog  RoundStore
	Table     *table.Table
	Simulator *simulator.Simulator
	Hub       *sse.Hub
}

// RoundStore is the round log as the HTTP layer sees it
type RoundStore interface {
	handler.RoundLog
	handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	limiter := NewClientLimiter(opts.RateLimit, RateLimitWindow)
	proxies, invalid := ParseTrustedProxies(opts.TrustedProxies)
	for _, entry := range invalid {
		slog.Warn(LogMsgBadTrustedProxy, "entry", entry)
	}

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderAPIKey},
		ExposedHeaders: []string{handler.HeaderRoundCount},
		MaxAge:         CORSMaxAge,
	}))
	r.Use(AuthMiddleware(opts.APIKey, proxies, limiter))
	r.Use(RateLimitMiddleware(proxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.RoundLog))
	r.Get("/version", handler.HandleVersion(opts.Service, opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		roundHandler := handler.NewRoundHandler(deps.Engine, deps.Table)
		r.Route("/round", func(r chi.Router) {
			r.Get("/", roundHandler.HandleGetState)
			r.Post("/bets", roundHandler.HandlePlaceBet)
			r.Delete("/bets", roundHandler.HandleClearBets)
			r.Post("/bets/undo", roundHandler.HandleUndoBet)
			r.Post("/skip", roundHandler.HandleSkip)
			r.Post("/pause", roundHandler.HandlePause)
			r.Post("/resume", roundHandler.HandleResume)
			r.Post("/forced", roundHandler.HandleForcedOutcome)
			r.Post("/bonus/choice", roundHandler.HandleBonusChoice)
		})

		roundsHandler := handler.NewRoundsHandler(deps.RoundLog, deps.Table)
		r.Route("/rounds", func(r chi.Router) {
			r.Get("/", roundsHandler.HandleListRounds)
			r.Get("/export", roundsHandler.HandleExportRounds)
			r.Get("/{id}", roundsHandler.HandleGetRound)
			r.Get("/{id}/replay", roundsHandler.HandleReplayRound)
		})

		r.Post("/simulate", handler.NewSimulateHandler(deps.Simulator).HandleSimulate)

		r.Get("/events", sse.Handler(deps.Hub, func() interface{} {
			return deps.Engine.State()
		}))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
