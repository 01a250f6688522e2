package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/DofusPlanner_Go/internal/database"
	"github.com/osse101/DofusPlanner_Go/internal/handler"
	"github.com/osse101/DofusPlanner_Go/internal/logger"
	"github.com/osse101/DofusPlanner_Go/internal/metrics"
	"github.com/osse101/DofusPlanner_Go/internal/plan"
)

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	planService plan.Service
}

// NewServer creates a new Server instance. dbPool may be nil when the
// in-memory store backs the plan service.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, catalog handler.CatalogReader, planService plan.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, monitor))
	r.Use(ClientRateLimitMiddleware(trustedProxies, monitor))
	r.Use(BodyLimitMiddleware(MaxRequestBytes, MaxStockRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := handler.NewCatalogHandler(catalog)
	planHandler := handler.NewPlanHandler(planService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", catalogHandler.HandleListItems)
			r.Get("/search", catalogHandler.HandleSearch)
			r.Get("/recipes/{name}", catalogHandler.HandleGetRecipe)
			r.Get("/jobs", catalogHandler.HandleListJobs)
		})

		r.Route("/accounts/{accountID}", func(r chi.Router) {
			r.Use(AccountRateLimitMiddleware(monitor))

			r.Route("/plan", func(r chi.Router) {
				r.Get("/", planHandler.HandleListPlan)
				r.Post("/", planHandler.HandleAddToPlan)
				r.Get("/jobs", planHandler.HandleJobBreakdown)
				r.Put("/{id}", planHandler.HandleSetQuantity)
				r.Delete("/{id}", planHandler.HandleRemoveFromPlan)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", planHandler.HandleListFavorites)
				r.Post("/{itemName}", planHandler.HandleAddFavorite)
				r.Delete("/{itemName}", planHandler.HandleRemoveFavorite)
			})

			r.Get("/requirements", planHandler.HandleRequirements)
			r.Post("/needs", planHandler.HandleNeeds)
			r.Post("/shopping-list", planHandler.HandleShoppingList)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:      dbPool,
		planService: planService,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		w.Header().Set(HeaderRequestID, requestID)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
