// Package server exposes the recommendation engine and the signal store over
// a JSON API plus an RSS rendering of the personalized picks.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/reelscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/signal_store.go -pkg mocks -skip-ensure -fmt goimports . SignalStore
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/session_store.go -pkg mocks -skip-ensure -fmt goimports . SessionStore

// defaultUserID serves requests that don't identify themselves
const defaultUserID = "default"

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	signals     SignalStore
	recommender Recommender
	sessions    SessionStore
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// SignalStore interface for viewing-signal operations
type SignalStore interface {
	UpsertConsumption(ctx context.Context, userID string, rec *domain.ConsumptionRecord) error
	SaveItem(ctx context.Context, userID string, item *domain.SavedItem) error
	RemoveSaved(ctx context.Context, userID string, contentID int64, contentType domain.ContentType) error
	ListConsumption(ctx context.Context, userID string) ([]domain.ConsumptionRecord, error)
	ListSaved(ctx context.Context, userID string) ([]domain.SavedItem, error)
	ClearAll(ctx context.Context, userID string) error
}

// Recommender interface for recommendation operations
type Recommender interface {
	Recommend(ctx context.Context, userID string, limit int) []domain.Candidate
	Stats(ctx context.Context, userID string) domain.Stats
	InvalidateProfile(userID string)
}

// SessionStore interface for catalog account-link tokens
type SessionStore interface {
	SetCatalogSession(ctx context.Context, userID, token string) error
	ClearCatalogSession(ctx context.Context, userID string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, signals SignalStore, recommender Recommender, sessions SessionStore, version string, debug bool) *Server {
	s := &Server{
		config:      cfg,
		signals:     signals,
		recommender: recommender,
		sessions:    sessions,
		version:     version,
		debug:       debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("reelscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /recommendations", s.recommendationsHandler)
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("GET /history", s.listHistoryHandler)
		r.HandleFunc("POST /history", s.recordConsumptionHandler)
		r.HandleFunc("DELETE /history", s.clearSignalsHandler)

		r.HandleFunc("GET /watchlist", s.listWatchlistHandler)
		r.HandleFunc("POST /watchlist", s.saveItemHandler)
		r.HandleFunc("DELETE /watchlist/{type}/{id}", s.removeSavedHandler)

		r.HandleFunc("POST /session", s.linkSessionHandler)
		r.HandleFunc("DELETE /session", s.unlinkSessionHandler)
	})

	s.router.HandleFunc("GET /rss/recommendations", s.rssRecommendationsHandler)
}

// userID resolves the acting user from the request header
func userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return defaultUserID
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
