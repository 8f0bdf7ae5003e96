// Package server provides the HTTP REST API the wizard UI drives.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jonathan/profile-builder/internal/client"
	"github.com/jonathan/profile-builder/internal/config"
	"github.com/jonathan/profile-builder/internal/store"
	"github.com/jonathan/profile-builder/internal/stepper"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	backend    *client.Client

	// The wizard is a single linear session; the stepper is its state.
	mu      sync.Mutex
	stepper *stepper.Stepper

	closers []func()
}

// New creates a new server instance wired per the configuration: Postgres
// records when a database URL is set, files otherwise; a Redis bus when an
// address is set, an in-process bus otherwise.
func New(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		stepper: stepper.New(stepper.DefaultSteps()),
	}

	storage, bus, err := s.buildInfra(cfg)
	if err != nil {
		return nil, err
	}
	s.store = store.New(context.Background(), storage, bus)
	s.closers = append(s.closers, s.store.Close)

	if cfg.BackendURL != "" {
		s.backend = client.New(cfg.BackendURL)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Profile endpoints
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("GET /profile/sections/{name}", s.handleGetSection)
	mux.HandleFunc("PUT /profile/sections/{name}", s.handleUpdateSection)
	mux.HandleFunc("POST /profile/sections/{name}/remove-entry", s.handleRemoveEntry)
	mux.HandleFunc("POST /profile/upload", s.handleUpload)
	mux.HandleFunc("POST /profile/fetch", s.handleFetch)
	mux.HandleFunc("POST /profile/submit", s.handleSubmit)
	mux.HandleFunc("GET /profile/validation", s.handleValidation)
	mux.HandleFunc("GET /profile/completion", s.handleCompletion)
	mux.HandleFunc("GET /profile/record", s.handleGetRecord)

	// Wizard endpoints
	mux.HandleFunc("GET /wizard", s.handleWizardState)
	mux.HandleFunc("POST /wizard/navigate", s.handleNavigate)

	// Onboarding tours
	mux.HandleFunc("GET /tours/{name}", s.handleGetTour)
	mux.HandleFunc("PUT /tours/{name}", s.handleSetTour)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) buildInfra(cfg config.Config) (store.Storage, store.Bus, error) {
	var storage store.Storage
	switch {
	case cfg.DatabaseURL != "":
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to set up record storage: %w", err)
		}
		s.closers = append(s.closers, pg.Close)
		storage = pg
	case cfg.DataDir != "":
		fs, err := store.NewFileStorage(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to set up record storage: %w", err)
		}
		storage = fs
	default:
		storage = store.NewMemoryStorage()
	}

	var bus store.Bus
	if cfg.RedisAddr != "" {
		rb, err := store.NewRedisBus(context.Background(), newRedisClient(cfg.RedisAddr), cfg.RedisChannel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to set up bus: %w", err)
		}
		s.closers = append(s.closers, rb.Close)
		bus = rb
	} else {
		bus = store.NewMemoryBus()
	}
	return storage, bus, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	for _, close := range s.closers {
		close()
	}
	log.Println("Server stopped")
	return nil
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
