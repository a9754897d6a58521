package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// ShutdownTimeout bounds the wait for in-flight requests on shutdown
const ShutdownTimeout = 5 * time.Second

// CORS allows cross-origin calls from the form and answers preflight requests
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the design API
func NewRouter(cfg Config, logger *log.Logger) http.Handler {
	router := mux.NewRouter()
	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	h := &Handler{Logger: logger}

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/defaults", h.Defaults).Methods("GET")
	api.HandleFunc("/design", h.Design).Methods("POST")
	api.HandleFunc("/design/diagram", h.Diagram).Methods("POST")
	api.HandleFunc("/design/report", h.Report).Methods("POST")

	return CORS(router)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg Config, logger *log.Logger) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Printf("Starting server on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Println("Server stopped")
	return <-errc
}
