package http

import (
	"net/http"

	"healthhub-directory/internal/delivery/http/handler"
	"healthhub-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	directoryHandler  *handler.DirectoryHandler
	sessionHandler    *handler.SessionHandler
	pageHandler       *handler.PageHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	suggestLimiter    *middleware.RateLimitMiddleware
}

func NewRouter(
	directoryHandler *handler.DirectoryHandler,
	sessionHandler *handler.SessionHandler,
	pageHandler *handler.PageHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	suggestLimiter *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		directoryHandler:  directoryHandler,
		sessionHandler:    sessionHandler,
		pageHandler:       pageHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		suggestLimiter:    suggestLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	// Server-rendered directory page
	r.router.HandleFunc("/", r.pageHandler.Directory).Methods(http.MethodGet)

	// Prometheus scrape endpoint
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory (read-only)
	api.HandleFunc("/directory/status", r.directoryHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.directoryHandler.ListDoctors).Methods(http.MethodGet)
	api.Handle("/doctors/suggestions", r.suggestLimiter.Handle(http.HandlerFunc(r.directoryHandler.Suggest))).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.directoryHandler.GetSpecialties).Methods(http.MethodGet)

	// Page sessions
	api.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.UpdateSession).Methods(http.MethodPatch, http.MethodOptions)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
