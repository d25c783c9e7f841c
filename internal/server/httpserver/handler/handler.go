// Package handler provides HTTP request handlers for logmesh.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yndnr/logmesh-go/internal/server/config"
)

// Config holds the state the handlers expose.
type Config struct {
	Config *config.ServerConfig
	NodeID string
	Ready  func() bool
	Logger *slog.Logger
}

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	cfg    *config.ServerConfig
	nodeID string
	ready  func() bool
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates a new Handler.
func New(c *Config) *Handler {
	h := &Handler{
		cfg:    config.Sanitize(c.Config),
		nodeID: c.NodeID,
		ready:  c.Ready,
		logger: c.Logger,
		mux:    http.NewServeMux(),
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	h.mux.HandleFunc("GET /admin/v1/config", h.handleConfig)
	h.mux.HandleFunc("GET /admin/v1/node", h.handleNode)
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	requestID := w.Header().Get("X-Request-ID")
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	requestID := w.Header().Get("X-Request-ID")
	response := NewErrorResponse(requestID, code, message, nil)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
