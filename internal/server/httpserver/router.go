// Package httpserver provides the operational HTTP server for logmesh.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/logmesh-go/internal/server/config"
	"github.com/yndnr/logmesh-go/internal/server/httpserver/handler"
	"github.com/yndnr/logmesh-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Config is the validated server configuration. Admin endpoints only
	// ever expose a sanitized copy.
	Config *config.ServerConfig

	// NodeID is the resolved node identifier.
	NodeID string

	// Ready reports whether the server accepts work. Nil means always ready.
	Ready func() bool

	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// TrustProxyHeaders makes request logs take the client IP from
	// X-Forwarded-For / X-Real-IP. Enable only behind a trusted proxy.
	TrustProxyHeaders bool

	// Logger for request logging.
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := handler.New(&handler.Config{
		Config: cfg.Config,
		NodeID: cfg.NodeID,
		Ready:  cfg.Ready,
		Logger: logger,
	})

	mux := http.NewServeMux()

	// Health endpoints - no authentication required
	health := Chain(h, RequestID(), Recover(logger))
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", health)

	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", Chain(metric.Handler(cfg.Gatherer), Recover(logger)))
	}

	// Admin API endpoints - require root credentials
	admin := Chain(h,
		RequestID(),
		RealIP(cfg.TrustProxyHeaders),
		Recover(logger),
		Audit(logger),
		AdminAuth(cfg.Config.RootPasswordSHA2, logger),
	)
	mux.Handle("GET /admin/v1/config", admin)
	mux.Handle("GET /admin/v1/node", admin)

	return mux
}
