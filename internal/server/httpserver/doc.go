// Package httpserver provides the operational HTTP server for logmesh.
//
// Endpoints:
//
//   - Health endpoints: /health, /ready
//   - Metrics: /metrics (Prometheus text format)
//   - Admin endpoints: /admin/v1/config, /admin/v1/node
//
// Admin endpoints require HTTP basic auth as the root user, checked against
// the configured root_password_sha2 digest. They are disabled when no digest
// is configured.
package httpserver
