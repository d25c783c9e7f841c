// Package metric provides Prometheus metrics for logmesh.
//
//   - config.go: configuration validation counters
//   - handler.go: HTTP handler for the /metrics endpoint
//
// Metrics are registered on an explicit prometheus.Registerer so tests can
// use a private registry.
package metric
