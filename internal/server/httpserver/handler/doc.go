// Package handler provides HTTP request handlers for logmesh.
//
//   - health.go: health and readiness checks
//   - admin.go: sanitized configuration and node identity
//
// Responses use the envelope in types.go.
package handler
