// Package logger provides structured logging for logmesh.
//
// It wraps the standard library log/slog:
//
//   - logger.go: Logger interface, handler selection, global level
//   - redact.go: masking of attributes whose key names a secret
//
// Output is JSON by default, or text. Attributes such as password_secret
// or root_password_sha2 are never written in clear.
package logger
