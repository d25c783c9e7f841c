// Package config provides server configuration for logmesh.
//
// This package defines the server configuration structure and validation:
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - parameters.go: Parameter table (key, required, validators, binding)
//   - load.go: Load, which validates a source and builds a ServerConfig
//   - sanitize.go: Log sanitization (hide sensitive values)
//
// Raw values are sourced via internal/infra/confloader; validation rules
// live in internal/infra/param.
package config
