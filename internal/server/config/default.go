// Package config provides server configuration for logmesh.
package config

// Default configuration values.
const (
	DefaultNodeIDFile      = "/etc/logmesh/server/node-id"
	DefaultHTTPBindAddress = "127.0.0.1:9000"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
// PasswordSecret has no default.
func Default() *ServerConfig {
	return &ServerConfig{
		NodeIDFile:      DefaultNodeIDFile,
		HTTPBindAddress: DefaultHTTPBindAddress,
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
