// Package config provides server configuration for logmesh.
package config

// Parameter keys recognized by the server.
const (
	KeyPasswordSecret   = "password_secret"
	KeyRootPasswordSHA2 = "root_password_sha2"
	KeyNodeIDFile       = "node_id_file"
	KeyHTTPBindAddress  = "http_bind_address"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
)

// ServerConfig is the validated configuration for logmesh-server.
// It is only constructed by a successful Load and is read-only afterwards.
type ServerConfig struct {
	// PasswordSecret is the shared secret used for signing. It is kept
	// exactly as configured.
	PasswordSecret string `json:"password_secret" yaml:"password_secret"`

	// RootPasswordSHA2 is the hex SHA-256 digest of the admin password.
	RootPasswordSHA2 string `json:"root_password_sha2,omitempty" yaml:"root_password_sha2,omitempty"`

	// NodeIDFile is where the persistent node identifier is stored.
	NodeIDFile string `json:"node_id_file" yaml:"node_id_file"`

	HTTPBindAddress string `json:"http_bind_address" yaml:"http_bind_address"`

	Log LogSection `json:"log" yaml:"log"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}
