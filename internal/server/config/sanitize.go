// Package config provides server configuration for logmesh.
package config

import "strings"

// Sanitize returns a copy of the config with sensitive fields masked.
//
// This is used for logging and printing configuration without exposing
// secrets.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	sanitized := *cfg

	if sanitized.PasswordSecret != "" {
		sanitized.PasswordSecret = maskSecret(sanitized.PasswordSecret)
	}
	if sanitized.RootPasswordSHA2 != "" {
		sanitized.RootPasswordSHA2 = maskSecret(sanitized.RootPasswordSHA2)
	}

	return &sanitized
}

// maskSecret keeps the first and last two characters of s.
func maskSecret(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return "****"
	}
	return string(r[:2]) + strings.Repeat("*", len(r)-4) + string(r[len(r)-2:])
}
