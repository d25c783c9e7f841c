// Package config provides server configuration for logmesh.
package config

import (
	"slices"

	"github.com/yndnr/logmesh-go/internal/infra/param"
)

// parameter pairs a declaration with the assignment of its validated value.
type parameter struct {
	spec param.Spec
	bind func(cfg *ServerConfig, value string)
}

func parameterTable(fsys param.FileSystem) []parameter {
	return []parameter{
		{
			spec: param.Required(KeyPasswordSecret, param.NotBlankMinLength(param.MinSecretLength)),
			bind: func(cfg *ServerConfig, v string) { cfg.PasswordSecret = v },
		},
		{
			spec: param.Optional(KeyRootPasswordSHA2, param.SHA256Hex()),
			bind: func(cfg *ServerConfig, v string) { cfg.RootPasswordSHA2 = v },
		},
		{
			spec: param.Optional(KeyNodeIDFile, param.NodeIDFileOn(fsys)),
			bind: func(cfg *ServerConfig, v string) { cfg.NodeIDFile = v },
		},
		{
			spec: param.Optional(KeyHTTPBindAddress, param.HostPort()),
			bind: func(cfg *ServerConfig, v string) { cfg.HTTPBindAddress = v },
		},
		{
			spec: param.Optional(KeyLogLevel, param.OneOf("debug", "info", "warn", "error")),
			bind: func(cfg *ServerConfig, v string) { cfg.Log.Level = v },
		},
		{
			spec: param.Optional(KeyLogFormat, param.OneOf("json", "text")),
			bind: func(cfg *ServerConfig, v string) { cfg.Log.Format = v },
		},
	}
}

func specsOf(table []parameter) []param.Spec {
	specs := make([]param.Spec, len(table))
	for i, p := range table {
		specs[i] = p.spec
	}
	return specs
}

// Parameters returns the server's parameter declarations in processing order.
func Parameters() []param.Spec {
	return specsOf(parameterTable(param.OSFileSystem()))
}

// UnknownKeys returns the keys that are not server parameters, sorted.
func UnknownKeys(keys []string) []string {
	known := make(map[string]struct{})
	for _, spec := range Parameters() {
		known[spec.Key] = struct{}{}
	}

	var unknown []string
	for _, k := range keys {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}
