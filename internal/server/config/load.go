// Package config provides server configuration for logmesh.
package config

import (
	"github.com/yndnr/logmesh-go/internal/infra/param"
)

// Loader validates parameter sources into a ServerConfig.
type Loader struct {
	table []parameter
	opts  []param.Option
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the filesystem used by path validators.
func WithFileSystem(fsys param.FileSystem) LoaderOption {
	return func(l *Loader) {
		l.table = parameterTable(fsys)
	}
}

// WithParamOptions passes options through to param.Process.
func WithParamOptions(opts ...param.Option) LoaderOption {
	return func(l *Loader) {
		l.opts = append(l.opts, opts...)
	}
}

// NewLoader creates a Loader for the server parameter table.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		table: parameterTable(param.OSFileSystem()),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load validates src and returns the typed configuration.
//
// Unset optional parameters keep their defaults. On error no configuration
// is returned; the error is a *param.ParameterError or *param.ValidationError
// (joined when param.WithCollectAll is in effect).
func (l *Loader) Load(src param.Source) (*ServerConfig, error) {
	values, err := param.Process(specsOf(l.table), src, l.opts...)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	for _, p := range l.table {
		if v, ok := values.Lookup(p.spec.Key); ok {
			p.bind(cfg, v)
		}
	}
	return cfg, nil
}

// Check reports the outcome for every server parameter without stopping
// at the first failure.
func (l *Loader) Check(src param.Source) []param.Result {
	return param.Check(specsOf(l.table), src, l.opts...)
}

// Load validates src with the default Loader.
func Load(src param.Source, opts ...param.Option) (*ServerConfig, error) {
	return NewLoader(WithParamOptions(opts...)).Load(src)
}
