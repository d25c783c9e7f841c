// Package confloader sources raw configuration key/value pairs.
//
// Keys are flat names such as "password_secret". Values come from a YAML
// file and from environment variables, using koanf as the underlying
// library:
//
//   - loader.go: Loader, which also serves as a param.Source
//   - provider.go: in-memory map provider
//   - watcher.go: fsnotify based change notification
//
// Priority (highest to lowest):
//
//  1. Environment variables (LOGMESH_PASSWORD_SECRET -> password_secret)
//  2. Configuration file
//
// Defaults and validation are not handled here; see internal/server/config.
package confloader
