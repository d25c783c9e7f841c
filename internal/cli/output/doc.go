// Package output provides output formatting for logmesh-cli.
//
//   - formatter.go: Formatter interface and format selection
//   - table.go: aligned text tables for Tabular values
//   - json.go, yaml.go: structured encodings
package output
