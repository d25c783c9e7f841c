// Package command provides CLI command definitions for logmesh-cli.
//
// Commands:
//   - config check FILE: validate a server configuration file
//   - config show FILE: print the effective configuration, secrets masked
//   - node-id show FILE: print the node id stored at the configured path
package command
