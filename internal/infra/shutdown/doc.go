// Package shutdown provides graceful shutdown for logmesh-server.
//
// A Handler waits for SIGINT/SIGTERM (or context cancellation) and then
// runs registered hooks in reverse registration order under a timeout.
package shutdown
