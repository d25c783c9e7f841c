// Package buildinfo provides build information for logmesh binaries.
//
// Values are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/logmesh-go/internal/infra/buildinfo.Version=1.0.0"
//
// When no version is injected, the module version and VCS revision
// recorded by the Go toolchain are used instead.
package buildinfo
