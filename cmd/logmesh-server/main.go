// Package main provides the entry point for logmesh-server.
//
// logmesh-server validates its startup configuration, resolves its node
// identity and serves metrics until it receives SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/yndnr/logmesh-go/internal/core/nodeid"
	"github.com/yndnr/logmesh-go/internal/infra/buildinfo"
	"github.com/yndnr/logmesh-go/internal/infra/confloader"
	"github.com/yndnr/logmesh-go/internal/infra/param"
	"github.com/yndnr/logmesh-go/internal/infra/shutdown"
	"github.com/yndnr/logmesh-go/internal/server/config"
	"github.com/yndnr/logmesh-go/internal/server/httpserver"
	"github.com/yndnr/logmesh-go/internal/telemetry/logger"
	"github.com/yndnr/logmesh-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("logmesh-server %s\n", buildinfo.Get())
		return nil
	}

	registry := metric.NewRegistry()
	configMetrics := metric.NewConfigMetrics(registry)

	// Load and validate configuration before anything else starts.
	src, cfg, err := loadConfig(*configFile, configMetrics)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	info := buildinfo.Get()
	log.Info("starting logmesh-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", *configFile)

	if unknown := config.UnknownKeys(src.Keys()); len(unknown) > 0 {
		log.Warn("ignoring unknown configuration parameters", "keys", strings.Join(unknown, ","))
	}

	id, err := resolveNodeID(cfg.NodeIDFile, log)
	if err != nil {
		return fmt.Errorf("resolve node id: %w", err)
	}

	var ready atomic.Bool
	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Config:   cfg,
		NodeID:   id.String(),
		Ready:    ready.Load,
		Gatherer: registry,
		Logger:   log.Slog(),
	})
	httpServer := httpserver.New(cfg.HTTPBindAddress, router)

	shutdownHandler := shutdown.NewHandler(30*time.Second, log.Slog())

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if *configFile != "" {
		watcher, err := watchConfig(*configFile, configMetrics, log)
		if err != nil {
			log.Warn("configuration file will not be watched", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.HTTPBindAddress)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Hooks run in reverse order, so readiness drops before anything stops.
	shutdownHandler.OnShutdown(func(context.Context) error {
		ready.Store(false)
		return nil
	})
	ready.Store(true)

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(context.Background()); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig reads the configuration file and environment and validates
// them. The first invalid parameter aborts startup.
func loadConfig(configFile string, m *metric.ConfigMetrics) (*confloader.Loader, *config.ServerConfig, error) {
	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	src := confloader.NewLoader(opts...)
	if err := src.Load(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.NewLoader(config.WithParamOptions(param.WithObserver(m))).Load(src)
	m.ObserveLoad(err)
	if err != nil {
		return nil, nil, err
	}
	return src, cfg, nil
}

// resolveNodeID loads or creates the persistent node id. An empty path
// yields an id that only lives as long as the process.
func resolveNodeID(path string, log logger.Logger) (nodeid.ID, error) {
	if path == "" {
		id, err := nodeid.New()
		if err != nil {
			return "", err
		}
		log.Warn("node_id_file is empty, node id will not survive a restart", "node_id", id.String())
		return id, nil
	}

	id, created, err := nodeid.Resolve(path)
	if err != nil {
		return "", err
	}
	log.Info("node identity resolved",
		"node_id", id.String(),
		"path", path,
		"created", created)
	return id, nil
}

// initLogger initializes the structured logger and installs it as default.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// watchConfig re-validates the configuration file whenever it changes.
// The running server keeps its startup configuration; the outcome is only
// logged and recorded in metrics.
func watchConfig(path string, m *metric.ConfigMetrics, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	loader := config.NewLoader(config.WithParamOptions(
		param.WithObserver(m),
		param.WithLogger(log.Slog()),
		param.WithCollectAll(),
	))

	watcher.OnChange(func(changed string) {
		src := confloader.NewLoader(confloader.WithConfigFile(changed))
		if err := src.Load(); err != nil {
			m.ObserveLoad(err)
			log.Error("configuration file changed but could not be read", "path", changed, "error", err)
			return
		}

		_, err := loader.Load(src)
		m.ObserveLoad(err)
		if err != nil {
			log.Error("configuration file changed and is invalid; restart would fail",
				"path", changed,
				"error", err)
			return
		}
		log.Info("configuration file changed and is valid; restart to apply", "path", changed)
	})

	watcher.StartAsync()
	return watcher, nil
}
