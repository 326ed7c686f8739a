package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/app/projects"
	"github.com/orb3-protocol/l2beat/internal/app/service"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/classification"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/configloader"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/discovery"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/export"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/registry"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/restapi"
	"github.com/orb3-protocol/l2beat/internal/infrastructure/schema"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
	"github.com/orb3-protocol/l2beat/internal/pkg/metrics"
	"github.com/orb3-protocol/l2beat/internal/pkg/utils"
)

const defaultConfigPath = "config/config.yml"

func main() {
	configPath := utils.GetEnv("CONFIG_PATH", defaultConfigPath)
	cfg, err := configloader.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration %s: %v\n", configPath, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Development); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("L2 project catalog starting", "config", configPath)
	metrics.MustRegisterMetrics()

	appLogger := logger.NewSlogAdapter()

	overrides := make([]map[string]map[string]entity.ClassificationEntry, 0, len(cfg.Classification.Files))
	for _, path := range cfg.Classification.Files {
		o, err := classification.LoadFile(path)
		if err != nil {
			logger.Fatal("Failed to load classification overrides", "file", path, "error", err)
		}
		overrides = append(overrides, o)
	}
	tables := classification.NewTables(appLogger, overrides...)

	var source port.DiscoverySource
	if cfg.Discovery.BaseURL != "" {
		source = discovery.NewHTTPSource(
			cfg.Discovery.BaseURL,
			time.Duration(cfg.Discovery.RequestTimeoutMillis)*time.Millisecond,
			cfg.Discovery.RequestsPerSecond,
			cfg.Discovery.Burst,
			appLogger,
		)
		logger.Info("Reading discovery over HTTP", "baseURL", cfg.Discovery.BaseURL)
	} else {
		source = discovery.NewFileSource(cfg.Discovery.Dir, appLogger)
		logger.Info("Reading discovery from disk", "dir", cfg.Discovery.Dir)
	}

	validator, err := schema.NewValidator(appLogger)
	if err != nil {
		logger.Fatal("Failed to compile record schema", "error", err)
	}

	builder := service.NewRecordBuilder(
		tables,
		validator,
		func(s *entity.DiscoverySnapshot) port.DiscoveryAccessor { return discovery.NewAccessor(s, appLogger) },
		appLogger,
	)

	definitions, err := projects.Select(cfg.Build.Projects)
	if err != nil {
		logger.Fatal("Invalid project selection", "error", err)
	}
	policy, err := service.ParseFailurePolicy(cfg.Build.FailurePolicy)
	if err != nil {
		logger.Fatal("Invalid failure policy", "error", err)
	}

	projectRegistry := registry.NewMemoryRegistry(appLogger)
	catalog := service.NewCatalogService(
		definitions,
		source,
		builder,
		projectRegistry,
		appLogger,
		cfg.Performance.MaxConcurrentBuilds,
		policy,
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	report, err := catalog.BuildAll(buildCtx)
	buildCancel()
	if err != nil {
		logger.Fatal("Catalog build failed", "error", err)
	}
	for _, f := range report.Failed {
		logger.Warn("Project skipped", "project", f.ProjectID, "stage", f.Stage, "reason", f.Message)
	}

	if cfg.Export.Dir != "" {
		exporter := export.NewExporter(cfg.Export.Dir, appLogger, func() int64 { return time.Now().Unix() })
		if _, err := exporter.Export(projectRegistry.List(entity.ListFilter{})); err != nil {
			logger.Fatal("Catalog export failed", "dir", cfg.Export.Dir, "error", err)
		}
	}

	handler := restapi.NewProjectHandler(projectRegistry, time.Duration(cfg.Cache.TTLMinutes)*time.Minute, appLogger)
	router := restapi.SetupRouter(handler, restapi.RouterOptions{
		SwaggerFile:  cfg.Server.SwaggerFile,
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       logger.Zap().Named("http"),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", "address", srv.Addr, "projects", projectRegistry.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shutdown", "error", err)
	} else {
		logger.Info("HTTP server stopped")
	}
}
