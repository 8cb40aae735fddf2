// cmd/storefront/serve.go
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/storefront"
	"storefront/internal/telemetry"
)

var (
	servePort   string
	serveSource string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the catalog and serve the storefront",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveSource, "source", "", "catalog location (overrides CATALOG_SOURCE)")
}

func loadConfig() (config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	return config.Load(files...)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveSource != "" {
		cfg.CatalogSource = serveSource
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, "storefront")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer provider shutdown failed", zap.Error(err))
		}
	}()

	shutdownMetrics, err := telemetry.InitMeterProvider(ctx, cfg.OTLPEndpoint, "storefront")
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			logger.Warn("meter provider shutdown failed", zap.Error(err))
		}
	}()

	catalogSvc := catalog.NewService(logger)
	loadCatalog(ctx, catalogSvc, cfg, logger)

	registry := storefront.NewRegistry(catalogSvc,
		storefront.WithTTL(cfg.SessionTTL),
		storefront.WithLogger(logger),
		storefront.WithMeterProvider(otel.GetMeterProvider()),
	)
	go registry.Run(ctx, time.Minute)

	handler := storefront.Routes(
		storefront.NewHandler(registry, catalogSvc, logger),
		catalog.NewHandler(catalogSvc, cfg.CatalogCollection),
		rate.NewLimiter(rate.Limit(cfg.ActionRate), cfg.ActionBurst),
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting storefront", zap.String("port", cfg.Port), zap.String("catalog_source", cfg.CatalogSource))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadCatalog runs the one catalog load. Failures are logged by the store and the
// storefront carries on with an empty catalog.
func loadCatalog(ctx context.Context, svc catalog.Service, cfg config.Config, logger *zap.Logger) {
	src, err := catalog.NewSource(cfg.CatalogSource, cfg.CatalogCollection, cfg.CatalogTable)
	if err != nil {
		logger.Error("catalog source unusable", zap.String("source", cfg.CatalogSource), zap.Error(err))
		return
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}
	svc.Load(ctx, src)
}
