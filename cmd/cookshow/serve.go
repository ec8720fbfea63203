package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cuemby/cookshow/pkg/api"
	"github.com/cuemby/cookshow/pkg/config"
	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/log"
	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/cuemby/cookshow/pkg/service"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the cookshow API server",
	Long: `Run the cookshow API server until interrupted.

The server opens the configured store, exposes the REST API, and serves
/health, /ready and /metrics both on the API listener and, when
--metrics-addr is set, on a dedicated listener.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("api-addr", "", "Address for the HTTP API (default :8080)")
	serveCmd.Flags().String("metrics-addr", "", "Address for health and metrics (default :9090)")
	serveCmd.Flags().String("storage-driver", "", "Storage driver: bolt or mongo")
	serveCmd.Flags().String("data-dir", "", "Data directory for the bolt driver")
	serveCmd.Flags().String("mongo-uri", "", "MongoDB connection URI")
	serveCmd.Flags().String("mongo-database", "", "MongoDB database name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg.Log); err != nil {
		return err
	}
	logger := log.WithComponent("serve")
	metrics.SetVersion(Version)

	store, err := openStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Storage.Driver, err)
	}
	defer store.Close()
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("Store opened")

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()
	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	server := api.NewServer(api.Config{
		Addr:            cfg.API.Addr,
		ReadTimeout:     cfg.API.ReadTimeout,
		WriteTimeout:    cfg.API.WriteTimeout,
		IdleTimeout:     cfg.API.IdleTimeout,
		ShutdownTimeout: cfg.API.ShutdownTimeout,
		RateLimit:       cfg.API.RateLimit,
		RateLimitBurst:  cfg.API.RateLimitBurst,
	}, service.New(store, broker), store)

	collector := metrics.NewCollector(store, 0)
	collector.Start()
	defer collector.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	if cfg.Metrics.Addr != "" {
		g.Go(func() error {
			logger.Info().Str("addr", cfg.Metrics.Addr).Msg("Health and metrics listening")
			return api.NewHealthServer(cfg.Metrics.Addr).Start(gctx)
		})
	}
	g.Go(func() error {
		events.Dispatch(gctx, sub, events.AuditLog(log.WithComponent("audit")), events.CountMetrics())
		return nil
	})

	err = g.Wait()
	logger.Info().Msg("Shutdown complete")
	return err
}

// openStore opens the store selected by cfg.Driver
func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return storage.NewMongoStore(storage.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.Timeout,
		})
	case config.DriverBolt:
		return storage.NewBoltStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
