package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-armory/internal/config"
	"github.com/KirkDiggler/rpg-armory/internal/engine/tiered"
	"github.com/KirkDiggler/rpg-armory/internal/handlers/armory/v1alpha1"
	"github.com/KirkDiggler/rpg-armory/internal/orchestrators/outfitter"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-armory/internal/pkg/keylock"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Armory gRPC server with the hero outfitting service, health checks and a metrics endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides ARMORY_GRPC_PORT)")
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	setupLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open repositories: %w", err)
	}
	defer repos.Close()

	service, err := newOutfitter(cfg, repos)
	if err != nil {
		return err
	}

	armoryHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Service: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create armory handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	v1alpha1.RegisterArmoryServiceServer(srv, armoryHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			log.Printf("Metrics endpoint listening on %s/metrics", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("metrics server failed: %w", err)
			}
		}()
	}

	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if metricsServer != nil {
			_ = metricsServer.Shutdown(shutdownCtx)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}

func newOutfitter(cfg *config.Config, repos *repositories) (*outfitter.Orchestrator, error) {
	allocator, err := tiered.New(&tiered.Config{
		Roller:                dice.DefaultRoller,
		CivilianRetention:     tiered.CivilianRetention(cfg.CivilianRetention),
		CivilianRetentionTier: cfg.CivilianRetentionTier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation engine: %w", err)
	}

	orchestrator, err := outfitter.New(&outfitter.Config{
		HeroRepo:         repos.heroes,
		CatalogRepo:      repos.catalog,
		ClassRepo:        repos.classes,
		ModifierRepo:     repos.modifiers,
		Engine:           allocator,
		IDGenerator:      idgen.NewUUID("hero"),
		Locks:            keylock.New(),
		TierCosts:        cfg.TierCosts,
		CatalogCacheSize: cfg.CatalogCacheSize,
		CatalogCacheTTL:  cfg.CatalogCacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create outfitter: %w", err)
	}

	return orchestrator, nil
}

// logFunc bridges the gRPC logging interceptor to slog; interceptor levels share slog's values
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in handler", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
