package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/combat-api/internal/content"
	"github.com/KirkDiggler/combat-api/internal/content/defaults"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/loot"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
	"github.com/KirkDiggler/combat-api/internal/repositories/player"
)

// serverConfig is populated from the environment; flags override it.
type serverConfig struct {
	Port       int    `env:"PORT" envDefault:"50051"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	ContentDir string `env:"CONTENT_DIR"`
}

var (
	grpcPort   int
	contentDir string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the combat API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides PORT)")
	serverCmd.Flags().StringVar(&contentDir, "content-dir", "", "content directory (overrides CONTENT_DIR; embedded defaults if unset)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := env.ParseAs[serverConfig]()
	if err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}
	if cmd.Flags().Changed("content-dir") {
		cfg.ContentDir = contentDir
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	// Load content before opening the port; a server with no definitions
	// cannot resolve anything.
	var library *content.Library
	if cfg.ContentDir != "" {
		library, err = content.LoadDir(cfg.ContentDir)
	} else {
		library, err = content.LoadFS(defaults.FS())
	}
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	playerRepo, err := player.NewRedis(&player.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	lootService, err := loot.NewOrchestrator(&loot.Config{Tables: library.DropTables})
	if err != nil {
		return fmt.Errorf("failed to create loot orchestrator: %w", err)
	}

	combatService, err := combat.NewOrchestrator(&combat.Config{
		PlayerRepo: playerRepo,
		Content:    library,
		Loot:       lootService,
	})
	if err != nil {
		return fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	// Each orchestrator reports health under its own service name so
	// health checks can tell them apart; transport handlers attach to
	// these registrations once the API surface is published.
	services := map[string]any{
		"combat.CombatService": combatService,
		"loot.LootService":     lootService,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
	)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for name := range services {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}
