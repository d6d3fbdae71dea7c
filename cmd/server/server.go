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

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	creationorch "github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/creation"
	partyorch "github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/party"
	redisclient "github.com/ChibiOne/RPGenerator-sub001/internal/redis"
	characterrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character"
	partyrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/party"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the party engine gRPC server with all configured services.`,
	RunE:  runServer,
}

// services holds the wired orchestrators behind the transport layer.
type services struct {
	Party    partyorch.Service
	Creation creationorch.Service
}

func buildServices(ctx context.Context, cfg *config) (*services, redisclient.Client, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisUseTLS,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create redis client")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	partyService, err := partyorch.New(&partyorch.Config{
		PartyRepo:     partyrepo.NewRedisRepository(client),
		CharacterRepo: characterrepo.NewRedisRepository(client),
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create party orchestrator")
	}

	creationService, err := creationorch.New(&creationorch.Config{
		CharacterRepo: characterrepo.NewRedisRepository(client),
		SessionTTL:    cfg.CreationSessionTTL,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create creation orchestrator")
	}

	return &services{Party: partyService, Creation: creationService}, client, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	svcs, client, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	registerServices(srv, svcs)
	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
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

// registerServices wires the orchestrators into the gRPC server.
// TODO: register PartyService and CreationService handlers once the proto
// definitions are published; until then only health and reflection are
// exposed, with per-service statuses reporting readiness.
func registerServices(srv *grpc.Server, svcs *services) {
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if svcs.Party != nil {
		healthServer.SetServingStatus("rpgenerator.party.v1.PartyService", grpc_health_v1.HealthCheckResponse_SERVING)
	}
	if svcs.Creation != nil {
		healthServer.SetServingStatus("rpgenerator.creation.v1.CreationService", grpc_health_v1.HealthCheckResponse_SERVING)
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	args := append([]any{}, fields...)
	switch level {
	case grpc_logging.LevelDebug:
		slog.DebugContext(ctx, msg, args...)
	case grpc_logging.LevelWarn:
		slog.WarnContext(ctx, msg, args...)
	case grpc_logging.LevelError:
		slog.ErrorContext(ctx, msg, args...)
	default:
		slog.InfoContext(ctx, msg, args...)
	}
}
