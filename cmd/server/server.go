package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/skill-planner/internal/clients/catalog"
	"github.com/KirkDiggler/skill-planner/internal/config"
	"github.com/KirkDiggler/skill-planner/internal/data/jobs"
	"github.com/KirkDiggler/skill-planner/internal/engine/description"
	"github.com/KirkDiggler/skill-planner/internal/handlers/planner/v1alpha1"
	plannerorchestrator "github.com/KirkDiggler/skill-planner/internal/orchestrators/planner"
	"github.com/KirkDiggler/skill-planner/internal/pkg/clock"
	"github.com/KirkDiggler/skill-planner/internal/pkg/idgen"
	"github.com/KirkDiggler/skill-planner/internal/redis"
	"github.com/KirkDiggler/skill-planner/internal/repositories/builds"
)

var (
	envFile       string
	grpcPort      int
	redisAddrs    []string
	catalogSource string
	catalogDir    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Skill Planner gRPC server backed by Redis and the skillbook catalog.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&envFile, "env-file", "", "optional .env file (defaults to ./.env when present)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SKILL_PLANNER_PORT)")
	serverCmd.Flags().StringSliceVar(&redisAddrs, "redis-addr", nil, "Redis address; repeat for cluster mode")
	serverCmd.Flags().StringVar(&catalogSource, "catalog-source", "", "skillbook source: http or dir")
	serverCmd.Flags().StringVar(&catalogDir, "catalog-dir", "", "directory of <job id>.json skillbooks for the dir source")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.Redis.Addrs = redisAddrs
	}
	if cmd.Flags().Changed("catalog-source") {
		cfg.Catalog.Source = catalogSource
	}
	if cmd.Flags().Changed("catalog-dir") {
		cfg.Catalog.Dir = catalogDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	// Storage
	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	redisClient, err := redis.Connect(connectCtx, cfg.Redis.Addrs, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.TLS,
	})
	connectCancel()
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}()

	buildRepo, err := builds.NewRedisRepository(&builds.Config{
		Client: redisClient,
		TTL:    cfg.BuildTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}

	// Catalog
	source, err := newCatalogSource(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}

	jobRegistry := jobs.Default()
	catalogClient, err := catalog.New(&catalog.Config{
		Source:   source,
		Jobs:     jobRegistry,
		CacheTTL: cfg.Catalog.CacheTTL,
		Clock:    clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Orchestrator
	eventBus := events.NewBus()
	plannerService, err := plannerorchestrator.New(&plannerorchestrator.Config{
		BuildRepo:   buildRepo,
		Catalog:     catalogClient,
		Jobs:        jobRegistry,
		Renderer:    description.NewRenderer(),
		EventBus:    eventBus,
		IDGenerator: idgen.NewUUID("build"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create planner orchestrator: %w", err)
	}

	eventBus.SubscribeFunc(plannerorchestrator.EventAllocationChanged, 0, func(_ context.Context, e events.Event) error {
		slog.Debug("allocation changed", "build_id", e.Source().GetID())
		return nil
	})

	plannerHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlannerService: plannerService,
	})
	if err != nil {
		return fmt.Errorf("failed to create planner handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, healthServer := newGRPCServer(plannerHandler)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (catalog: %s, redis: %v)...",
			cfg.Port, cfg.Catalog.Source, cfg.Redis.Addrs)
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
		return err
	}
}

// newGRPCServer registers the planner and health services. Reflection is not
// registered: the planner service has no protobuf descriptor to serve.
func newGRPCServer(plannerHandler v1alpha1.PlannerServiceServer) (*grpc.Server, *health.Server) {
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

	v1alpha1.RegisterPlannerServiceServer(srv, plannerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, healthServer
}

func newCatalogSource(cfg config.CatalogConfig) (catalog.Source, error) {
	switch cfg.Source {
	case config.CatalogSourceDir:
		return catalog.NewDirSource(cfg.Dir)
	default:
		return catalog.NewHTTPSource(&catalog.HTTPSourceConfig{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
