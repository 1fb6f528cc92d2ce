// Command isingd is the solver daemon: a gRPC front end over a
// redis-backed job queue, with result caching and an optional
// postgres run registry.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/perclft/IsingEngine/internal/backend"
	"github.com/perclft/IsingEngine/internal/cache"
	"github.com/perclft/IsingEngine/internal/config"
	"github.com/perclft/IsingEngine/internal/engine"
	"github.com/perclft/IsingEngine/internal/logging"
	"github.com/perclft/IsingEngine/internal/registry"
	"github.com/perclft/IsingEngine/internal/rpc"
	"github.com/perclft/IsingEngine/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	port := flag.Int("port", 0, "gRPC port (overrides config)")
	redisAddr := flag.String("redis-addr", "", "Redis address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "isingd: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *redisAddr != "" {
		cfg.Redis.Addr = *redisAddr
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "isingd: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("daemon exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	var sink scheduler.RunSink
	if cfg.Postgres.Enabled {
		store, err := registry.Open(cfg.PostgresDSN())
		if err != nil {
			return err
		}
		defer store.Close()
		sink = store
		logger.Info("run registry enabled",
			zap.String("host", cfg.Postgres.Host),
			zap.String("database", cfg.Postgres.Database))
	}

	backends := backend.NewRegistry()
	backends.Register(backend.NewSimulator(cfg.Solver.MaxQubits, 0))

	eng := engine.New(backends)
	resultCache := cache.New(rdb, logger.Named("cache"), cfg.Cache.TTL())
	sched := scheduler.New(rdb, eng, resultCache, sink, logger.Named("scheduler"))
	go sched.Run(ctx)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	rpc.RegisterSolverServer(grpcServer, rpc.NewServer(sched))

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("solver daemon listening",
		zap.String("addr", lis.Addr().String()),
		zap.Int("max_qubits", cfg.Solver.MaxQubits))
	return grpcServer.Serve(lis)
}
