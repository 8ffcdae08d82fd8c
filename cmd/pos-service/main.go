package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/jcmexdev/restaurant-pos/internal/api-gateway/infra/httpx"
	catalogservice "github.com/jcmexdev/restaurant-pos/internal/catalog-service"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/station"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/stationv1"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/app"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/orderlog/sqlite"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/cache"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/config"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/events"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("pos service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	telemetry.InitLogger(os.Stdout, cfg.LogLevel, cfg.ServiceName)
	slog.Info("configuration loaded", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.Environment)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	idempotency := newCache(ctx, cfg)

	var history orderlog.Repository
	if cfg.OrderLogPath != "" {
		repo, err := sqlite.Open(cfg.OrderLogPath)
		if err != nil {
			return err
		}
		defer repo.Close()
		history = repo
		slog.Info("order log enabled", "path", cfg.OrderLogPath)
	}

	publisher := events.NewNoopPublisher()
	if cfg.RabbitURL != "" {
		publisher, err = events.NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return err
		}
		slog.Info("order events enabled", "exchange", cfg.RabbitExchange)
	}
	defer publisher.Close()

	seed, err := catalogservice.DefaultSeed()
	if err != nil {
		return err
	}
	catalog, err := catalogservice.New(seed)
	if err != nil {
		return err
	}

	orders := app.NewService(app.ServiceConfig{
		Store:          app.NewStore(),
		Catalog:        catalog,
		Cache:          idempotency,
		IdempotencyTTL: cfg.IdempotencyTTL,
		History:        history,
		Publisher:      publisher,
		TablesCount:    cfg.TablesCount,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(httpx.NewHandler(orders, catalog), cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(interceptors.TraceServerInterceptor()),
	)
	stationv1.RegisterStationServer(grpcServer, station.NewServer(orders))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http api running", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return err
		}
		slog.Info("station gRPC running", "addr", cfg.GRPCAddr)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newCache prefers Redis and falls back to an in-process LRU when Redis is
// not configured or does not answer.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.RedisAddr != "" {
		c := cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := cache.Ping(pingCtx, c)
		if err == nil {
			slog.Info("idempotency cache on redis", "addr", cfg.RedisAddr)
			return c
		}
		slog.Warn("redis unavailable, using in-process cache", "addr", cfg.RedisAddr, "error", err)
	}
	return cache.NewLRUCache(1024, cfg.IdempotencyTTL, cfg.ServiceName)
}
