// Command station-terminal is the bar or kitchen display. It polls the
// station gRPC service and logs the open tickets of its category.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jcmexdev/restaurant-pos/internal/order-service/adapters/grpc/station"
	"github.com/jcmexdev/restaurant-pos/internal/order-service/domain"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/interceptors/constants"
	"github.com/jcmexdev/restaurant-pos/internal/pkg/telemetry"
)

func main() {
	name := getEnv("STATION_NAME", "bar-1")
	telemetry.InitLogger(os.Stdout, getEnv("LOG_LEVEL", "info"), name)

	category := domain.Category(getEnv("STATION_CATEGORY", string(domain.CategoryDrink)))
	if !category.Valid() {
		slog.Error("invalid station category", "category", category)
		os.Exit(1)
	}
	interval, err := time.ParseDuration(getEnv("POLL_INTERVAL", "5s"))
	if err != nil {
		slog.Error("invalid poll interval", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := getEnv("POS_GRPC_ADDR", "localhost:9090")
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		slog.Error("could not connect", "addr", addr, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	terminal := station.NewTerminal(conn, name)
	slog.Info("station terminal running", "addr", addr, "category", category)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		poll(ctx, terminal, category)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func poll(ctx context.Context, terminal *station.Terminal, category domain.Category) {
	ctx = context.WithValue(ctx, constants.ContextKeyRequestID, uuid.NewString())

	tickets, err := terminal.Tickets(ctx, category)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list tickets", "error", err)
		return
	}
	for _, t := range tickets {
		pending := 0
		for _, it := range t.Items {
			if it.Status != string(domain.ItemReady) {
				pending++
			}
		}
		slog.InfoContext(ctx, "ticket",
			"order_id", t.OrderId,
			"table_id", t.TableId,
			"status", t.Status,
			"items", len(t.Items),
			"pending", pending,
		)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
