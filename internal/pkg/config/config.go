package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTPAddr    string
	GRPCAddr    string
	CORSOrigins []string

	TablesCount int

	// RedisAddr selects the Redis idempotency cache; empty falls back to an in-process LRU.
	RedisAddr      string
	IdempotencyTTL time.Duration

	// OrderLogPath is the SQLite file of the order audit log; empty disables it.
	OrderLogPath string

	// RabbitURL enables order event publishing when set.
	RabbitURL      string
	RabbitExchange string

	OTLPEndpoint string
}

// Load reads the configuration from the environment. Variables found in the
// given dotenv files are applied first without overriding the real environment;
// missing files are skipped.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	tables, err := getEnvInt("TABLES_COUNT", 10)
	if err != nil {
		return nil, err
	}
	if tables <= 0 {
		return nil, fmt.Errorf("config: TABLES_COUNT must be positive, got %d", tables)
	}

	ttl, err := getEnvDuration("IDEMPOTENCY_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "pos-service"),
		Environment:    getEnv("APP_ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:       getEnv("GRPC_ADDR", ":9090"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		TablesCount:    tables,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		IdempotencyTTL: ttl,
		OrderLogPath:   os.Getenv("ORDER_LOG_PATH"),
		RabbitURL:      os.Getenv("RABBITMQ_URL"),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", "pos.orders"),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
	return cfg, nil
}

// LogValue hides the broker URL, which may embed credentials.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("service", c.ServiceName),
		slog.String("env", c.Environment),
		slog.String("http_addr", c.HTTPAddr),
		slog.String("grpc_addr", c.GRPCAddr),
		slog.Int("tables", c.TablesCount),
		slog.Bool("redis", c.RedisAddr != ""),
		slog.Bool("order_log", c.OrderLogPath != ""),
		slog.Bool("rabbitmq", c.RabbitURL != ""),
		slog.Bool("tracing", c.OTLPEndpoint != ""),
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
