// Package bootstrap is the composition root shared by the commands: it opens
// the pool, applies the schema and connects the optional Redis client.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"yayayum/internal/cache"
	"yayayum/internal/config"
	"yayayum/internal/database"
	"yayayum/internal/middleware"
	"yayayum/internal/observability"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SkipSchema leaves the schema untouched; cmd/migrate manages it itself.
	SkipSchema bool
}

// Runtime holds the long-lived dependencies of a process.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client

	shutdownTracing func(context.Context) error
}

// InitRuntime configures logging and tracing, connects to the database and,
// when configured, to Redis. An unreachable Redis is logged and left nil.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	middleware.ConfigureLogger(cfg.Env, cfg.LogLevel)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "yayayum-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if !opts.SkipSchema {
		if err := database.ApplySchema(ctx, db, cfg); err != nil {
			_ = database.Close(db)
			_ = shutdownTracing(ctx)
			return nil, fmt.Errorf("schema apply failed: %w", err)
		}
	}

	rdb, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "redis unavailable, rate limiting falls back to in-process counters",
			slog.String("error", err.Error()))
		rdb = nil
	}

	return &Runtime{DB: db, Redis: rdb, shutdownTracing: shutdownTracing}, nil
}

// Close releases the pool, the Redis client and the tracer provider.
func (r *Runtime) Close(ctx context.Context) error {
	var firstErr error
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if r.DB != nil {
		if err := database.Close(r.DB); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
