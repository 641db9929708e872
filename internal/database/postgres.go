package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	postgresMaxRetries   = 5
	postgresInitialDelay = 2 * time.Second
)

// ConnectPostgres opens a pgx pool against the hosted ledger and pings it,
// retrying with exponential backoff while the server is unreachable.
func ConnectPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 5 * time.Minute

	delay := postgresInitialDelay
	for attempt := 1; ; attempt++ {
		pool, err := connectOnce(ctx, config)
		if err == nil {
			logger.Info("connected to postgres ledger", zap.Int("attempt", attempt))
			return pool, nil
		}

		if attempt == postgresMaxRetries {
			return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", attempt, err)
		}

		logger.Warn("postgres connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}

func connectOnce(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	return pool, nil
}
