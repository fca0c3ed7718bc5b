package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lexi2/internal/logger"
)

// NewPool opens the shared connection pool. The pool is handed down to
// repositories explicitly; there is no package-level connection holder.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Get().Info("database connected", zap.String("database", config.ConnConfig.Database))

	return pool, nil
}
