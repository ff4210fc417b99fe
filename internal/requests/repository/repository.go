package repository

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type Request struct {
	Method    string `db:"method"`
	URL       string `db:"url"`
	Status    int    `db:"status"`
	LatencyMs int64  `db:"latency_ms"`
	CacheHit  bool   `db:"cache_hit"`
}

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) SaveRequest(ctx context.Context, req Request) error {
	const createCmd = `
	INSERT INTO requests (method, url, status, latency_ms, cache_hit)
	VALUES ($1, $2, $3, $4, $5);`

	_, err := r.db.ExecContext(ctx, createCmd, req.Method, req.URL, req.Status, req.LatencyMs, req.CacheHit)
	if err != nil {
		r.logger.Error(err.Error())
		return err
	}

	return nil
}
