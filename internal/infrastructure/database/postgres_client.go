package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// schema is applied statement by statement on start. Every statement is
// idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS payments (
		reference       TEXT PRIMARY KEY,
		amount          BIGINT NOT NULL,
		phone           TEXT NOT NULL,
		method          TEXT NOT NULL,
		status          TEXT NOT NULL,
		session_id      TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL,
		expires_at      TIMESTAMPTZ NOT NULL,
		verified_at     TIMESTAMPTZ,
		fraud_reasons   TEXT[] NOT NULL DEFAULT '{}',
		transaction_id  TEXT NOT NULL DEFAULT '',
		verify_attempts INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS payments_phone_idx ON payments (phone, created_at)`,
	`CREATE TABLE IF NOT EXISTS quote_leads (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL,
		service       TEXT NOT NULL,
		timeline_days INTEGER NOT NULL,
		budget        BIGINT NOT NULL DEFAULT 0,
		message       TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL,
		base_price    BIGINT NOT NULL,
		surcharge     BIGINT NOT NULL,
		total         BIGINT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
}

// ConnectPostgres opens a pgx pool, pings it and applies the schema.
func ConnectPostgres(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = 20
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("[database][postgres] connected")
	return pool, nil
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
