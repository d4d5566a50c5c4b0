package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// PostgresStore persists sessions as JSONB documents.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("empty postgres dsn")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(initCtx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := ensurePostgresSchema(initCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.GameSession, error) {
	var (
		version  int64
		document []byte
	)
	err := s.pool.QueryRow(ctx, `
SELECT version, document
FROM game_sessions
WHERE id = $1
`, id).Scan(&version, &document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	session, err := decodeSession(document)
	if err != nil {
		return nil, err
	}
	session.Version = version
	return session, nil
}

func (s *PostgresStore) Insert(ctx context.Context, session *models.GameSession) error {
	now := nowMs()
	stored := stamped(session, 1, now)
	doc, err := encodeSession(stored)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, `
INSERT INTO game_sessions (id, version, document, created_at_ms, updated_at_ms)
VALUES ($1, $2, $3, $4, $5)
`, stored.ID, stored.Version, doc, stored.CreatedAt.UnixMilli(), now); err != nil {
		if isPostgresUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, session *models.GameSession) error {
	now := nowMs()
	stored := stamped(session, session.Version+1, now)
	doc, err := encodeSession(stored)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, `
UPDATE game_sessions
SET version = $1, document = $2, updated_at_ms = $3
WHERE id = $4 AND version = $5
`, stored.Version, doc, now, session.ID, session.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		stored = stamped(session, 1, now)
		if doc, err = encodeSession(stored); err != nil {
			return err
		}
		// No row at the read version: either it moved on or it was never written.
		tag, err = s.pool.Exec(ctx, `
INSERT INTO game_sessions (id, version, document, created_at_ms, updated_at_ms)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING
`, stored.ID, stored.Version, doc, stored.CreatedAt.UnixMilli(), now)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func ensurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS game_sessions (
    id TEXT PRIMARY KEY,
    version BIGINT NOT NULL,
    document JSONB NOT NULL,
    created_at_ms BIGINT NOT NULL,
    updated_at_ms BIGINT NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_game_sessions_updated ON game_sessions(updated_at_ms DESC)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
