package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

// SQLiteStore persists sessions as JSON documents in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, pragma := range []string{
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.GameSession, error) {
	var (
		version  int64
		document string
	)
	err := s.db.QueryRowContext(ctx, `
SELECT version, document
FROM game_sessions
WHERE id = ?
`, id).Scan(&version, &document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	session, err := decodeSession([]byte(document))
	if err != nil {
		return nil, err
	}
	session.Version = version
	return session, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, session *models.GameSession) error {
	now := nowMs()
	stored := stamped(session, 1, now)
	doc, err := encodeSession(stored)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `
INSERT INTO game_sessions (id, version, document, created_at_ms, updated_at_ms)
VALUES (?, ?, ?, ?, ?)
`, stored.ID, stored.Version, string(doc), stored.CreatedAt.UnixMilli(), now); err != nil {
		if isSQLiteUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, session *models.GameSession) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := nowMs()
	stored := stamped(session, session.Version+1, now)
	doc, err := encodeSession(stored)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
UPDATE game_sessions
SET version = ?, document = ?, updated_at_ms = ?
WHERE id = ? AND version = ?
`, stored.Version, string(doc), now, session.ID, session.Version)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM game_sessions WHERE id = ?`, session.ID).Scan(&exists); err != nil {
			return err
		}
		if exists > 0 {
			return ErrVersionConflict
		}
		stored = stamped(session, 1, now)
		if doc, err = encodeSession(stored); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO game_sessions (id, version, document, created_at_ms, updated_at_ms)
VALUES (?, ?, ?, ?, ?)
`, stored.ID, stored.Version, string(doc), stored.CreatedAt.UnixMilli(), now); err != nil {
			if isSQLiteUniqueViolation(err) {
				return ErrVersionConflict
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS game_sessions (
    id TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    document TEXT NOT NULL,
    created_at_ms INTEGER NOT NULL,
    updated_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_game_sessions_updated ON game_sessions(updated_at_ms DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func isSQLiteUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "constraint failed: unique")
}
