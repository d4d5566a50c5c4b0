package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

const (
	ModeMemory   = "memory"
	ModeSQLite   = "sqlite"
	ModePostgres = "postgres"
	ModeRedis    = "redis"
)

// SessionStore is implemented by every backend in this package.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.GameSession, error)
	Insert(ctx context.Context, session *models.GameSession) error
	Upsert(ctx context.Context, session *models.GameSession) error
	Close() error
}

type Options struct {
	Mode        string
	SQLitePath  string
	PostgresDSN string
	Redis       RedisOptions
}

// NormalizeMode maps accepted aliases onto the Mode constants.
func NormalizeMode(raw string) string {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "", ModeMemory, "mem":
		return ModeMemory
	case ModeSQLite, "sqlite3":
		return ModeSQLite
	case ModePostgres, "postgresql", "pg":
		return ModePostgres
	default:
		return mode
	}
}

// Open builds the store selected by opts.Mode and returns the resolved mode.
func Open(ctx context.Context, opts Options) (SessionStore, string, error) {
	mode := NormalizeMode(opts.Mode)
	switch mode {
	case ModeMemory:
		return NewMemoryStore(), mode, nil
	case ModeSQLite:
		s, err := NewSQLiteStore(opts.SQLitePath)
		if err != nil {
			return nil, mode, err
		}
		return s, mode, nil
	case ModePostgres:
		s, err := NewPostgresStore(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, mode, err
		}
		return s, mode, nil
	case ModeRedis:
		s, err := NewRedisStore(ctx, opts.Redis)
		if err != nil {
			return nil, mode, err
		}
		return s, mode, nil
	default:
		return nil, mode, fmt.Errorf("invalid store mode %q (supported: %s, %s, %s, %s)", mode, ModeMemory, ModeSQLite, ModePostgres, ModeRedis)
	}
}
