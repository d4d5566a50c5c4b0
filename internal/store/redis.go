package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aaronzipp/voice-spyfall/internal/models"
)

const redisKeyPrefix = "spyfall:session:"

// RedisStore keeps each session as a JSON string with an optional TTL.
// Conditional writes use WATCH/MULTI on the session key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("empty redis address")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{client: client, ttl: opts.TTL}, nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.GameSession, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

func (s *RedisStore) Insert(ctx context.Context, session *models.GameSession) error {
	stored := stamped(session, 1, nowMs())
	doc, err := encodeSession(stored)
	if err != nil {
		return err
	}
	ok, err := s.client.SetNX(ctx, redisKey(session.ID), doc, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyExists
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func (s *RedisStore) Upsert(ctx context.Context, session *models.GameSession) error {
	key := redisKey(session.ID)
	var stored *models.GameSession

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		next := int64(1)
		current, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			existing, err := decodeSession(current)
			if err != nil {
				return err
			}
			if existing.Version != session.Version {
				return ErrVersionConflict
			}
			next = existing.Version + 1
		}

		stored = stamped(session, next, nowMs())
		doc, err := encodeSession(stored)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, doc, s.ttl)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	if err != nil {
		return err
	}
	session.Version, session.CreatedAt, session.UpdatedAt = stored.Version, stored.CreatedAt, stored.UpdatedAt
	return nil
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}
