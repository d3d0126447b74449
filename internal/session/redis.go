package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hiremind-api/internal/config"
	"hiremind-api/internal/logging"
)

// RedisStore persists session resume records in Redis with a TTL, so stale
// uploads expire on their own and the store survives process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewRedisStore creates a Redis-backed session store from configuration
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    ttl,
		logger: logging.GetGlobalLogger(),
	}
}

// Get retrieves the session's resume record
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*ResumeRecord, error) {
	payload, err := s.client.Get(ctx, resumeKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session resume: %w", err)
	}

	var record ResumeRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session resume: %w", err)
	}
	return &record, nil
}

// Set stores the session's resume record, replacing any previous one
func (s *RedisStore) Set(ctx context.Context, sessionID string, record *ResumeRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session resume: %w", err)
	}

	if err := s.client.Set(ctx, resumeKey(sessionID), payload, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to save session resume", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to save session resume: %w", err)
	}
	return nil
}

// Clear removes the session's resume record
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, resumeKey(sessionID)).Err()
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func resumeKey(sessionID string) string {
	return fmt.Sprintf("session:resume:%s", sessionID)
}
