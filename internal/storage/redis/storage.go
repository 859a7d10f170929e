package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), timeoutOrDefault(cfg.Timeout))
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Backend = (*Storage)(nil)

func (s *Storage) Read(path string) ([]byte, error) {
	ctx, cancel := s.context()
	defer cancel()

	data, err := s.client.Get(ctx, fileKey(path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", model.ErrNotFound, fileKey(path))
		}
		return nil, err
	}
	return data, nil
}

func (s *Storage) Write(path string, data []byte) error {
	ctx, cancel := s.context()
	defer cancel()

	// No TTL, the playerlist is permanent
	return s.client.Set(ctx, fileKey(path), data, 0).Err()
}

func (s *Storage) Describe(path string) string {
	return fmt.Sprintf("redis://%s/%s", s.client.Options().Addr, fileKey(path))
}

func (s *Storage) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeoutOrDefault(s.cfg.Timeout))
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultConfig().Timeout
	}
	return d
}
