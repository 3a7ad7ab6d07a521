package kb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/fundwise/faqd/internal/domain"
)

// RedisConfig holds connection parameters for a Redis-held knowledge base.
type RedisConfig struct {
	Addrs    []string
	Username string
	Password string
	DB       int
	Key      string
}

// RedisSource reads the knowledge-base JSON document from a single Redis
// key, allowing the curated document to be published out-of-band instead of
// baked into the image.
type RedisSource struct {
	client rueidis.Client
	key    string
}

// NewRedisSource creates a Redis-backed source via rueidis.
func NewRedisSource(cfg RedisConfig) (*RedisSource, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("key is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &RedisSource{client: client, key: cfg.Key}, nil
}

// Ping checks connectivity.
func (s *RedisSource) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the server responds or timeout expires.
func (s *RedisSource) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for redis: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ReadAll fetches the document stored at the configured key.
func (s *RedisSource) ReadAll(ctx context.Context) ([]byte, error) {
	cmd := s.client.B().Get().Key(s.key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, fmt.Errorf("%w: key %q not set", domain.ErrSourceUnavailable, s.key)
		}
		return nil, fmt.Errorf("%w: get %q: %v", domain.ErrSourceUnavailable, s.key, err)
	}
	return data, nil
}

// Close shuts down the client.
func (s *RedisSource) Close() {
	s.client.Close()
}
