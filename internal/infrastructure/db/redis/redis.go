package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	defaultConnectTimeout = 5 * time.Second
	ioTimeout             = 2 * time.Second
)

// Config holds the lock backend connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	// ConnectTimeout bounds the startup ping retries.
	ConnectTimeout time.Duration
}

// Connect returns a client once Redis answers a ping. The ping is retried with
// exponential backoff until ConnectTimeout elapses, so the API survives Redis
// starting a little later than it does.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	wait := cfg.ConnectTimeout
	if wait <= 0 {
		wait = defaultConnectTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  ioTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = wait

	ping := func() error { return client.Ping(ctx).Err() }
	if err := backoff.Retry(ping, backoff.WithContext(policy, ctx)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
