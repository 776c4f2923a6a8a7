package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 10 * time.Second
	defaultLockRetry = 50 * time.Millisecond
	releaseTimeout   = 2 * time.Second
	lockKeyPrefix    = "lock:"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another process is left alone.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

var errLockHeld = errors.New("lock held")

// Locker is a single-instance Redis mutex (SET NX PX plus token-checked
// release). The TTL bounds how long a crashed holder blocks others.
type Locker struct {
	client   *redis.Client
	ttl      time.Duration
	retry    time.Duration
	newToken func() string
}

func NewLocker(client *redis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Locker{
		client:   client,
		ttl:      ttl,
		retry:    defaultLockRetry,
		newToken: uuid.NewString,
	}
}

// Lock polls until the key is acquired or ctx is done.
func (l *Locker) Lock(ctx context.Context, name string) (func(), error) {
	key := lockKeyPrefix + name
	token := l.newToken()

	acquire := func() error {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return backoff.Permanent(err)
		}
		if !ok {
			return errLockHeld
		}
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(l.retry), ctx)
	if err := backoff.Retry(acquire, b); err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", name, err)
	}

	return func() { l.release(key, token) }, nil
}

func (l *Locker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	// A failed release is recovered by the TTL.
	_ = l.client.Eval(ctx, releaseScript, []string{key}, token).Err()
}
