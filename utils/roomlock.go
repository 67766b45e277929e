package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockBusy is returned when the lock is still held after the wait expires.
var ErrLockBusy = errors.New("lock is held by another request")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRoomLocker serializes booking creation per room with SET NX PX.
type RedisRoomLocker struct {
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

func NewRedisRoomLocker(client *redis.Client) *RedisRoomLocker {
	return &RedisRoomLocker{
		client: client,
		ttl:    RoomLockTTL,
		wait:   RoomLockWait,
		retry:  50 * time.Millisecond,
	}
}

// Lock blocks until the room lock is acquired, the wait expires (ErrLockBusy)
// or Redis fails. The returned func releases the lock.
func (l *RedisRoomLocker) Lock(ctx context.Context, roomID string) (func(), error) {
	key := RoomLockPrefix + roomID
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock for room %s: %w", roomID, err)
		}
		if ok {
			return func() {
				// Release must survive a cancelled request context.
				rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = releaseScript.Run(rctx, l.client, []string{key}, token).Err()
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockBusy
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}
