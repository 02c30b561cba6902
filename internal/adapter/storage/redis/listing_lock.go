package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
)

// unlockLua deletes a lock key only if its value matches the caller's unique
// token, so one settlement cannot release a lock a later settlement acquired
// after the first one's TTL expired.
const unlockLua = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`

// ListingLock implements ports.ListingLock using Redis SETNX with a TTL and
// a Lua-based conditional unlock.
type ListingLock struct {
	client   *goredis.Client
	unlockSc *goredis.Script
}

// NewListingLock creates a ListingLock backed by the given client.
func NewListingLock(client *goredis.Client) *ListingLock {
	return &ListingLock{
		client:   client,
		unlockSc: goredis.NewScript(unlockLua),
	}
}

func lockKey(listingID uuid.UUID) string {
	return "lock:listing:" + listingID.String()
}

// Acquire attempts to take the settlement lock for a listing. It never
// blocks: when another settlement already holds the lock it returns
// ok=false with a no-op release. On success the returned release function
// must be called and is safe to call more than once.
func (l *ListingLock) Acquire(ctx context.Context, listingID uuid.UUID, ttl time.Duration) (func(), bool, error) {
	token := uuid.New().String()
	key := lockKey(listingID)

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire listing lock %s: %w", listingID, err)
	}
	if !ok {
		return func() {}, false, nil
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true

		// A background context lets the release succeed even when the
		// settlement's own context is already cancelled.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = l.unlockSc.Run(unlockCtx, l.client, []string{key}, token).Err()
	}

	return release, true, nil
}

var _ ports.ListingLock = (*ListingLock)(nil)
