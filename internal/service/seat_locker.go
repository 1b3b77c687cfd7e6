package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPrefix     = "seatlock:"
	lockTTL           = 10 * time.Second
	lockRetryInterval = 25 * time.Millisecond
)

// releaseScript deletes a seat lock only when it is still held by the
// given owner, so a lock that expired and was re-acquired by someone
// else is never removed by the previous holder.
var releaseScript = redis.NewScript(`
    if redis.call('GET', KEYS[1]) == ARGV[1] then
        return redis.call('DEL', KEYS[1])
    end
    return 0
`)

// RedisSeatLocker implements SeatLocker with one SETNX key per seat.
// Keys carry a TTL so a crashed process cannot strand a seat; the TTL
// is far above any realistic create latency.  Waiting is bounded: when
// a contended seat cannot be taken within maxWait the whole acquisition
// is rolled back and ErrLockBusy returned.
type RedisSeatLocker struct {
	rdb     *redis.Client
	maxWait time.Duration
}

// NewRedisSeatLocker builds a locker on the given client.  maxWait
// bounds how long Acquire blocks per request; zero or negative means a
// single attempt per seat.
func NewRedisSeatLocker(rdb *redis.Client, maxWait time.Duration) *RedisSeatLocker {
	return &RedisSeatLocker{rdb: rdb, maxWait: maxWait}
}

// Acquire locks every seat for the owner, in sorted order so two
// requests contending on an overlapping set always collide on the same
// key first.  On any failure the already-taken locks are released.
func (l *RedisSeatLocker) Acquire(ctx context.Context, seatIDs []string, ownerID string) error {
	ids := append([]string(nil), seatIDs...)
	sort.Strings(ids)

	deadline := time.Now().Add(l.maxWait)
	taken := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := l.acquireOne(ctx, id, ownerID, deadline); err != nil {
			l.Release(ctx, taken, ownerID)
			return err
		}
		taken = append(taken, id)
	}
	return nil
}

func (l *RedisSeatLocker) acquireOne(ctx context.Context, seatID, ownerID string, deadline time.Time) error {
	key := lockKeyPrefix + seatID
	for {
		ok, err := l.rdb.SetNX(ctx, key, ownerID, lockTTL).Result()
		if err != nil {
			return fmt.Errorf("seat guard: %w", err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: seat %s", ErrLockBusy, seatID)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

// Release drops the owner's locks.  Errors are ignored: the TTL expires
// stale locks and a failed release only delays a contender briefly.
func (l *RedisSeatLocker) Release(ctx context.Context, seatIDs []string, ownerID string) {
	for _, id := range seatIDs {
		_, _ = releaseScript.Run(ctx, l.rdb, []string{lockKeyPrefix + id}, ownerID).Result()
	}
}
