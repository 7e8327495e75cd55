package sortedstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisScoreBoard keeps finished mazes in a Redis sorted set scored by move count.
type RedisScoreBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	size   int64
	ttl    time.Duration
}

// NewRedisScoreBoard initializes a RedisScoreBoard keeping the best size entries under key.
func NewRedisScoreBoard(client *redis.Client, key string, size int, ttlSeconds int) (i.ScoreBoard, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if key == "" || size <= 0 {
		return nil, fmt.Errorf("invalid leaderboard key %q or size %d", key, size)
	}

	board := &RedisScoreBoard{
		client: client,
		key:    key,
		size:   int64(size),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record adds a finished maze and trims the set back to its size.
// The lock keeps concurrent writers from trimming each other's entries.
func (rsb *RedisScoreBoard) Record(ctx context.Context, member string, moves int) error {
	mutex := rsb.locker.NewMutex(rsb.key + ":record_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		// Release even when ctx has expired, otherwise the lock is held until redsync's expiry.
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}()

	if err := rsb.client.ZAdd(ctx, rsb.key, redis.Z{Score: float64(moves), Member: member}).Err(); err != nil {
		return err
	}

	if err := rsb.client.ZRemRangeByRank(ctx, rsb.key, rsb.size, -1).Err(); err != nil {
		return err
	}

	if rsb.ttl <= 0 {
		return nil
	}

	// Set expiration only if it's not already set
	ttl, err := rsb.client.TTL(ctx, rsb.key).Result()
	if err != nil {
		return err
	}
	if ttl == -1 {
		return rsb.client.Expire(ctx, rsb.key, rsb.ttl).Err()
	}

	return nil
}

// Top returns up to n entries with the fewest moves.
func (rsb *RedisScoreBoard) Top(ctx context.Context, n int64) ([]i.Score, error) {
	entries, err := rsb.client.ZRangeWithScores(ctx, rsb.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]i.Score, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, i.Score{SessionID: fmt.Sprint(e.Member), Moves: int(e.Score)})
	}
	return scores, nil
}
