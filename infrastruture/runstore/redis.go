package runstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps runs in a sorted set scored by finish time. Members are
// "<uuid>|<seconds>" so equal times stay distinct.
type RedisStore struct {
	client  *redis.Client
	locker  *redsync.Redsync
	key     string
	maxRuns int64
	now     func() time.Time
}

// NewRedisStore creates a store under key keeping at most maxRuns entries; zero keeps everything.
func NewRedisStore(client *redis.Client, key string, maxRuns int) *RedisStore {
	pool := goredis.NewPool(client)
	return &RedisStore{
		client:  client,
		locker:  redsync.New(pool),
		key:     key,
		maxRuns: int64(maxRuns),
		now:     time.Now,
	}
}

// Append adds a run and trims the oldest entries beyond the cap.
func (s *RedisStore) Append(ctx context.Context, seconds float64) error {
	member := fmt.Sprintf("%s|%.2f", uuid.NewString(), seconds)
	score := float64(s.now().UnixMilli())
	if err := s.client.ZAdd(ctx, s.key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("adding run: %w", err)
	}

	if s.maxRuns <= 0 {
		return nil
	}
	return s.trim(ctx)
}

func (s *RedisStore) trim(ctx context.Context) error {
	mutex := s.locker.NewMutex(s.key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking run history: %w", err)
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	count, err := s.client.ZCard(ctx, s.key).Result()
	if err != nil {
		return fmt.Errorf("counting runs: %w", err)
	}
	if count <= s.maxRuns {
		return nil
	}

	return s.client.ZRemRangeByRank(ctx, s.key, 0, count-s.maxRuns-1).Err()
}

// LoadAll returns the stored runs oldest first. Members that do not decode are skipped.
func (s *RedisStore) LoadAll(ctx context.Context) ([]float64, error) {
	members, err := s.client.ZRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}

	runs := make([]float64, 0, len(members))
	for _, m := range members {
		if v, ok := decodeMember(m); ok {
			runs = append(runs, v)
		}
	}
	return runs, nil
}

func decodeMember(member string) (float64, bool) {
	idx := strings.LastIndexByte(member, '|')
	if idx < 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(member[idx+1:], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
