package leaderboard

import (
	"context"

	"github.com/annamandarin/gamify/config"
	"github.com/redis/go-redis/v9"
)

const defaultKey = "gamify:leaderboard"

// Entry is one leaderboard row: a student and their cumulative points.
type Entry struct {
	StudentID string `json:"student_id"`
	Points    int    `json:"points"`
}

// Store mirrors cumulative point awards into a ranking structure so the
// leaderboard read does not scan the students table.
type Store interface {
	AddPoints(ctx context.Context, studentID string, delta int) error
	Top(ctx context.Context, n int64) ([]Entry, error)
}

type redisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb, key: defaultKey}
}

func (s *redisStore) AddPoints(ctx context.Context, studentID string, delta int) error {
	return s.rdb.ZIncrBy(ctx, s.key, float64(delta), studentID).Err()
}

func (s *redisStore) Top(ctx context.Context, n int64) ([]Entry, error) {
	if n <= 0 {
		n = 10
	}
	members, err := s.rdb.ZRevRangeWithScores(ctx, s.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, Entry{StudentID: id, Points: int(m.Score)})
	}
	return entries, nil
}
