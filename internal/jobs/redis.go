// internal/jobs/redis.go
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gameforge/internal/common/database"
	"gameforge/internal/models"
)

const redisJobKeyPrefix = "gameforge:jobs:"

// RedisStore persists jobs as JSON values in Redis, for deployments where
// status queries may land on a different instance than the one running the
// job. Terminal jobs expire after the configured TTL.
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisStore creates a store over an existing Redis connection.
func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func jobKey(id string) string {
	return redisJobKeyPrefix + id
}

func (s *RedisStore) Create(ctx context.Context, job models.Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	ok, err := s.client.Client.SetNX(ctx, jobKey(job.ID), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Job, error) {
	raw, err := s.client.Get(ctx, jobKey(id))
	if errors.Is(err, redis.Nil) {
		return models.Job{}, ErrJobNotFound
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("redis get: %w", err)
	}

	var job models.Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return models.Job{}, fmt.Errorf("unmarshal job: %w", err)
	}
	return job, nil
}

func (s *RedisStore) Update(ctx context.Context, job models.Job) error {
	exists, err := s.client.Client.Exists(ctx, jobKey(job.ID)).Result()
	if err != nil {
		return fmt.Errorf("redis exists: %w", err)
	}
	if exists == 0 {
		return ErrJobNotFound
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	// Terminal jobs get the TTL; in-flight jobs must not expire mid-run.
	expiration := time.Duration(0)
	if job.State.Terminal() && s.ttl > 0 {
		expiration = s.ttl
	}
	if err := s.client.Set(ctx, jobKey(job.ID), payload, expiration); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
