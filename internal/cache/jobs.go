package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	CollegeJobsKeyPrefix = "jobs:college:%s"
	DefaultJobListTTL    = time.Minute
)

func CollegeJobsKey(college string) string {
	return fmt.Sprintf(CollegeJobsKeyPrefix, college)
}

// JobListCache хранит необработанную ленту колледжа (до фильтров и сортировки).
// Ошибки Redis логируются и считаются промахом.
type JobListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewJobListCache(client *redis.Client, ttl time.Duration) *JobListCache {
	if ttl <= 0 {
		ttl = DefaultJobListTTL
	}
	return &JobListCache{client: client, ttl: ttl}
}

func (c *JobListCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *JobListCache) Get(ctx context.Context, college string) ([]models.Job, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, CollegeJobsKey(college)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.CtxWithError(ctx, "job cache read failed", err, "college", college)
		}
		observability.JobCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		logger.CtxWithError(ctx, "job cache entry is corrupt", err, "college", college)
		observability.JobCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	observability.JobCacheLookups.WithLabelValues("hit").Inc()
	logger.CtxDebug(ctx, "job cache hit", "college", college, "jobs", len(jobs))
	return jobs, true
}

func (c *JobListCache) Set(ctx context.Context, college string, jobs []models.Job) {
	if !c.enabled() {
		return
	}

	raw, err := json.Marshal(stripPosters(jobs))
	if err != nil {
		logger.CtxWithError(ctx, "job cache encode failed", err, "college", college)
		return
	}
	if err := c.client.Set(ctx, CollegeJobsKey(college), raw, c.ttl).Err(); err != nil {
		logger.CtxWithError(ctx, "job cache write failed", err, "college", college)
	}
}

// Invalidate вызывается после каждой мутации вакансий колледжа
func (c *JobListCache) Invalidate(ctx context.Context, college string) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, CollegeJobsKey(college)).Err(); err != nil {
		logger.CtxWithError(ctx, "job cache invalidate failed", err, "college", college)
	}
}

// stripPosters оставляет от автора только id и username
func stripPosters(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	for i, job := range jobs {
		if job.Poster != nil {
			poster := models.User{Username: job.Poster.Username}
			poster.ID = job.Poster.ID
			job.Poster = &poster
		}
		out[i] = job
	}
	return out
}
