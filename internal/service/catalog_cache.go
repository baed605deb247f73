package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/acadops/courseslot-backend/internal/config"
	"github.com/acadops/courseslot-backend/internal/model"
)

// CatalogCache keeps the course and faculty list responses in Redis. The
// cache is best effort: every miss or Redis fault falls through to
// PostgreSQL, and every mutating operation invalidates both keys. A nil
// *CatalogCache disables caching entirely.
type CatalogCache struct {
	rdb  *redis.Client
	keys *config.CacheKeyStruct
	ttl  time.Duration
	log  zerolog.Logger
}

// NewCatalogCache creates a CatalogCache backed by the given Redis client.
func NewCatalogCache(rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *CatalogCache {
	return &CatalogCache{
		rdb:  rdb,
		keys: config.NewCacheKeyStruct(),
		ttl:  cfg.CatalogCacheTTL,
		log:  log.With().Str("component", "catalog_cache").Logger(),
	}
}

// GetCourses returns the cached course list and whether it was present.
func (c *CatalogCache) GetCourses(ctx context.Context) ([]model.Course, bool) {
	if c == nil {
		return nil, false
	}
	var courses []model.Course
	if !c.get(ctx, c.keys.CourseListKey(), &courses) {
		return nil, false
	}
	return courses, true
}

// SetCourses stores the course list.
func (c *CatalogCache) SetCourses(ctx context.Context, courses []model.Course) {
	if c == nil {
		return
	}
	c.set(ctx, c.keys.CourseListKey(), courses)
}

// GetFaculties returns the cached faculty list and whether it was present.
func (c *CatalogCache) GetFaculties(ctx context.Context) ([]model.Faculty, bool) {
	if c == nil {
		return nil, false
	}
	var faculties []model.Faculty
	if !c.get(ctx, c.keys.FacultyListKey(), &faculties) {
		return nil, false
	}
	return faculties, true
}

// SetFaculties stores the faculty list.
func (c *CatalogCache) SetFaculties(ctx context.Context, faculties []model.Faculty) {
	if c == nil {
		return
	}
	c.set(ctx, c.keys.FacultyListKey(), faculties)
}

// Invalidate drops both cached lists. Called after every successful write so
// the next read reflects the new counters and rows.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.keys.CourseListKey(), c.keys.FacultyListKey()).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}

func (c *CatalogCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt")
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
