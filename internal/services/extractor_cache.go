package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachingSkillExtractor decorates a SkillExtractorService with a Redis
// read-through cache. Market skills for a job title barely change within a
// day, and the data service takes tens of seconds per extraction.
type cachingSkillExtractor struct {
	inner SkillExtractorService
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachingSkillExtractor wraps inner with Redis caching. If ttl is zero or
// negative it defaults to 24 hours. A nil client bypasses the cache entirely.
func NewCachingSkillExtractor(rdb *redis.Client, ttl time.Duration, inner SkillExtractorService) SkillExtractorService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &cachingSkillExtractor{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

// ExtractSkills implements SkillExtractorService.
func (c *cachingSkillExtractor) ExtractSkills(ctx context.Context, jobTitle string) ([]string, error) {
	if c.rdb == nil {
		return c.inner.ExtractSkills(ctx, jobTitle)
	}

	key := c.cacheKey(jobTitle)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var skills []string
		if err := json.Unmarshal(b, &skills); err == nil {
			log.Printf("⚡ Market skills cache hit for %q\n", jobTitle)
			return skills, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	skills, err := c.inner.ExtractSkills(ctx, jobTitle)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(skills); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return skills, nil
}

func (c *cachingSkillExtractor) cacheKey(jobTitle string) string {
	normalized := strings.ToLower(strings.TrimSpace(jobTitle))
	return fmt.Sprintf("market_skills:%s", strings.ReplaceAll(normalized, " ", "_"))
}
