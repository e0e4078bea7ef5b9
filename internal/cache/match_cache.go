// Package cache keeps recently computed match lists in redis so repeated
// discover-page loads don't rescan the whole student pool.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fathima-sithara/campus-connect/internal/matcher"
)

type MatchCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewMatchCache(rdb *redis.Client, prefix string, ttl time.Duration) *MatchCache {
	return &MatchCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *MatchCache) key(studentID string) string {
	return fmt.Sprintf("%s:matches:%s", c.prefix, studentID)
}

// Get returns the cached match list for a student, or false on miss or any
// redis/decoding problem. Cache failures are never fatal to a match request.
func (c *MatchCache) Get(ctx context.Context, studentID string) ([]matcher.Match, bool) {
	b, err := c.rdb.Get(ctx, c.key(studentID)).Bytes()
	if err != nil {
		return nil, false
	}
	var matches []matcher.Match
	if err := json.Unmarshal(b, &matches); err != nil {
		return nil, false
	}
	return matches, true
}

func (c *MatchCache) Set(ctx context.Context, studentID string, matches []matcher.Match) {
	b, err := json.Marshal(matches)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(studentID), b, c.ttl)
}

// Invalidate drops a student's cached list; called when their profile
// changes so stale scores don't linger for the TTL.
func (c *MatchCache) Invalidate(ctx context.Context, studentID string) {
	c.rdb.Del(ctx, c.key(studentID))
}
