// Package cache memoizes solver results in redis, keyed by a hash of
// the problem and solver configuration.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perclft/IsingEngine/internal/api"
)

const keyPrefix = "cache:"

// Entry wraps a cached result with bookkeeping.
type Entry struct {
	Result    *api.JobResult `json:"result"`
	CachedAt  int64          `json:"cached_at"`
	ExpiresAt int64          `json:"expires_at"`
	HitCount  int32          `json:"hit_count"`
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	TotalEntries int64   `json:"total_entries"`
	Hits         int64   `json:"hits"`
	Misses       int64   `json:"misses"`
	HitRate      float64 `json:"hit_rate"`
}

// Cache stores solver results in redis with a TTL.
type Cache struct {
	rdb        *redis.Client
	log        *zap.Logger
	defaultTTL time.Duration
	hits       int64
	misses     int64
}

func New(rdb *redis.Client, log *zap.Logger, defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &Cache{rdb: rdb, log: log, defaultTTL: defaultTTL}
}

// HashRequest derives the cache key material from a request. Priority
// and backend choice do not change the answer, so they are excluded.
func HashRequest(req *api.JobRequest) (string, error) {
	keyed := struct {
		Kind     api.ProblemKind `json:"kind"`
		Graph    *api.GraphSpec  `json:"graph,omitempty"`
		Molecule string          `json:"molecule,omitempty"`
		Solver   api.SolverSpec  `json:"solver"`
	}{req.Kind, req.Graph, req.Molecule, req.Solver}

	data, err := json.Marshal(keyed)
	if err != nil {
		return "", errors.Wrap(err, "cache: hash request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get looks up a cached result. A nil entry with nil error is a miss.
func (c *Cache) Get(ctx context.Context, hash string) (*Entry, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+hash).Bytes()
	if err == redis.Nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "cache: get")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Wrap(err, "cache: parse entry")
	}

	entry.HitCount++
	atomic.AddInt64(&c.hits, 1)
	if updated, err := json.Marshal(entry); err == nil {
		c.rdb.Set(ctx, keyPrefix+hash, updated, redis.KeepTTL)
	}

	c.log.Debug("cache hit", zap.String("hash", short(hash)), zap.Int32("hits", entry.HitCount))
	return &entry, nil
}

// Put stores a result under its problem hash.
func (c *Cache) Put(ctx context.Context, hash string, result *api.JobResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := time.Now().Unix()
	entry := Entry{
		Result:    result,
		CachedAt:  now,
		ExpiresAt: now + int64(ttl.Seconds()),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "cache: serialize entry")
	}
	if err := c.rdb.Set(ctx, keyPrefix+hash, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "cache: put")
	}
	c.log.Debug("cached result", zap.String("hash", short(hash)), zap.Duration("ttl", ttl))
	return nil
}

// Invalidate removes one entry. Returns false if it was not present.
func (c *Cache) Invalidate(ctx context.Context, hash string) (bool, error) {
	deleted, err := c.rdb.Del(ctx, keyPrefix+hash).Result()
	if err != nil {
		return false, errors.Wrap(err, "cache: invalidate")
	}
	return deleted > 0, nil
}

// Stats counts entries and reports the hit rate since startup.
func (c *Cache) Stats(ctx context.Context) (*Stats, error) {
	keys, err := c.rdb.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, errors.Wrap(err, "cache: stats")
	}
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	s := &Stats{
		TotalEntries: int64(len(keys)),
		Hits:         hits,
		Misses:       misses,
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s, nil
}

func short(hash string) string {
	if len(hash) > 16 {
		return hash[:16]
	}
	return hash
}
