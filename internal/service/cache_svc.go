package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Tally results live longer since a tallied proposal is
// frozen; its cached result can go stale only through invalidation.
const (
	ProposalCacheTTL = 5 * time.Minute
	TallyCacheTTL    = 15 * time.Minute
)

// CacheService provides a Redis cache-aside layer for proposal and
// tally lookups.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or
// the connection fails, it returns a CacheService with a nil client
// (cache operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetProposal retrieves a cached proposal response. Returns nil if not
// cached or cache is disabled.
func (c *CacheService) GetProposal(ctx context.Context, proposalID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, proposalKey(proposalID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetProposal stores a proposal response in cache.
func (c *CacheService) SetProposal(ctx context.Context, proposalID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, proposalKey(proposalID), b, ProposalCacheTTL).Err()
}

// InvalidateProposal removes a proposal from cache (called after stake
// mutations and status changes).
func (c *CacheService) InvalidateProposal(ctx context.Context, proposalID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, proposalKey(proposalID)).Err()
}

// GetTally retrieves a cached tally result. Returns nil if not cached.
func (c *CacheService) GetTally(ctx context.Context, proposalID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, tallyKey(proposalID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetTally stores a tally result in cache.
func (c *CacheService) SetTally(ctx context.Context, proposalID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, tallyKey(proposalID), b, TallyCacheTTL).Err()
}

// InvalidateTally removes a tally result from cache.
func (c *CacheService) InvalidateTally(ctx context.Context, proposalID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, tallyKey(proposalID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func proposalKey(proposalID string) string {
	return fmt.Sprintf("proposal:%s", proposalID)
}

func tallyKey(proposalID string) string {
	return fmt.Sprintf("tally:%s", proposalID)
}
