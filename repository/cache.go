package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OfflineCache mirrors entity records into Redis so reads can degrade
// gracefully when the remote store is unreachable. It is a passive mirror:
// written to opportunistically, read only as a fallback, and it never drives
// subscriptions on its own.
type OfflineCache struct {
	client *redis.Client
}

// NewOfflineCache opens the cache store and verifies connectivity. Callers
// should treat a nil cache (open failure) as "remote only" rather than fatal.
func NewOfflineCache(redisURL string) (*OfflineCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &OfflineCache{client: client}, nil
}

// NewOfflineCacheWithClient wraps an existing client. Used by tests and when
// the cache shares the pub/sub connection pool.
func NewOfflineCacheWithClient(client *redis.Client) *OfflineCache {
	return &OfflineCache{client: client}
}

func regionKey(userID, collection string) string {
	return fmt.Sprintf("offline:%s:%s", userID, collection)
}

// Save upserts one record by id into the named region.
func (c *OfflineCache) Save(ctx context.Context, userID, collection, id string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %v", err)
	}
	return c.client.HSet(ctx, regionKey(userID, collection), id, data).Err()
}

// Get reads one record by id; returns ErrNotFound on a miss.
func (c *OfflineCache) Get(ctx context.Context, userID, collection, id string, out any) error {
	data, err := c.client.HGet(ctx, regionKey(userID, collection), id).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read cached record: %v", err)
	}
	return json.Unmarshal(data, out)
}

// GetAll returns every record in the region as raw JSON documents.
func (c *OfflineCache) GetAll(ctx context.Context, userID, collection string) ([]json.RawMessage, error) {
	values, err := c.client.HVals(ctx, regionKey(userID, collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cache region: %v", err)
	}
	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		records = append(records, json.RawMessage(v))
	}
	return records, nil
}

func (c *OfflineCache) Remove(ctx context.Context, userID, collection, id string) error {
	return c.client.HDel(ctx, regionKey(userID, collection), id).Err()
}

// ReplaceAll swaps the whole region for the given records, keyed by id.
// Called by the sync controller after each snapshot fetch so the mirror
// matches the snapshot, including deletions.
func (c *OfflineCache) ReplaceAll(ctx context.Context, userID, collection string, records map[string]any) error {
	key := regionKey(userID, collection)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(records) > 0 {
		fields := make(map[string]any, len(records))
		for id, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to marshal record %s: %v", id, err)
			}
			fields[id] = data
		}
		pipe.HSet(ctx, key, fields)
	}
	_, err := pipe.Exec(ctx)
	return err
}
