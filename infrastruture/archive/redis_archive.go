// Package archive provides storage backends for generated mazes.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/mazegen/domain"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "mazegen:maze:"
	recentKeySuffix  = "recent"
)

// RedisArchive keeps maze records in Redis as JSON values that expire after a TTL.
// A sorted set scored by creation time indexes the records for Recent.
type RedisArchive struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisArchive initializes a RedisArchive with the provided Redis client and TTL.
func NewRedisArchive(client *redis.Client, ttlSeconds int) (*RedisArchive, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("ttl must be positive, got %d", ttlSeconds)
	}
	return &RedisArchive{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Save stores the record under its ID, resetting its expiration.
func (ra *RedisArchive) Save(ctx context.Context, record *dmn.MazeRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	recentKey := ra.prefix + recentKeySuffix
	cutoff := time.Now().Add(-ra.ttl).UnixNano()
	_, err = ra.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, ra.key(record.ID), payload, ra.ttl)
		pipe.ZAdd(ctx, recentKey, redis.Z{Score: float64(record.CreatedAt.UnixNano()), Member: record.ID.String()})
		// Drop index entries whose records have expired.
		pipe.ZRemRangeByScore(ctx, recentKey, "-inf", fmt.Sprintf("(%d", cutoff))
		pipe.Expire(ctx, recentKey, ra.ttl)
		return nil
	})
	return err
}

// ByID retrieves a record, returning i.ErrRecordNotFound if it never existed or has expired.
func (ra *RedisArchive) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	payload, err := ra.client.Get(ctx, ra.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrRecordNotFound
		}
		return nil, err
	}

	var record dmn.MazeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("decoding maze %s: %w", id, err)
	}
	return &record, nil
}

// Recent returns up to limit records, newest first. Index entries whose
// record has already expired are skipped.
func (ra *RedisArchive) Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := ra.client.ZRevRange(ctx, ra.prefix+recentKeySuffix, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for n, id := range ids {
		keys[n] = ra.prefix + id
	}
	values, err := ra.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*dmn.MazeRecord, 0, len(values))
	for n, v := range values {
		payload, ok := v.(string)
		if !ok {
			continue
		}
		var record dmn.MazeRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("decoding maze %s: %w", ids[n], err)
		}
		records = append(records, &record)
	}
	return records, nil
}

func (ra *RedisArchive) key(id uuid.UUID) string {
	return ra.prefix + id.String()
}
